// Package app is the interactive GUI demo: a glfw window blitting the
// CPU-rendered volume each frame, mouse-drag orbit camera control, and a
// small stats overlay. It is an out-of-scope external collaborator of the
// core renderer (spec §1); nothing here participates in the ray-march
// kernels.
package app

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/voxelray/voxelray/pkg/core"
)

// glyphInfo is one rasterized character in the atlas, tracked by its
// atlas-space bounds and its rune-specific metrics. Grounded on
// voxelrt/rt/core/text_renderer.go's GlyphInfo/TextRenderer, adapted from a
// GPU-vertex text renderer to a plain CPU compositor since this app has no
// GPU pipeline of its own (it blits one CPU-rendered texture per frame).
type glyphInfo struct {
	bounds image.Rectangle
	offset image.Point
	advance int
}

// TextRenderer rasterizes ASCII text directly onto an RGBA image using a
// pre-built glyph atlas, for the stats overlay (fps, φ/θ/distance, frame
// time).
type TextRenderer struct {
	atlas  *image.Alpha
	glyphs map[rune]glyphInfo
	face   font.Face
}

// NewTextRenderer loads the font at fontPath and builds a glyph atlas for
// the printable ASCII range, following text_renderer.go's atlas-packing
// loop.
func NewTextRenderer(fontPath string, fontSize float64) (*TextRenderer, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("app: reading font %s: %w", fontPath, err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("app: parsing font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("app: building font face: %w", err)
	}

	const atlasSize = 256
	atlas := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	glyphs := make(map[rune]glyphInfo)

	x, y, rowHeight := 2, 2, 0
	for r := rune(32); r < 127; r++ {
		bounds, mask, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		w, h := mask.Bounds().Dx(), mask.Bounds().Dy()
		if x+w >= atlasSize {
			x = 2
			y += rowHeight + 4
			rowHeight = 0
		}
		if y+h >= atlasSize {
			break
		}
		dst := image.Rect(x, y, x+w, y+h)
		draw.Draw(atlas, dst, mask, mask.Bounds().Min, draw.Src)
		glyphs[r] = glyphInfo{
			bounds:  dst,
			offset:  image.Pt(bounds.Min.X, bounds.Min.Y),
			advance: adv.Ceil(),
		}
		x += w + 4
		if h > rowHeight {
			rowHeight = h
		}
	}

	return &TextRenderer{atlas: atlas, glyphs: glyphs, face: face}, nil
}

// DrawString composites text onto dst starting at (x0, y0), in the given
// color, returning the advanced cursor position. A newline returns to x0 and
// moves down one line height; runes without a glyph in the atlas are
// skipped, matching the teacher's tolerant glyph lookup.
func (tr *TextRenderer) DrawString(dst draw.Image, x0, y0 int, text string, col image.Image) (x, y int) {
	x, y = x0, y0
	lineHeight := tr.face.Metrics().Height.Ceil()
	for _, r := range text {
		if r == '\n' {
			x = x0
			y += lineHeight
			continue
		}
		g, ok := tr.glyphs[r]
		if !ok {
			continue
		}
		destRect := image.Rect(x+g.offset.X, y+g.offset.Y, x+g.offset.X+g.bounds.Dx(), y+g.offset.Y+g.bounds.Dy())
		draw.DrawMask(dst, destRect, col, image.Point{}, tr.atlas, g.bounds.Min, draw.Over)
		x += g.advance
	}
	return x, y
}

// StatsLine formats the per-frame overlay text shown in the GUI window.
func StatsLine(fps float64, frameMillis float64, cam *core.Camera) string {
	return fmt.Sprintf("fps %.1f  frame %.2fms  phi %.1f  theta %.1f  dist %.2f",
		fps, frameMillis, cam.GetPhi(true), cam.GetTheta(true), cam.Distance)
}
