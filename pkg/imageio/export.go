// Package imageio exports pkg/core.Image buffers to PNG and animated GIF,
// the "image encoding/GIF export" external collaborator named out of scope
// in spec §1. Reaches only for the standard library's image/png and
// image/gif: no library in the retrieved pack encodes raster images (the
// teacher and the rest of the pack use image formats only as GPU texture
// inputs, never as CPU-side encoders), so there is no ecosystem dependency
// to adopt here; see DESIGN.md.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"math"

	"github.com/voxelray/voxelray/pkg/core"
)

// ToRGBA converts img's linear-light Vec3 pixels to a gamma-encoded
// image.RGBA, clamping to [0,1] and applying a 1/2.2 display gamma, matching
// the convention of the renderer's float accumulation buffer.
func ToRGBA(img *core.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.W, img.H))
	for j := 0; j < img.H; j++ {
		for i := 0; i < img.W; i++ {
			c := img.At(i, j)
			// Image row 0 is the top of the PNG; core.Image's row 0 is the
			// bottom (pixel (0,0) is lower-left, per pkg/core/image.go).
			out.Set(i, img.H-1-j, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}
	return out
}

func toByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	v = math.Pow(v, 1/2.2)
	return uint8(math.Round(v * 255))
}

// WritePNG encodes img as a PNG to w.
func WritePNG(w io.Writer, img *core.Image) error {
	if err := png.Encode(w, ToRGBA(img)); err != nil {
		return fmt.Errorf("imageio: encoding png: %w", err)
	}
	return nil
}

// WriteGIF encodes a sequence of frames (e.g. successive camera-pass
// renders of an animated scene) as an animated GIF to w, delayHundredths
// hundredths of a second between frames.
func WriteGIF(w io.Writer, frames []*core.Image, delayHundredths int) error {
	if len(frames) == 0 {
		return fmt.Errorf("imageio: WriteGIF requires at least one frame")
	}
	anim := &gif.GIF{}
	palette := color.Palette(color.Palette{})
	for i := 0; i < 256; i++ {
		// A simple uniform quantization of linear RGB space; adequate for
		// smoke/volume previews, not intended for photographic accuracy.
		palette = append(palette, color.RGBA{
			R: uint8((i >> 5) * 255 / 7),
			G: uint8(((i >> 2) & 0x7) * 255 / 7),
			B: uint8((i & 0x3) * 255 / 3),
			A: 255,
		})
	}

	for _, frame := range frames {
		rgba := ToRGBA(frame)
		paletted := image.NewPaletted(rgba.Bounds(), palette)
		for y := rgba.Bounds().Min.Y; y < rgba.Bounds().Max.Y; y++ {
			for x := rgba.Bounds().Min.X; x < rgba.Bounds().Max.X; x++ {
				paletted.Set(x, y, rgba.At(x, y))
			}
		}
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delayHundredths)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("imageio: encoding gif: %w", err)
	}
	return nil
}
