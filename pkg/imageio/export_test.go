package imageio

import (
	"bytes"
	"testing"

	"github.com/voxelray/voxelray/pkg/core"
)

func TestWritePNGProducesValidHeader(t *testing.T) {
	img := core.NewImage(4, 4)
	img.Set(0, 0, core.Vec3{X: 1, Y: 1, Z: 1})

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output does not start with the PNG magic number")
	}
}

func TestToRGBAClampsOutOfRangeChannels(t *testing.T) {
	img := core.NewImage(1, 1)
	img.Set(0, 0, core.Vec3{X: 5, Y: -1, Z: 0.5})
	rgba := ToRGBA(img)
	r, g, _, a := rgba.At(0, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("overbright red should clamp to 255, got %v", r>>8)
	}
	if g>>8 != 0 {
		t.Errorf("negative green should clamp to 0, got %v", g>>8)
	}
	if a>>8 != 255 {
		t.Errorf("alpha should be opaque, got %v", a>>8)
	}
}

func TestWriteGIFRequiresAtLeastOneFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGIF(&buf, nil, 10); err == nil {
		t.Error("expected an error for zero frames")
	}
}

func TestWriteGIFEncodesMultipleFrames(t *testing.T) {
	frames := []*core.Image{core.NewImage(2, 2), core.NewImage(2, 2)}
	var buf bytes.Buffer
	if err := WriteGIF(&buf, frames, 5); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty GIF output")
	}
}
