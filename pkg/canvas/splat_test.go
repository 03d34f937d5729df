package canvas

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/voxelray/voxelray/pkg/core"
)

// writeTestSplatPLY writes a minimal binary_little_endian Gaussian-splat PLY
// with one vertex at pos, using the f_dc_0..2/opacity/scale_0..2 property
// set LoadGaussianSplatPLY recognizes.
func writeTestSplatPLY(t *testing.T, path string, pos core.Vec3) {
	t.Helper()
	header := "ply\nformat binary_little_endian 1.0\n" +
		fmt.Sprintf("element vertex %d\n", 1) +
		"property float x\nproperty float y\nproperty float z\n" +
		"property float f_dc_0\nproperty float f_dc_1\nproperty float f_dc_2\n" +
		"property float opacity\n" +
		"property float scale_0\nproperty float scale_1\nproperty float scale_2\n" +
		"end_header\n"

	var body bytes.Buffer
	for _, v := range []float32{
		float32(pos.X), float32(pos.Y), float32(pos.Z),
		1, 1, 1, // f_dc_0..2
		10,      // opacity, post-sigmoid should be close to 1
		-1, -1, -1, // scale_0..2, post-exp should be small
	} {
		if err := binary.Write(&body, binary.LittleEndian, v); err != nil {
			t.Fatalf("writing test PLY body: %v", err)
		}
	}

	if err := os.WriteFile(path, append([]byte(header), body.Bytes()...), 0o644); err != nil {
		t.Fatalf("writing test PLY file: %v", err)
	}
}

func TestLoadGaussianSplatPLYRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splat.ply")
	writeTestSplatPLY(t, path, core.Vec3{X: 0.25, Y: -0.1, Z: 0.1})

	splats, err := LoadGaussianSplatPLY(path)
	if err != nil {
		t.Fatalf("LoadGaussianSplatPLY: %v", err)
	}
	if len(splats) != 1 {
		t.Fatalf("expected 1 splat, got %d", len(splats))
	}

	// Positions are stored as float32 in the file, so they round-trip to
	// the float32-rounded values, not the original float64 literals.
	got := splats[0]
	if got.Position.X != 0.25 || got.Position.Y != float64(float32(-0.1)) || got.Position.Z != float64(float32(0.1)) {
		t.Errorf("position mismatch, got %+v", got.Position)
	}
	if got.Opacity <= 0.9 || got.Opacity > 1 {
		t.Errorf("sigmoid(10) should be close to 1, got %v", got.Opacity)
	}
	if got.Scale <= 0 || got.Scale > 1 {
		t.Errorf("exp(-1) should be a small positive scale, got %v", got.Scale)
	}
}

func TestLoadGaussianSplatPLYRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ply")
	if err := os.WriteFile(path, []byte("not a ply file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGaussianSplatPLY(path); err == nil {
		t.Error("expected an error for a file with no ply magic header")
	}
}

func TestSplatGaussiansAccumulatesDensityAndColor(t *testing.T) {
	c := EmptyCanvas(20)
	points := []GaussianSplat{
		{Position: core.Vec3{}, Color: core.Vec3{X: 1}, Opacity: 1, Scale: 0.05},
	}
	SplatGaussians(c, points, core.Vec3{X: 10, Y: 10, Z: 10}, 20)

	center := c.index(10, 10, 10)
	if c.Density[center] <= 0 {
		t.Errorf("splat center voxel should have positive density, got %v", c.Density[center])
	}
	if c.Color[center].X <= 0 {
		t.Errorf("splat center voxel should have accumulated red color, got %+v", c.Color[center])
	}

	far := c.index(0, 0, 0)
	if c.Density[far] != 0 {
		t.Errorf("voxel far outside the splat's radius should be untouched, got %v", c.Density[far])
	}
}
