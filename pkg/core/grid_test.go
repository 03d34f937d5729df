package core

import "testing"

func uniformShape(n int) Shape { return Shape{Nx: n, Ny: n, Nz: n} }

func TestSampleDensityOutOfRange(t *testing.T) {
	shape := uniformShape(4)
	density, err := NewDensityGrid(shape, make([]float64, shape.Len()))
	if err != nil {
		t.Fatal(err)
	}
	color, _ := NewColorGrid(shape, make([]Vec3, shape.Len()))
	s := &Sampler{Density: density, Color: color}

	if got := s.SampleDensity(Vec3{X: 10, Y: 0, Z: 0}); got != 0 {
		t.Errorf("density outside the grid should be 0, got %v", got)
	}
	if got := s.SampleIOR(Vec3{X: 10, Y: 0, Z: 0}); got != 1 {
		t.Errorf("ior outside the grid (or absent) should be 1, got %v", got)
	}
	if got := s.SampleColor(Vec3{X: 10, Y: 0, Z: 0}); got != (Vec3{}) {
		t.Errorf("color outside the grid should be the default color, got %+v", got)
	}
}

func TestNewDensityGridShapeMismatch(t *testing.T) {
	shape := uniformShape(4)
	if _, err := NewDensityGrid(shape, make([]float64, shape.Len()-1)); err == nil {
		t.Error("expected an error for mismatched data length")
	}
}

func TestInsideCube(t *testing.T) {
	cases := []struct {
		p    Vec3
		want bool
	}{
		{Vec3{0, 0, 0}, true},
		{Vec3{0.49, 0.49, 0.49}, true},
		{Vec3{0.5, 0, 0}, false},
		{Vec3{-0.5, 0, 0}, false},
		{Vec3{0.6, 0, 0}, false},
	}
	for _, c := range cases {
		if got := InsideCube(c.p); got != c.want {
			t.Errorf("InsideCube(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestMayStillEnter(t *testing.T) {
	// Still approaching the cube from outside: always true.
	if !MayStillEnter(Vec3{X: -1}, Vec3{X: 1}) {
		t.Error("approaching the cube should still be allowed to enter")
	}
	// Past the cube on +X, moving further +X: must stop.
	if MayStillEnter(Vec3{X: 0.6}, Vec3{X: 1}) {
		t.Error("a ray past the cube, moving away, must not re-enter")
	}
	// Past the cube on +X but moving back toward it: still allowed.
	if !MayStillEnter(Vec3{X: 0.6}, Vec3{X: -1}) {
		t.Error("a ray past the cube, moving back toward it, should still be allowed to enter")
	}
}

func TestVoxelCenterRoundTrip(t *testing.T) {
	shape := uniformShape(10)
	for i := 0; i < shape.Nx; i++ {
		center := shape.VoxelCenter(i, 0, 0)
		gi, _, _, ok := voxelIndex(center, shape)
		if !ok || gi != i {
			t.Errorf("VoxelCenter(%d,0,0) -> %v did not map back to index %d (got %d, ok=%v)", i, center, i, gi, ok)
		}
	}
}
