package canvas

import (
	"testing"

	"github.com/voxelray/voxelray/pkg/core"
)

func TestFillDiskPaintsWithinRadius(t *testing.T) {
	c := EmptyCanvas(20)
	FillDisk(c, [3]int{10, 10, 10}, 3, 2, core.Vec3{X: 1}, 2)

	if got := c.Density[c.index(10, 10, 10)]; got != 2 {
		t.Errorf("disk center should be painted, got density %v", got)
	}
	if got := c.Density[c.index(10, 10, 19)]; got != 0 {
		t.Errorf("far corner should be untouched, got density %v", got)
	}
}

func TestFillRectangleBounds(t *testing.T) {
	c := EmptyCanvas(10)
	FillRectangle(c, [3]int{5, 5, 5}, [3]int{1, 1, 1}, 3, core.Vec3{Y: 1})

	if got := c.Density[c.index(5, 5, 5)]; got != 3 {
		t.Errorf("box center should be painted, got %v", got)
	}
	if got := c.Density[c.index(4, 4, 4)]; got != 3 {
		t.Errorf("box corner (within half-extent) should be painted, got %v", got)
	}
	if got := c.Density[c.index(3, 5, 5)]; got != 0 {
		t.Errorf("outside the box should be untouched, got %v", got)
	}
}

func TestDrawLineSimpleReachesEndpoints(t *testing.T) {
	c := EmptyCanvas(20)
	DrawLineSimple(c, [3]int{0, 0, 0}, [3]int{19, 0, 0}, 19, 1, core.Vec3{})

	if c.Density[c.index(0, 0, 0)] != 1 {
		t.Error("line should paint its start point")
	}
	if c.Density[c.index(19, 0, 0)] != 1 {
		t.Error("line should paint its end point")
	}
}

func TestClipClampsDensity(t *testing.T) {
	c := EmptyCanvas(4)
	c.Density[0] = 10
	c.Density[1] = -5
	Clip(c, 0, 1)
	if c.Density[0] != 1 || c.Density[1] != 0 {
		t.Errorf("clip should clamp to [0,1], got %v %v", c.Density[0], c.Density[1])
	}
}

func TestMultiplyScalesDensity(t *testing.T) {
	c := EmptyCanvas(4)
	c.Density[0] = 2
	Multiply(c, 1.5)
	if c.Density[0] != 3 {
		t.Errorf("multiply by 1.5 should give 3, got %v", c.Density[0])
	}
}

func TestBakeProducesMatchingShapes(t *testing.T) {
	c := EmptyCanvas(6)
	FillRectangle(c, [3]int{3, 3, 3}, [3]int{1, 1, 1}, 1, core.Vec3{X: 1})
	density, color, err := c.Bake()
	if err != nil {
		t.Fatal(err)
	}
	if !density.Shape.Equal(color.Shape) {
		t.Error("baked density/color grids should share a shape")
	}
	if density.Shape.Nx != 6 {
		t.Errorf("baked shape should be 6^3, got %+v", density.Shape)
	}
}
