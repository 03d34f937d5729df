// Package canvas provides scene-construction helpers: painting primitives
// for building test/demo density and color grids without a full physics
// simulation, plus Gaussian-splat point-cloud ingestion (splat.go). It is
// an out-of-scope external collaborator of the core renderer (spec §1):
// nothing here touches pkg/raymarch's kernels, it only produces the grids
// pkg/core.NewScene consumes.
//
// Grounded on examples/canvas.py's fill_disk/fill_rectangle/draw_line_simple/
// draw_helix/clip/gamma/multiply functions from the Python original.
package canvas

import (
	"math"

	"github.com/voxelray/voxelray/pkg/core"
)

// Canvas is a mutable pair of density/color buffers over an N^3 grid,
// addressed by integer voxel coordinates (not the [-0.5,0.5] world space
// pkg/core's grids use). Bake converts it into a core.DensityGrid/
// core.ColorGrid pair once painting is complete.
type Canvas struct {
	N       int
	Density []float64
	Color   []core.Vec3
}

func (c *Canvas) index(i, j, k int) int { return (i*c.N+j)*c.N + k }

func (c *Canvas) inRange(i, j, k int) bool {
	return i >= 0 && i < c.N && j >= 0 && j < c.N && k >= 0 && k < c.N
}

// EmptyCanvas returns an N^3 canvas with zero density and black color.
func EmptyCanvas(n int) *Canvas {
	return &Canvas{
		N:       n,
		Density: make([]float64, n*n*n),
		Color:   make([]core.Vec3, n*n*n),
	}
}

// Bake converts the canvas into grids usable by core.NewScene, treating the
// canvas's N^3 box as spec §3's unit cube.
func (c *Canvas) Bake() (*core.DensityGrid, *core.ColorGrid, error) {
	shape := core.Shape{Nx: c.N, Ny: c.N, Nz: c.N}
	density, err := core.NewDensityGrid(shape, append([]float64(nil), c.Density...))
	if err != nil {
		return nil, nil, err
	}
	color, err := core.NewColorGrid(shape, append([]core.Vec3(nil), c.Color...))
	if err != nil {
		return nil, nil, err
	}
	return density, color, nil
}

func (c *Canvas) paint(i, j, k int, density float64, color core.Vec3) {
	if !c.inRange(i, j, k) {
		return
	}
	idx := c.index(i, j, k)
	c.Density[idx] = density
	c.Color[idx] = color
}

// FillDisk paints a filled disk of the given radius centered at center,
// lying in the plane perpendicular to normal (only axis-aligned normals
// {X,Y,Z} are supported, matching the canvas.py usage patterns).
func FillDisk(c *Canvas, center [3]int, radius int, density float64, color core.Vec3, normalAxis int) {
	r2 := float64(radius * radius)
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if float64(i*i+j*j) > r2 {
				continue
			}
			var p [3]int
			switch normalAxis {
			case 0: // disk in the Y-Z plane
				p = [3]int{center[0], center[1] + i, center[2] + j}
			case 1: // disk in the X-Z plane
				p = [3]int{center[0] + i, center[1], center[2] + j}
			default: // disk in the X-Y plane
				p = [3]int{center[0] + i, center[1] + j, center[2]}
			}
			c.paint(p[0], p[1], p[2], density, color)
		}
	}
}

// FillRectangle paints a filled axis-aligned box centered at center with the
// given half-extents.
func FillRectangle(c *Canvas, center [3]int, halfExtent [3]int, density float64, color core.Vec3) {
	for i := -halfExtent[0]; i <= halfExtent[0]; i++ {
		for j := -halfExtent[1]; j <= halfExtent[1]; j++ {
			for k := -halfExtent[2]; k <= halfExtent[2]; k++ {
				c.paint(center[0]+i, center[1]+j, center[2]+k, density, color)
			}
		}
	}
}

// DrawLineSimple paints a straight line from a to b using a fixed step
// count, without anti-aliasing (hence "simple").
func DrawLineSimple(c *Canvas, a, b [3]int, steps int, density float64, color core.Vec3) {
	if steps < 1 {
		steps = 1
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		i := a[0] + int(math.Round(t*float64(b[0]-a[0])))
		j := a[1] + int(math.Round(t*float64(b[1]-a[1])))
		k := a[2] + int(math.Round(t*float64(b[2]-a[2])))
		c.paint(i, j, k, density, color)
	}
}

// DrawHelix paints a helix from bottom to top with the given radius,
// completing turns full revolutions over steps sample points.
func DrawHelix(c *Canvas, bottom, top [3]int, radius int, turns float64, steps int, density float64, color core.Vec3) {
	if steps < 1 {
		steps = 1
	}
	dz := top[2] - bottom[2]
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		angle := 2 * math.Pi * turns * t
		i := bottom[0] + int(math.Round(float64(radius)*math.Cos(angle)))
		j := bottom[1] + int(math.Round(float64(radius)*math.Sin(angle)))
		k := bottom[2] + int(math.Round(t*float64(dz)))
		c.paint(i, j, k, density, color)
	}
}

// Clip clamps every density value to [lo, hi] in place.
func Clip(c *Canvas, lo, hi float64) {
	for idx, d := range c.Density {
		if d < lo {
			c.Density[idx] = lo
		} else if d > hi {
			c.Density[idx] = hi
		}
	}
}

// Gamma applies color[i] = color[i]^gamma component-wise, in place.
func Gamma(c *Canvas, gamma float64) {
	for idx, col := range c.Color {
		c.Color[idx] = core.Vec3{
			X: math.Pow(math.Max(col.X, 0), gamma),
			Y: math.Pow(math.Max(col.Y, 0), gamma),
			Z: math.Pow(math.Max(col.Z, 0), gamma),
		}
	}
}

// Multiply scales every density value by factor, in place.
func Multiply(c *Canvas, factor float64) {
	for idx := range c.Density {
		c.Density[idx] *= factor
	}
}
