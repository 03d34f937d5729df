package core

import (
	"fmt"
	"math"
)

// Shape is the voxel resolution of every grid in a scene (§3: density,
// color, IOR, and irradiance grids all share one shape).
type Shape struct {
	Nx, Ny, Nz int
}

// Max returns max(Nx, Ny, Nz), used to derive default step lengths (§3).
func (s Shape) Max() int {
	m := s.Nx
	if s.Ny > m {
		m = s.Ny
	}
	if s.Nz > m {
		m = s.Nz
	}
	return m
}

// Len is the number of voxels, Nx*Ny*Nz.
func (s Shape) Len() int { return s.Nx * s.Ny * s.Nz }

// Index returns the flat row-major offset of voxel (i, j, k).
func (s Shape) Index(i, j, k int) int {
	return (i*s.Ny+j)*s.Nz + k
}

func (s Shape) Equal(o Shape) bool {
	return s.Nx == o.Nx && s.Ny == o.Ny && s.Nz == o.Nz
}

// VoxelCenter returns the world-space center of voxel (i, j, k), per spec
// §3's spatial convention.
func (s Shape) VoxelCenter(i, j, k int) Vec3 {
	return Vec3{
		X: (float64(i)+0.5)/float64(s.Nx) - 0.5,
		Y: (float64(j)+0.5)/float64(s.Ny) - 0.5,
		Z: (float64(k)+0.5)/float64(s.Nz) - 0.5,
	}
}

// DensityGrid is the non-negative extinction field D (§3).
type DensityGrid struct {
	Shape Shape
	Data  []float64
}

// NewDensityGrid wraps data (row-major, len == shape.Len()) as a density
// grid. It does not copy data.
func NewDensityGrid(shape Shape, data []float64) (*DensityGrid, error) {
	if len(data) != shape.Len() {
		return nil, fmt.Errorf("density grid: data length %d does not match shape %+v (%d)", len(data), shape, shape.Len())
	}
	return &DensityGrid{Shape: shape, Data: data}, nil
}

// ColorGrid is the emissive/albedo RGB field C (§3).
type ColorGrid struct {
	Shape Shape
	Data  []Vec3
}

func NewColorGrid(shape Shape, data []Vec3) (*ColorGrid, error) {
	if len(data) != shape.Len() {
		return nil, fmt.Errorf("color grid: data length %d does not match shape %+v (%d)", len(data), shape, shape.Len())
	}
	return &ColorGrid{Shape: shape, Data: data}, nil
}

// IORGrid is the optional index-of-refraction field η (§3). η is implicitly
// 1 outside the cube and wherever no IOR grid is supplied.
type IORGrid struct {
	Shape Shape
	Data  []float64
}

func NewIORGrid(shape Shape, data []float64) (*IORGrid, error) {
	if len(data) != shape.Len() {
		return nil, fmt.Errorf("ior grid: data length %d does not match shape %+v (%d)", len(data), shape, shape.Len())
	}
	return &IORGrid{Shape: shape, Data: data}, nil
}

// IrradianceGrid is the per-voxel precomputed incident light E (§3), owned
// by the scene and rewritten on every UpdateLight call.
type IrradianceGrid struct {
	Shape Shape
	Data  []Vec3
}

func NewIrradianceGrid(shape Shape) *IrradianceGrid {
	return &IrradianceGrid{Shape: shape, Data: make([]Vec3, shape.Len())}
}

// Sampler implements the grid-sampler operations of spec §4.1: nearest-
// neighbor reads of density/color/IOR at a world-space point, plus the
// inside-cube and march-termination oracles shared by both kernels. It is
// pure: no allocation, no hidden state.
type Sampler struct {
	Density      *DensityGrid
	Color        *ColorGrid
	IOR          *IORGrid // nil if no IOR field was supplied
	DefaultColor Vec3     // returned by SampleColor when p is out of range
}

// voxelIndex maps p to integer voxel indices via floor((p+0.5)*shape), and
// reports whether all three components land inside [0, shape-1].
func voxelIndex(p Vec3, shape Shape) (i, j, k int, ok bool) {
	i = int(math.Floor((p.X + 0.5) * float64(shape.Nx)))
	j = int(math.Floor((p.Y + 0.5) * float64(shape.Ny)))
	k = int(math.Floor((p.Z + 0.5) * float64(shape.Nz)))
	ok = i >= 0 && i < shape.Nx && j >= 0 && j < shape.Ny && k >= 0 && k < shape.Nz
	return
}

// SampleDensity returns the density at p, or 0 if p falls outside the grid.
func (s *Sampler) SampleDensity(p Vec3) float64 {
	i, j, k, ok := voxelIndex(p, s.Density.Shape)
	if !ok {
		return 0
	}
	return s.Density.Data[s.Density.Shape.Index(i, j, k)]
}

// SampleColor returns the color at p, or DefaultColor if p falls outside
// the grid.
func (s *Sampler) SampleColor(p Vec3) Vec3 {
	i, j, k, ok := voxelIndex(p, s.Color.Shape)
	if !ok {
		return s.DefaultColor
	}
	return s.Color.Data[s.Color.Shape.Index(i, j, k)]
}

// SampleIOR returns the index of refraction at p. η is 1 wherever no IOR
// grid is configured, or p falls outside the grid.
func (s *Sampler) SampleIOR(p Vec3) float64 {
	if s.IOR == nil {
		return 1
	}
	i, j, k, ok := voxelIndex(p, s.IOR.Shape)
	if !ok {
		return 1
	}
	return s.IOR.Data[s.IOR.Shape.Index(i, j, k)]
}

// InsideCube reports whether p lies strictly within [-0.5, 0.5]^3.
func InsideCube(p Vec3) bool {
	return p.X > -0.5 && p.X < 0.5 &&
		p.Y > -0.5 && p.Y < 0.5 &&
		p.Z > -0.5 && p.Z < 0.5
}

// MayStillEnter is the march-termination oracle of spec §4.1: it returns
// false as soon as p has passed the cube, on any axis, in the direction of
// travel along d.
func MayStillEnter(p, d Vec3) bool {
	if p.X > 0.5 && d.X > 0 || p.X < -0.5 && d.X < 0 {
		return false
	}
	if p.Y > 0.5 && d.Y > 0 || p.Y < -0.5 && d.Y < 0 {
		return false
	}
	if p.Z > 0.5 && d.Z > 0 || p.Z < -0.5 && d.Z < 0 {
		return false
	}
	return true
}

// IrradianceAt returns E at the voxel covering p, or the zero vector if p
// falls outside the grid.
func IrradianceAt(e *IrradianceGrid, p Vec3) Vec3 {
	i, j, k, ok := voxelIndex(p, e.Shape)
	if !ok {
		return Vec3{}
	}
	return e.Data[e.Shape.Index(i, j, k)]
}
