// Package demoscenes builds the volume/light configurations used by
// cmd/volray-render and cmd/volray-window's -scene flag, so the three demo
// scenes exist in exactly one place instead of being duplicated between a
// headless and an interactive entry point.
//
// Each builder is a direct port of one of original_source/examples/*.py,
// translated from NumPy boolean-mask construction to explicit per-voxel
// loops over the world-space voxel centers spec §3 defines.
package demoscenes

import (
	"math"
	"math/rand"

	"github.com/voxelray/voxelray/pkg/core"
)

// Basic ports original_source/examples/basic_example.py: 7 of 8 possible
// spheres on a +-0.25 lattice (one octant is carved out), a soft blob
// whose density falls off linearly to zero at radius 0.25 around the
// carved octant's center, a color field that is black in the +++ octant
// and white elsewhere, and two colored point lights.
func Basic(n int) (*core.Scene, error) {
	shape := core.Shape{Nx: n, Ny: n, Nz: n}
	density := make([]float64, shape.Len())
	color := make([]core.Vec3, shape.Len())

	centers := [2]float64{-0.25, 0.25}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := shape.VoxelCenter(i, j, k)
				idx := shape.Index(i, j, k)

				d := 0.0
				for _, x0 := range centers {
					for _, y0 := range centers {
						for _, z0 := range centers {
							if x0 > 0 && y0 < 0 && z0 > 0 {
								continue // carved octant
							}
							dx, dy, dz := p.X-x0, p.Y-y0, p.Z-z0
							if dx*dx+dy*dy+dz*dz < 0.25*0.25 {
								d = 6
							}
						}
					}
				}
				blobDist := math.Sqrt((p.X-0.25)*(p.X-0.25) + (p.Y+0.25)*(p.Y+0.25) + (p.Z-0.25)*(p.Z-0.25))
				d += math.Max(0, 1-blobDist/0.25) * 10
				density[idx] = d

				if p.X > 0 && p.Y > 0 && p.Z > 0 {
					color[idx] = core.Vec3{}
				} else {
					color[idx] = core.Vec3{X: 1, Y: 1, Z: 1}
				}
			}
		}
	}

	densityGrid, err := core.NewDensityGrid(shape, density)
	if err != nil {
		return nil, err
	}
	colorGrid, err := core.NewColorGrid(shape, color)
	if err != nil {
		return nil, err
	}

	lights := []core.Light{
		core.NewLight(core.Vec3{X: 0, Y: 4, Z: 7}, core.Vec3{X: 100, Y: 50, Z: 0}),
		core.NewLight(core.Vec3{X: 0, Y: 0, Z: 8}, core.Vec3{X: 0, Y: 0, Z: 100}),
	}
	return core.NewScene(densityGrid, colorGrid, nil, lights)
}

// Refraction ports original_source/examples/refraction.py: a checkered
// ground plane below z = -ballRadius and a smoothed glass-ball IOR field
// clipped to [1, 1.5], demonstrating the eikonal bending of spec §4.5 (S5).
func Refraction(n int) (*core.Scene, error) {
	const (
		ballRadius = 0.3
		sharpness  = 7.0
	)
	shape := core.Shape{Nx: n, Ny: n, Nz: n}
	density := make([]float64, shape.Len())
	color := make([]core.Vec3, shape.Len())
	ior := make([]float64, shape.Len())

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := shape.VoxelCenter(i, j, k)
				idx := shape.Index(i, j, k)

				if p.Z <= -ballRadius {
					density[idx] = 20
					checker := (math.Round(p.X*10) + math.Round(p.Y*10))
					if math.Mod(checker, 2) == 0 {
						color[idx] = core.Vec3{}
					} else {
						color[idx] = core.Vec3{X: 1, Y: 1, Z: 1}
					}
				}

				r := p.Length()
				eta := 1.25 - (r-ballRadius)*sharpness
				if eta < 1 {
					eta = 1
				}
				if eta > 1.5 {
					eta = 1.5
				}
				ior[idx] = eta
			}
		}
	}

	densityGrid, err := core.NewDensityGrid(shape, density)
	if err != nil {
		return nil, err
	}
	colorGrid, err := core.NewColorGrid(shape, color)
	if err != nil {
		return nil, err
	}
	iorGrid, err := core.NewIORGrid(shape, ior)
	if err != nil {
		return nil, err
	}

	lights := []core.Light{
		core.NewLight(core.Vec3{X: 0, Y: 0, Z: 5}, core.Vec3{X: 80, Y: 80, Z: 80}),
	}
	scene, err := core.NewScene(densityGrid, colorGrid, iorGrid, lights)
	if err != nil {
		return nil, err
	}
	// A three-quarter view looking along the cube's diagonal, matching the
	// camera angles refraction.py requests (the angle between (1,1,0) and
	// (1,1,1)).
	scene.Camera.SetPhi(45, true)
	scene.Camera.SetTheta(math.Acos(2/(math.Sqrt2*math.Sqrt(3)))*180/math.Pi, true)
	return scene, nil
}

// lorenzLo and lorenzHi bound the plot_range original_source/examples/strange_attractor.py
// maps the integrated trajectory into before rescaling into the unit cube.
var lorenzLo = core.Vec3{X: -35, Y: -35, Z: -10}
var lorenzHi = core.Vec3{X: 35, Y: 35, Z: 60}

// StrangeAttractor ports original_source/examples/strange_attractor.py:
// Euler-integrates the Lorenz system from numParticles random starts and
// accumulates a visitation count into the density grid, producing the
// characteristic butterfly attractor as a volumetric density field.
func StrangeAttractor(n int) (*core.Scene, error) {
	const (
		steps        = 3000
		dt           = 0.00025
		sigma        = 10.0
		rho          = 28.0
		beta         = 8.0 / 3.0
		numParticles = 500
	)
	shape := core.Shape{Nx: n, Ny: n, Nz: n}
	density := make([]float64, shape.Len())
	color := make([]core.Vec3, shape.Len())
	for i := range color {
		color[i] = core.Vec3{X: 1, Y: 1, Z: 1}
	}

	rng := rand.New(rand.NewSource(0))
	extent := lorenzHi.Sub(lorenzLo)

	for particle := 0; particle < numParticles; particle++ {
		p := core.Vec3{
			X: rng.Float64()*extent.X + lorenzLo.X,
			Y: rng.Float64()*extent.Y + lorenzLo.Y,
			Z: rng.Float64()*extent.Z + lorenzLo.Z,
		}
		for step := 0; step < steps; step++ {
			dp := core.Vec3{
				X: sigma * (p.Y - p.X),
				Y: p.X*(rho-p.Z) - p.Y,
				Z: p.X*p.Y - beta*p.Z,
			}
			p = p.Add(dp.Scale(dt))

			mapped := p.Sub(lorenzLo)
			i := int(mapped.X / extent.X * float64(n))
			j := int(mapped.Y / extent.Y * float64(n))
			k := int(mapped.Z / extent.Z * float64(n))
			if i >= 0 && i < n && j >= 0 && j < n && k >= 0 && k < n {
				density[shape.Index(i, j, k)]++
			}
		}
	}

	densityGrid, err := core.NewDensityGrid(shape, density)
	if err != nil {
		return nil, err
	}
	colorGrid, err := core.NewColorGrid(shape, color)
	if err != nil {
		return nil, err
	}

	lights := []core.Light{
		core.NewLight(core.Vec3{X: 0, Y: 4, Z: 7}, core.Vec3{X: 100, Y: 50, Z: 0}),
		core.NewLight(core.Vec3{X: 0, Y: 0, Z: 8}, core.Vec3{X: 0, Y: 0, Z: 100}),
	}
	scene, err := core.NewScene(densityGrid, colorGrid, nil, lights)
	if err != nil {
		return nil, err
	}
	scene.Settings.SmokeDensityFactor = 1.5
	scene.Settings.StepLengthLight = 0.1 / float64(shape.Max())
	return scene, nil
}
