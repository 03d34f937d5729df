package raymarch

import "github.com/voxelray/voxelray/pkg/core"

// UpdateLight runs the light precomputation kernel of spec §4.3: for every
// voxel, integrate the transmittance from each point light to that voxel
// and accumulate per-voxel incident irradiance into scene.Irradiance.
//
// Voxels are independent and are processed by a worker pool (§5); within
// one voxel, lights are accumulated in the input order so results are
// reproducible for a given platform, matching the spec's ordering
// guarantee.
func UpdateLight(scene *core.Scene) {
	shape := scene.Density.Shape
	sampler := scene.Sampler()
	stepLight := scene.Settings.StepLengthLight
	factor := scene.Settings.SmokeDensityFactor
	lights := scene.Lights
	e := scene.Irradiance

	parallelFor(shape.Nx, func(i int) {
		for j := 0; j < shape.Ny; j++ {
			for k := 0; k < shape.Nz; k++ {
				center := shape.VoxelCenter(i, j, k)
				var accum core.Vec3

				for _, light := range lights {
					v := light.Position.Sub(center)
					rSq := v.LengthSq()
					dir := v.Normalize()
					transmittance := 1.0

					Traverse(center, &dir, stepLight, nil, func(pos core.Vec3) {
						rho := sampler.SampleDensity(pos)
						transmittance *= 1 - factor*rho*stepLight
					})

					// rSq == 0 (a light coincident with a voxel center) is not
					// defended against, per spec §4.7/§7; it produces +Inf/NaN
					// like the reference implementation's unguarded division.
					accum = accum.Add(light.Intensity.Scale(transmittance / rSq))
				}

				e.Data[shape.Index(i, j, k)] = accum
			}
		}
	})

	scene.MarkLightPrecomputed()
}
