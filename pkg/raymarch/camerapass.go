package raymarch

import "github.com/voxelray/voxelray/pkg/core"

// Render runs the camera pass kernel of spec §4.4: for every pixel, build
// the primary ray, fast-skip to the cube's circumscribed sphere, then
// march through the volume accumulating premultiplied emission weighted
// by the precomputed irradiance and attenuated by running transmittance.
// When scene.IOR is present, the ray is bent at each step by the local IOR
// gradient (§4.5).
//
// Pixels are independent and are processed by a worker pool (§5); target
// must already be sized (scene.Camera, scene.Settings)-appropriately by
// the caller.
func Render(scene *core.Scene, target *core.Image) {
	basis := scene.Camera.ComputeBasis()
	sampler := scene.Sampler()
	step := scene.Settings.StepLength
	factor := scene.Settings.SmokeDensityFactor
	stopThreshold := scene.Settings.StopThreshold
	background := scene.Settings.Background
	fastSkip := scene.Camera.FastSkipDistance()
	shape := scene.Density.Shape
	hasIOR := scene.IOR != nil

	w, h := target.W, target.H

	parallelFor(w, func(i int) {
		for j := 0; j < h; j++ {
			dir := scene.Camera.PixelRayDirection(basis, i, j, w, h)

			pos := basis.Eye
			if fastSkip > 0 {
				pos = pos.Add(dir.Scale(fastSkip))
			}

			color := core.Vec3{}
			transmittance := 1.0

			Traverse(pos, &dir, step, func() bool {
				return transmittance < stopThreshold
			}, func(p core.Vec3) {
				rho := sampler.SampleDensity(p)
				c := sampler.SampleColor(p)
				e := core.IrradianceAt(scene.Irradiance, p)

				contribution := c.Mul(e).Scale(factor * rho * step * transmittance)
				color = color.Add(contribution)
				transmittance *= 1 - factor*rho*step

				if hasIOR {
					bendDirection(sampler, shape, p, &dir, step)
				}
			})

			color = color.Add(background.Scale(transmittance))
			target.Set(i, j, color)
		}
	})
}
