package raymarch

import "github.com/voxelray/voxelray/pkg/core"

// bendDirection applies the eikonal ray-bending update of spec §4.5: it
// samples the central-difference gradient of the IOR field at pos, then
// bends *dir toward increasing IOR, projected orthogonal to the current
// direction, and renormalizes. The bending magnitude scales with step so
// deflection is discretization-independent to first order. When IOR is
// uniformly 1 this is a no-op to first order (∇η ≈ 0), matching spec §8
// property 5 (IOR identity).
func bendDirection(sampler *core.Sampler, shape core.Shape, pos core.Vec3, dir *core.Vec3, step float64) {
	ex := 1 / float64(shape.Nx)
	ey := 1 / float64(shape.Ny)
	ez := 1 / float64(shape.Nz)

	grad := core.Vec3{
		X: (sampler.SampleIOR(pos.Add(core.Vec3{X: ex})) - sampler.SampleIOR(pos.Sub(core.Vec3{X: ex}))) / (2 * ex),
		Y: (sampler.SampleIOR(pos.Add(core.Vec3{Y: ey})) - sampler.SampleIOR(pos.Sub(core.Vec3{Y: ey}))) / (2 * ey),
		Z: (sampler.SampleIOR(pos.Add(core.Vec3{Z: ez})) - sampler.SampleIOR(pos.Sub(core.Vec3{Z: ez}))) / (2 * ez),
	}

	eta0 := sampler.SampleIOR(pos)
	d := *dir
	tangentialGrad := grad.Sub(d.Scale(grad.Dot(d)))
	bent := d.Add(tangentialGrad.Scale(step / eta0))
	*dir = bent.Normalize()
}
