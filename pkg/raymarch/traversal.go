package raymarch

import "github.com/voxelray/voxelray/pkg/core"

// Traverse is the ray traversal primitive of spec §4.2: starting at
// origin, it advances pos by dir*step each iteration until either
// core.MayStillEnter(pos, *dir) is false or shouldStop reports true. At
// each step it calls visit(pos) exactly once; visit may mutate *dir (used
// by the camera pass's IOR bending, §4.5) before the position advances.
//
// It does not clamp pos to the cube; the sampler's index guard (§4.1)
// handles out-of-range points, and the very first voxel visited after a
// fast-skip may legitimately be outside the cube.
func Traverse(origin core.Vec3, dir *core.Vec3, step float64, shouldStop func() bool, visit func(pos core.Vec3)) {
	pos := origin
	for core.MayStillEnter(pos, *dir) {
		if shouldStop != nil && shouldStop() {
			break
		}
		visit(pos)
		pos = pos.Add(dir.Scale(step))
	}
}
