// Package voxelray is the driver (§2/§4.6/§6) for the volumetric
// ray-march renderer: it wires pkg/core's scene state to pkg/raymarch's
// kernels and logs precompute/frame timings. It has no rendering logic of
// its own.
package voxelray

import (
	"time"

	"github.com/voxelray/voxelray/pkg/core"
	"github.com/voxelray/voxelray/pkg/raymarch"
)

// Driver invokes light precompute on demand and the camera pass per
// frame, writing into an RGB image buffer.
type Driver struct {
	Scene  *core.Scene
	Logger Logger
}

// NewDriver returns a Driver for scene. If logger is nil, a no-op logger
// is used.
func NewDriver(scene *core.Scene, logger Logger) *Driver {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Driver{Scene: scene, Logger: logger}
}

// UpdateLight runs the light precompute pass (§4.3). Idempotent; must be
// called at least once before the first Render, and again whenever the
// density, IOR, or light set changes.
func (d *Driver) UpdateLight() {
	start := time.Now()
	raymarch.UpdateLight(d.Scene)
	d.Logger.Debugf("update_light: %d voxels in %s", d.Scene.Density.Shape.Len(), time.Since(start))
}

// Render runs the camera pass (§4.4) into target. Calling Render before
// any UpdateLight is allowed (§4.7 caller-contract error) and yields an
// all-background image, since Irradiance stays zero.
func (d *Driver) Render(target *core.Image) {
	if !d.Scene.LightPrecomputed() {
		d.Logger.Warnf("render called before update_light; image will be all-background")
	}
	start := time.Now()
	raymarch.Render(d.Scene, target)
	d.Logger.Debugf("render: %dx%d in %s", target.W, target.H, time.Since(start))
}
