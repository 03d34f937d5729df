package core

// Light is a point light: a world-space position and an RGB intensity
// (§3). Grounded on voxelrt/rt/core/light.go's Light struct and on
// taichi_volume_renderer's point_lights_pos/point_lights_intensity pair,
// simplified to the point-light-only case this renderer models.
type Light struct {
	Position  Vec3
	Intensity Vec3
}

func NewLight(position, intensity Vec3) Light {
	return Light{Position: position, Intensity: intensity}
}
