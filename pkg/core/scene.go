package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Scene is the scene state of spec §4.6/§6: the four input grids, the
// light set, render settings, camera state, and the owned irradiance grid.
// It holds no rendering logic of its own; the kernels in pkg/raymarch
// operate on it. Grounded on voxelrt/rt/core/scene.go's Scene aggregate
// and NewScene constructor pattern, and on taichi_volume_renderer.Scene's
// validate-at-construction behavior.
type Scene struct {
	ID uuid.UUID

	Density *DensityGrid
	Color   *ColorGrid
	IOR     *IORGrid // nil if no IOR field is used

	Lights []Light

	Irradiance *IrradianceGrid

	Camera   *Camera
	Settings Settings

	// lightPrecomputed is true once UpdateLight has run at least once;
	// Render is allowed before that (§4.7 caller-contract error) but the
	// image will be all-background since Irradiance stays zero.
	lightPrecomputed bool
}

// NewScene validates the grids (§4.7: shape mismatches are a construction-
// time configuration error) and returns a Scene with an irradiance grid
// pre-allocated at the same shape, a default camera, and default settings.
// ior may be nil. lights may be empty (§4.7: yields E ≡ 0).
func NewScene(density *DensityGrid, color *ColorGrid, ior *IORGrid, lights []Light) (*Scene, error) {
	if density == nil {
		return nil, fmt.Errorf("scene: density grid is required")
	}
	if color == nil {
		return nil, fmt.Errorf("scene: color grid is required")
	}
	if !density.Shape.Equal(color.Shape) {
		return nil, fmt.Errorf("scene: color grid shape %+v does not match density grid shape %+v", color.Shape, density.Shape)
	}
	if ior != nil && !ior.Shape.Equal(density.Shape) {
		return nil, fmt.Errorf("scene: ior grid shape %+v does not match density grid shape %+v", ior.Shape, density.Shape)
	}
	for idx, l := range lights {
		if l.Intensity.X < 0 || l.Intensity.Y < 0 || l.Intensity.Z < 0 {
			return nil, fmt.Errorf("scene: light %d has a negative intensity component: %+v", idx, l.Intensity)
		}
	}

	return &Scene{
		ID:         uuid.New(),
		Density:    density,
		Color:      color,
		IOR:        ior,
		Lights:     append([]Light(nil), lights...),
		Irradiance: NewIrradianceGrid(density.Shape),
		Camera:     NewCamera(),
		Settings:   DefaultSettings(density.Shape),
	}, nil
}

// Sampler builds the grid sampler (§4.1) for this scene's current grids.
func (s *Scene) Sampler() *Sampler {
	return &Sampler{Density: s.Density, Color: s.Color, IOR: s.IOR}
}

// MarkLightPrecomputed records that UpdateLight has run. Called by
// pkg/raymarch after a successful light precompute pass.
func (s *Scene) MarkLightPrecomputed() { s.lightPrecomputed = true }

// LightPrecomputed reports whether UpdateLight has ever run on this scene.
func (s *Scene) LightPrecomputed() bool { return s.lightPrecomputed }

// SetLights replaces the light set. Negative intensities are rejected
// (§4.7/§7 configuration error); the scene's previous lights are kept on
// error.
func (s *Scene) SetLights(lights []Light) error {
	for idx, l := range lights {
		if l.Intensity.X < 0 || l.Intensity.Y < 0 || l.Intensity.Z < 0 {
			return fmt.Errorf("scene: light %d has a negative intensity component: %+v", idx, l.Intensity)
		}
	}
	s.Lights = append([]Light(nil), lights...)
	return nil
}

// SetSettings validates and replaces the render settings (§4.7/§7). The
// scene's previous settings are kept on error.
func (s *Scene) SetSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.Settings = settings
	return nil
}

// SetCameraDistance validates and sets the camera's orbit distance
// (§3: distance > 0 is an invariant).
func (s *Scene) SetCameraDistance(distance float64) error {
	if distance <= 0 {
		return fmt.Errorf("scene: camera distance must be > 0, got %v", distance)
	}
	s.Camera.SetDistance(distance)
	return nil
}
