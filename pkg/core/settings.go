package core

import "fmt"

// Settings holds the render settings of spec §3: step lengths, the
// transmittance stop threshold, the background color, and the density
// multiplier.
type Settings struct {
	StepLength         float64
	StepLengthLight    float64
	StopThreshold      float64
	Background         Vec3
	SmokeDensityFactor float64
}

// DefaultSettings returns spec §3's defaults for a grid of the given shape:
// StepLength = 1/max(Nx,Ny,Nz), StepLengthLight = 3/max(Nx,Ny,Nz),
// StopThreshold = 0.01, Background = (0.2,0.2,0.2), SmokeDensityFactor = 1.
func DefaultSettings(shape Shape) Settings {
	m := float64(shape.Max())
	return Settings{
		StepLength:         1 / m,
		StepLengthLight:    3 / m,
		StopThreshold:      0.01,
		Background:         Vec3{0.2, 0.2, 0.2},
		SmokeDensityFactor: 1,
	}
}

// Validate checks the configuration-error conditions of spec §4.7/§7: a
// non-positive step length is rejected at configuration time.
func (s Settings) Validate() error {
	if s.StepLength <= 0 {
		return fmt.Errorf("render settings: step length must be > 0, got %v", s.StepLength)
	}
	if s.StepLengthLight <= 0 {
		return fmt.Errorf("render settings: light step length must be > 0, got %v", s.StepLengthLight)
	}
	if s.StopThreshold < 0 || s.StopThreshold > 1 {
		return fmt.Errorf("render settings: stop threshold must be in [0,1], got %v", s.StopThreshold)
	}
	if s.SmokeDensityFactor < 0 {
		return fmt.Errorf("render settings: smoke density factor must be >= 0, got %v", s.SmokeDensityFactor)
	}
	return nil
}
