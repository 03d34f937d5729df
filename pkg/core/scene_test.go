package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGrids(n int) (*DensityGrid, *ColorGrid) {
	shape := uniformShape(n)
	d, _ := NewDensityGrid(shape, make([]float64, shape.Len()))
	c, _ := NewColorGrid(shape, make([]Vec3, shape.Len()))
	return d, c
}

func TestNewSceneShapeMismatch(t *testing.T) {
	density, _ := newTestGrids(4)
	_, badColor := newTestGrids(5)

	if _, err := NewScene(density, badColor, nil, nil); err == nil {
		t.Error("expected a shape-mismatch error")
	}
}

func TestNewSceneIORShapeMismatch(t *testing.T) {
	density, color := newTestGrids(4)
	badIOR, err := NewIORGrid(uniformShape(5), make([]float64, uniformShape(5).Len()))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewScene(density, color, badIOR, nil); err == nil {
		t.Error("expected an ior shape-mismatch error")
	}
}

func TestNewSceneDefaults(t *testing.T) {
	density, color := newTestGrids(10)
	scene, err := NewScene(density, color, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0.1, scene.Settings.StepLength, "default step length should be 1/max(shape)")
	require.Equal(t, 0.3, scene.Settings.StepLengthLight, "default light step length should be 3/max(shape)")
	require.Equal(t, density.Shape, scene.Irradiance.Shape, "irradiance grid should share the density grid's shape")
	require.False(t, scene.LightPrecomputed(), "a freshly constructed scene should not report light as precomputed")
}

func TestNewSceneRejectsNegativeLightIntensity(t *testing.T) {
	density, color := newTestGrids(4)
	lights := []Light{NewLight(Vec3{Z: 5}, Vec3{X: -1})}
	if _, err := NewScene(density, color, nil, lights); err == nil {
		t.Error("expected an error for negative light intensity")
	}
}

func TestSceneSetSettingsRejectsBadStepLength(t *testing.T) {
	density, color := newTestGrids(4)
	scene, err := NewScene(density, color, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	bad := scene.Settings
	bad.StepLength = 0
	if err := scene.SetSettings(bad); err == nil {
		t.Error("expected an error for a non-positive step length")
	}
	if scene.Settings.StepLength == 0 {
		t.Error("scene settings should be unchanged after a rejected update")
	}
}

func TestSceneSetCameraDistanceRejectsNonPositive(t *testing.T) {
	density, color := newTestGrids(4)
	scene, err := NewScene(density, color, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := scene.SetCameraDistance(0); err == nil {
		t.Error("expected an error for a non-positive camera distance")
	}
	if err := scene.SetCameraDistance(-1); err == nil {
		t.Error("expected an error for a negative camera distance")
	}
}
