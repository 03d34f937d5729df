package demoscenes

import "testing"

func TestBasicBuildsAValidScene(t *testing.T) {
	scene, err := Basic(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(scene.Lights) != 2 {
		t.Errorf("expected 2 lights, got %d", len(scene.Lights))
	}
	if scene.IOR != nil {
		t.Error("the basic demo has no IOR field")
	}
}

func TestRefractionBuildsAValidSceneWithIOR(t *testing.T) {
	scene, err := Refraction(12)
	if err != nil {
		t.Fatal(err)
	}
	if scene.IOR == nil {
		t.Fatal("expected an IOR field")
	}
	for _, eta := range scene.IOR.Data {
		if eta < 1 || eta > 1.5 {
			t.Errorf("ior out of clipped range [1,1.5]: %v", eta)
		}
	}
}

func TestStrangeAttractorAccumulatesNonNegativeDensity(t *testing.T) {
	scene, err := StrangeAttractor(16)
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for _, d := range scene.Density.Data {
		if d < 0 {
			t.Fatalf("negative density %v", d)
		}
		total += d
	}
	if total == 0 {
		t.Error("expected the Lorenz trajectory to visit at least one voxel")
	}
	if scene.Settings.SmokeDensityFactor != 1.5 {
		t.Errorf("expected smoke density factor 1.5, got %v", scene.Settings.SmokeDensityFactor)
	}
}
