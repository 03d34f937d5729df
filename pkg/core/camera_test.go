package core

import (
	"math"
	"testing"
)

func closeEnough(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestThetaClamping(t *testing.T) {
	c := NewCamera()
	c.SetTheta(100, true)
	if !closeEnough(c.Theta, math.Pi/2, 1e-12) {
		t.Errorf("theta should clamp to pi/2, got %v", c.Theta)
	}

	c2 := NewCamera()
	c2.SetTheta(90, true)
	if c.Theta != c2.Theta {
		t.Errorf("theta=100deg and theta=90deg should clamp to the same value: %v vs %v", c.Theta, c2.Theta)
	}
}

func TestPhiPeriodicity(t *testing.T) {
	c1 := NewCamera()
	c1.SetPhi(30, true)
	c2 := NewCamera()
	c2.SetPhi(390, true) // 30 + 360

	b1 := c1.ComputeBasis()
	b2 := c2.ComputeBasis()

	if !closeEnough(b1.Eye.X, b2.Eye.X, 1e-9) || !closeEnough(b1.Eye.Y, b2.Eye.Y, 1e-9) || !closeEnough(b1.Eye.Z, b2.Eye.Z, 1e-9) {
		t.Errorf("camera basis should be identical at phi and phi+360deg: %+v vs %+v", b1.Eye, b2.Eye)
	}
}

func TestFieldOfViewDefault(t *testing.T) {
	c := NewCamera()
	if !closeEnough(c.FovTan, 0.5924, 1e-4) {
		t.Errorf("default fovTan should be ~0.5924, got %v", c.FovTan)
	}
	if !closeEnough(c.Distance, 3, 1e-12) {
		t.Errorf("default camera distance should be 3, got %v", c.Distance)
	}
}

func TestFastSkipDistance(t *testing.T) {
	c := NewCamera() // distance 3
	got := c.FastSkipDistance()
	want := 3 - cubeCircumscribedSphereRadius
	if !closeEnough(got, want, 1e-12) {
		t.Errorf("fast-skip distance = %v, want %v", got, want)
	}

	c.SetDistance(0.5) // inside the circumscribed sphere: no skip
	if got := c.FastSkipDistance(); got != 0 {
		t.Errorf("fast-skip distance should be 0 once inside the bounding sphere, got %v", got)
	}
}

func TestSetFieldOfViewRoundTrip(t *testing.T) {
	c := NewCamera()
	c.SetFieldOfView(33, true)
	got := c.FieldOfView(true)
	if !closeEnough(got, 33, 1e-9) {
		t.Errorf("fov round trip = %v, want 33", got)
	}
}
