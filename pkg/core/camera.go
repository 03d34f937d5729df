package core

import "math"

// Camera holds the orbiting spherical camera state of spec §3/§4.4: azimuth
// φ (wraps freely), elevation θ (clamped to [-π/2, π/2]), distance from the
// origin, and the vertical field of view stored as fovTan = 2*tan(fov/2)
// for convenience in the pixel-ray formula.
//
// Grounded on voxelrt/rt/core/camera.go's CameraState struct shape, with
// the teacher's yaw/pitch FPS basis replaced by the spec's φ/θ orbit basis
// (field names and formulas follow original_source's Scene camera fields).
type Camera struct {
	Phi      float64
	Theta    float64
	Distance float64
	FovTan   float64
}

// DefaultFovTan is 2*tan(33°/2), the renderer's default vertical FOV (§6).
const DefaultFovTan = 0.5924

// cubeCircumscribedSphereRadius is √3/2, the radius of the sphere that
// circumscribes the unit cube (§4.4 step 3, §9 glossary).
const cubeCircumscribedSphereRadius = 0.8660254037844386

// NewCamera returns a camera at the spec's defaults: distance 3, φ=θ=0,
// default FOV.
func NewCamera() *Camera {
	return &Camera{
		Phi:      0,
		Theta:    0,
		Distance: 3,
		FovTan:   DefaultFovTan,
	}
}

func clampTheta(theta float64) float64 {
	if theta < -math.Pi/2 {
		return -math.Pi / 2
	}
	if theta > math.Pi/2 {
		return math.Pi / 2
	}
	return theta
}

// SetPhi sets the azimuth; φ wraps freely and is not normalized (spec §8
// property 6: rendering at φ and φ+360° must be identical, which holds for
// any φ since sin/cos are periodic).
func (c *Camera) SetPhi(angle float64, degrees bool) {
	c.Phi = toRadians(angle, degrees)
}

func (c *Camera) GetPhi(degrees bool) float64 { return fromRadians(c.Phi, degrees) }

// SetTheta sets the elevation, clamping to [-π/2, π/2] (§3, §8 property 7).
func (c *Camera) SetTheta(angle float64, degrees bool) {
	c.Theta = clampTheta(toRadians(angle, degrees))
}

func (c *Camera) GetTheta(degrees bool) float64 { return fromRadians(c.Theta, degrees) }

// SetDistance sets the camera's orbit distance. distance must be > 0 (§4.7);
// the caller is expected to validate before calling (Scene.SetCameraDistance
// wraps this with the configuration-error check).
func (c *Camera) SetDistance(distance float64) { c.Distance = distance }

// SetFieldOfView sets the vertical field of view, storing fovTan =
// 2*tan(angle/2) as spec §3/§6 require.
func (c *Camera) SetFieldOfView(angle float64, degrees bool) {
	rad := toRadians(angle, degrees)
	c.FovTan = 2 * math.Tan(rad/2)
}

// FieldOfView returns the vertical field of view implied by fovTan.
func (c *Camera) FieldOfView(degrees bool) float64 {
	rad := 2 * math.Atan(c.FovTan/2)
	return fromRadians(rad, degrees)
}

func toRadians(angle float64, degrees bool) float64 {
	if degrees {
		return angle * math.Pi / 180
	}
	return angle
}

func fromRadians(angle float64, degrees bool) float64 {
	if degrees {
		return angle * 180 / math.Pi
	}
	return angle
}

// Basis is the camera's world-space eye position and the forward/right/up
// ray-generation vectors of spec §4.4.
type Basis struct {
	Eye     Vec3
	Forward Vec3
	U       Vec3 // horizontal
	V       Vec3 // vertical
}

// ComputeBasis builds the camera basis from (φ, θ, distance) per §4.4.
func (c *Camera) ComputeBasis() Basis {
	cosTheta := math.Cos(c.Theta)
	sinTheta := math.Sin(c.Theta)
	cosPhi := math.Cos(c.Phi)
	sinPhi := math.Sin(c.Phi)

	eye := Vec3{
		X: c.Distance * cosPhi * cosTheta,
		Y: c.Distance * sinPhi * cosTheta,
		Z: c.Distance * sinTheta,
	}
	forward := eye.Scale(-1 / c.Distance)
	u := Vec3{X: -sinPhi, Y: cosPhi, Z: 0}
	v := Vec3{X: -cosPhi * sinTheta, Y: -sinPhi * sinTheta, Z: cosTheta}

	return Basis{Eye: eye, Forward: forward, U: u, V: v}
}

// PixelRayDirection computes the normalized ray direction for pixel (i, j)
// of a (w, h) image, per §4.4 step 1. Pixel (0,0) is the lower-left; j
// increases upward.
func (c *Camera) PixelRayDirection(b Basis, i, j, w, h int) Vec3 {
	fu := c.FovTan * (float64(i) - float64(w)/2) / float64(h)
	fv := c.FovTan * (float64(j)/float64(h) - 0.5)
	d := b.Forward.Add(b.U.Scale(fu)).Add(b.V.Scale(fv))
	return d.Normalize()
}

// FastSkipDistance returns the distance to advance the camera ray before
// marching, to skip empty space outside the cube's circumscribed sphere
// (§4.4 step 3). It is 0 (no skip) once the camera is inside that sphere.
func (c *Camera) FastSkipDistance() float64 {
	d := c.Distance - cubeCircumscribedSphereRadius
	if d > 0 {
		return d
	}
	return 0
}
