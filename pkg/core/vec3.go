// Package core holds the voxel grid sampler, camera, light, and scene state
// that the raymarch kernels operate on.
package core

import "math"

// Vec3 is a float64 3-vector. The kernels need float64 precision to satisfy
// the renderer's bitwise-reproducibility and tight numeric tolerances, so
// this is hand-rolled rather than built on mgl32.Vec3 (float32); see
// DESIGN.md.
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}
func (v Vec3) LengthSq() float64 { return v.Dot(v) }
func (v Vec3) Length() float64   { return math.Sqrt(v.LengthSq()) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged (the kernels never normalize a zero-length ray direction).
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }
