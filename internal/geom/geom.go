// Package geom holds the vector and rotation helpers shared by the mover,
// the camera and the locomotion controller. Axes follow the usual game
// convention: +Y up, +Z forward, +X right.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vec3 = mgl64.Vec3

type Quat = mgl64.Quat

const epsilon = 1e-9

var (
	Up      = Vec3{0, 1, 0}
	Forward = Vec3{0, 0, 1}
	Right   = Vec3{1, 0, 0}
)

// Flatten drops the vertical component.
func Flatten(v Vec3) Vec3 {
	return Vec3{v[0], 0, v[2]}
}

// Normalize returns the unit vector of v, or the zero vector when v has no
// length. mgl64's Normalize yields NaN in that case.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l <= epsilon {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// PlanarLenSqr is x² + z².
func PlanarLenSqr(x, z float64) float64 {
	return x*x + z*z
}

func IsZero(v Vec3) bool {
	return math.Abs(v[0]) <= epsilon && math.Abs(v[1]) <= epsilon && math.Abs(v[2]) <= epsilon
}

// LookRotation returns the rotation whose forward axis points along dir with
// no roll. A zero dir yields the identity.
func LookRotation(dir Vec3) Quat {
	if IsZero(dir) {
		return mgl64.QuatIdent()
	}
	horizontal := math.Hypot(dir[0], dir[2])
	yaw := math.Atan2(dir[0], dir[2])
	pitch := math.Atan2(-dir[1], horizontal)
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, Right)).Normalize()
}

// Slerp interpolates along the shorter arc. mgl64.QuatSlerp does not flip
// the target when the quaternions lie in opposite hemispheres.
func Slerp(from, to Quat, t float64) Quat {
	if t <= 0 {
		return from
	}
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	if t >= 1 {
		return to.Normalize()
	}
	return mgl64.QuatSlerp(from, to, t).Normalize()
}

// ForwardOf is the +Z axis rotated by q.
func ForwardOf(q Quat) Vec3 {
	return q.Rotate(Forward)
}

// YawDegrees is the heading of q around +Y, 0 facing +Z, 90 facing +X.
func YawDegrees(q Quat) float64 {
	f := ForwardOf(q)
	return mgl64.RadToDeg(math.Atan2(f[0], f[2]))
}

// AngleBetween is the rotation angle in degrees separating a and b.
func AngleBetween(a, b Quat) float64 {
	dot := math.Abs(a.Normalize().Dot(b.Normalize()))
	if dot > 1 {
		dot = 1
	}
	return mgl64.RadToDeg(2 * math.Acos(dot))
}
