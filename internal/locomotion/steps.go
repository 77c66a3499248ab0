package locomotion

import (
	"math"

	"github.com/Versifine/stride/internal/geom"
)

// SprintBlendScale amplifies the animation blend while sprinting.
const SprintBlendScale = 1.5

// MoveDirection projects the camera axes onto the ground plane and combines
// them with the input axes. The result has no vertical component and is
// either a unit vector or zero. A camera looking straight up or down has no
// planar forward and contributes nothing.
func MoveDirection(camForward, camRight geom.Vec3, x, z float64) geom.Vec3 {
	forward := geom.Normalize(geom.Flatten(camForward))
	right := geom.Normalize(geom.Flatten(camRight))
	return geom.Normalize(forward.Mul(z).Add(right.Mul(x)))
}

// ShouldRotate reports whether input-driven turning applies this frame.
func ShouldRotate(s Settings, x, z float64, direction geom.Vec3) bool {
	if s.BlockRotationPlayer {
		return false
	}
	if geom.PlanarLenSqr(x, z) <= s.AllowPlayerRotation {
		return false
	}
	return !geom.IsZero(direction)
}

// RotationFraction is the slerp amount applied in one frame of length dt.
func RotationFraction(s Settings, dt float64) float64 {
	rate := math.Min(math.Max(s.DesiredRotationSpeed, 0), 1)
	if s.RotationMode != RotationExponential || dt <= 0 {
		return rate
	}
	return 1 - math.Pow(1-rate, dt*s.ReferenceRate)
}

// BlendTarget returns the animation blend target and the damping time to
// reach it. Above the threshold the blend rises with StartAnimTime and is
// amplified by sprinting; below it the raw value falls with StopAnimTime.
func BlendTarget(s Settings, x, z float64, sprint bool) (float64, float64) {
	speed := geom.PlanarLenSqr(x, z)
	if speed > s.AllowPlayerRotation {
		if sprint {
			speed *= SprintBlendScale
		}
		return speed, s.StartAnimTime
	}
	return speed, s.StopAnimTime
}

// MoveSpeed picks the horizontal speed tier.
func MoveSpeed(s Settings, sprint bool) float64 {
	if sprint {
		return s.SprintSpeed
	}
	return s.WalkSpeed
}

// Displacement combines planar motion and vertical velocity over dt.
func Displacement(direction geom.Vec3, speed, vertical, dt float64) geom.Vec3 {
	move := direction.Mul(speed)
	move[1] = vertical
	return move.Mul(dt)
}
