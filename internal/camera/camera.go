package camera

import (
	"math"

	"github.com/Versifine/stride/internal/geom"
)

const maxPitch = 89.0

// View exposes the world-space axes of the camera the player steers with.
type View interface {
	Forward() geom.Vec3
	Right() geom.Vec3
}

// Rig is a yaw/pitch camera orientation in degrees. Yaw 0 looks down +Z,
// positive pitch looks down.
type Rig struct {
	Yaw   float64
	Pitch float64
}

func NewRig(yaw, pitch float64) *Rig {
	r := &Rig{}
	r.Set(yaw, pitch)
	return r
}

// Set assigns the orientation as is. Pitch ±90 is allowed here and yields a
// forward vector with no horizontal component.
func (r *Rig) Set(yaw, pitch float64) {
	r.Yaw = normalizeYaw(yaw)
	r.Pitch = pitch
}

// Orbit rotates the rig and clamps pitch short of vertical.
func (r *Rig) Orbit(dyaw, dpitch float64) {
	r.Yaw = normalizeYaw(r.Yaw + dyaw)
	r.Pitch = clampPitch(r.Pitch + dpitch)
}

func (r *Rig) Forward() geom.Vec3 {
	yawRad := r.Yaw * math.Pi / 180.0
	pitchRad := r.Pitch * math.Pi / 180.0
	return geom.Vec3{
		math.Sin(yawRad) * math.Cos(pitchRad),
		-math.Sin(pitchRad),
		math.Cos(yawRad) * math.Cos(pitchRad),
	}
}

func (r *Rig) Right() geom.Vec3 {
	yawRad := r.Yaw * math.Pi / 180.0
	return geom.Vec3{math.Cos(yawRad), 0, -math.Sin(yawRad)}
}

func normalizeYaw(yaw float64) float64 {
	for yaw <= -180 {
		yaw += 360
	}
	for yaw > 180 {
		yaw -= 360
	}
	return yaw
}

func clampPitch(pitch float64) float64 {
	if pitch < -maxPitch {
		return -maxPitch
	}
	if pitch > maxPitch {
		return maxPitch
	}
	return pitch
}
