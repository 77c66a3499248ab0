package event

import "github.com/Versifine/stride/internal/geom"

const (
	EventJump        = "locomotion.jump"
	EventLand        = "locomotion.land"
	EventLeaveGround = "locomotion.leave_ground"
)

type JumpEvent struct {
	Position geom.Vec3
	Velocity float64
}

// GroundEvent carries the vertical velocity at the moment ground contact
// changed.
type GroundEvent struct {
	Position geom.Vec3
	Velocity float64
}
