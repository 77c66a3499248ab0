package physics

import "github.com/Versifine/stride/internal/geom"

// CollisionFlags reports which sides of the capsule touched something
// during the last Move.
type CollisionFlags uint8

const (
	CollidedSides CollisionFlags = 1 << iota
	CollidedAbove
	CollidedBelow
)

func (f CollisionFlags) Has(flag CollisionFlags) bool {
	return f&flag != 0
}

func (f CollisionFlags) String() string {
	if f == 0 {
		return "none"
	}
	out := ""
	add := func(s string) {
		if out != "" {
			out += "|"
		}
		out += s
	}
	if f.Has(CollidedBelow) {
		add("below")
	}
	if f.Has(CollidedSides) {
		add("sides")
	}
	if f.Has(CollidedAbove) {
		add("above")
	}
	return out
}

// Mover is a swept-capsule primitive. Move displaces the capsule by delta,
// stopping at obstacles; IsGrounded reports whether that move ended resting
// on something below.
type Mover interface {
	Move(delta geom.Vec3) CollisionFlags
	IsGrounded() bool
	Position() geom.Vec3
}

// Capsule is the collision shape. Position refers to the bottom centre.
type Capsule struct {
	Radius float64
	Height float64
}

func DefaultCapsule() Capsule {
	return Capsule{Radius: DefaultCapsuleRadius, Height: DefaultCapsuleHeight}
}

func (c Capsule) normalized() Capsule {
	if c.Radius <= 0 {
		c.Radius = DefaultCapsuleRadius
	}
	if c.Height < 2*c.Radius {
		c.Height = 2 * c.Radius
	}
	return c
}

// Bounds approximates the capsule by its enclosing box at pos.
func (c Capsule) Bounds(pos geom.Vec3) AABB {
	c = c.normalized()
	return AABB{
		Min: geom.Vec3{pos[0] - c.Radius, pos[1], pos[2] - c.Radius},
		Max: geom.Vec3{pos[0] + c.Radius, pos[1] + c.Height, pos[2] + c.Radius},
	}
}
