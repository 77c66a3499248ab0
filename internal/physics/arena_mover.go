package physics

import (
	"math"
	"sync"

	"github.com/Versifine/stride/internal/geom"
	"github.com/jakecoffman/cp"
)

// Wall is a static segment on the ground plane, in (x, z).
type Wall struct {
	A [2]float64
	B [2]float64
}

// ArenaMover resolves horizontal motion against static walls with swept
// circle queries in a Chipmunk space laid on the x/z plane. Vertical motion
// is stopped by a flat floor.
type ArenaMover struct {
	mu       sync.Mutex
	space    *cp.Space
	radius   float64
	floorY   float64
	pos      geom.Vec3
	grounded bool
	flags    CollisionFlags
}

func NewArenaMover(walls []Wall, floorY float64, shape Capsule, pos geom.Vec3) *ArenaMover {
	shape = shape.normalized()
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	for _, w := range walls {
		seg := cp.NewSegment(space.StaticBody, cp.Vector{X: w.A[0], Y: w.A[1]}, cp.Vector{X: w.B[0], Y: w.B[1]}, 0)
		seg.SetFriction(0)
		space.AddShape(seg)
	}

	m := &ArenaMover{
		space:  space,
		radius: shape.Radius,
		floorY: floorY,
		pos:    pos,
	}
	m.grounded = pos[1] <= floorY+GroundProbeDistance
	return m
}

func (m *ArenaMover) Move(delta geom.Vec3) CollisionFlags {
	m.mu.Lock()
	defer m.mu.Unlock()

	var flags CollisionFlags
	from := cp.Vector{X: m.pos[0], Y: m.pos[2]}
	to, hitWall := m.slide(from, cp.Vector{X: delta[0], Y: delta[2]})
	if hitWall {
		flags |= CollidedSides
	}

	y := m.pos[1] + delta[1]
	if y <= m.floorY {
		y = m.floorY
		if delta[1] <= 0 {
			flags |= CollidedBelow
		}
	}

	m.pos = geom.Vec3{to.X, y, to.Y}
	m.flags = flags
	m.grounded = flags.Has(CollidedBelow)
	return flags
}

// slide sweeps the circle along motion and, on contact, keeps the part of
// the remaining motion tangent to the wall.
func (m *ArenaMover) slide(from, motion cp.Vector) (cp.Vector, bool) {
	hit := false
	pos := from
	for i := 0; i < maxSlideIterations; i++ {
		length := motion.Length()
		if length <= CollisionAxisTolerance {
			break
		}
		info := m.space.SegmentQueryFirst(pos, pos.Add(motion), m.radius, cp.SHAPE_FILTER_ALL)
		if info.Shape == nil {
			pos = pos.Add(motion)
			break
		}
		hit = true
		alpha := math.Max(0, info.Alpha-SkinWidth/length)
		pos = pos.Add(motion.Mult(alpha))

		remaining := motion.Mult(1 - alpha)
		motion = remaining.Sub(info.Normal.Mult(remaining.Dot(info.Normal)))
	}
	return pos, hit
}

func (m *ArenaMover) IsGrounded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grounded
}

func (m *ArenaMover) Position() geom.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

func (m *ArenaMover) SetPosition(pos geom.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pos = pos
	m.grounded = pos[1] <= m.floorY+GroundProbeDistance
}
