package physics

import (
	"sync"

	"github.com/Versifine/stride/internal/geom"
)

// GridMover moves a capsule through a BlockStore.
type GridMover struct {
	mu       sync.Mutex
	shape    Capsule
	store    BlockStore
	pos      geom.Vec3
	grounded bool
	flags    CollisionFlags
}

func NewGridMover(store BlockStore, shape Capsule, pos geom.Vec3) *GridMover {
	m := &GridMover{
		shape: shape.normalized(),
		store: store,
		pos:   pos,
	}
	m.grounded = m.touchingGround()
	return m
}

func (m *GridMover) Move(delta geom.Vec3) CollisionFlags {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pos, m.flags = ResolveMovement(m.shape, m.pos, delta, m.store)
	m.grounded = m.flags.Has(CollidedBelow)
	return m.flags
}

func (m *GridMover) IsGrounded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grounded
}

func (m *GridMover) Position() geom.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// SetPosition teleports the capsule without sweeping.
func (m *GridMover) SetPosition(pos geom.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pos = pos
	m.grounded = m.touchingGround()
}

func (m *GridMover) Flags() CollisionFlags {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags
}

func (m *GridMover) Shape() Capsule {
	return m.shape
}

func (m *GridMover) touchingGround() bool {
	if m.store == nil {
		return false
	}
	probe := m.shape.Bounds(m.pos).Offset(geom.Vec3{0, -GroundProbeDistance, 0})
	return CollidesWithBlock(probe, m.store)
}
