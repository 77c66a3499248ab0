package locomotion

// GroundedVelocity is the downward speed kept while standing so the capsule
// stays pressed against the ground and the contact query stays true.
const GroundedVelocity = -2.0

type GroundState int

const (
	Airborne GroundState = iota
	Grounded
)

func (s GroundState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}

type Transition int

const (
	NoTransition Transition = iota
	Landed
	LeftGround
)

// Vertical is the jump/gravity integrator: one signed velocity plus the
// ground state last reported by the mover.
type Vertical struct {
	State    GroundState
	Velocity float64
}

// Sample records the mover's contact and reports the change, if any.
func (v *Vertical) Sample(grounded bool) Transition {
	next := Airborne
	if grounded {
		next = Grounded
	}
	if next == v.State {
		return NoTransition
	}
	v.State = next
	if next == Grounded {
		return Landed
	}
	return LeftGround
}

// Settle pins a falling velocity to GroundedVelocity while grounded.
func (v *Vertical) Settle() bool {
	if v.State != Grounded || v.Velocity >= 0 {
		return false
	}
	v.Velocity = GroundedVelocity
	return true
}

// Jump launches with force, replacing any prior velocity. Only possible
// from the ground.
func (v *Vertical) Jump(force float64) bool {
	if v.State != Grounded {
		return false
	}
	v.Velocity = force
	return true
}

// Integrate accumulates gravity while airborne. There is no terminal
// velocity.
func (v *Vertical) Integrate(gravity, dt float64) {
	if v.State != Airborne {
		return
	}
	v.Velocity += gravity * dt
}
