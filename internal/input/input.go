// Package input defines how the controller samples player intent.
package input

// Axis names an analog input in [-1, 1].
type Axis string

const (
	Horizontal Axis = "Horizontal"
	Vertical   Axis = "Vertical"
)

// Key names a digital input.
type Key string

const (
	KeyLeftShift  Key = "LeftShift"
	KeySpace      Key = "Space"
	KeyW          Key = "W"
	KeyA          Key = "A"
	KeyS          Key = "S"
	KeyD          Key = "D"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
)

const (
	SprintKey = KeyLeftShift
	JumpKey   = KeySpace
)

// Source is polled once per frame. Pressed reports a key that went down
// during the current frame only.
type Source interface {
	Axis(a Axis) float64
	Held(k Key) bool
	Pressed(k Key) bool
}

// State is a plain per-frame snapshot. The zero value reports no input.
type State struct {
	X       float64
	Z       float64
	Sprint  bool
	Jump    bool
	held    map[Key]bool
	pressed map[Key]bool
}

func (s *State) Axis(a Axis) float64 {
	if s == nil {
		return 0
	}
	switch a {
	case Horizontal:
		return s.X
	case Vertical:
		return s.Z
	default:
		return 0
	}
}

func (s *State) Held(k Key) bool {
	if s == nil {
		return false
	}
	if k == SprintKey && s.Sprint {
		return true
	}
	return s.held[k]
}

func (s *State) Pressed(k Key) bool {
	if s == nil {
		return false
	}
	if k == JumpKey && s.Jump {
		return true
	}
	return s.pressed[k]
}

// SetHeld marks an extra key as held.
func (s *State) SetHeld(k Key, down bool) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = down
}

// SetPressed marks an extra key as pressed this frame.
func (s *State) SetPressed(k Key, down bool) {
	if s.pressed == nil {
		s.pressed = make(map[Key]bool)
	}
	s.pressed[k] = down
}
