package input

import "math"

const DefaultDeadzone = 0.2

// Reading is one frame of raw device state. Jump reports a press that
// happened this frame.
type Reading struct {
	Left    bool
	Right   bool
	Back    bool
	Forward bool
	Sprint  bool
	Jump    bool
	StickX  float64
	StickZ  float64
}

// Mixer turns raw readings into a Source. Keys ramp like engine keyboard
// axes; an analog stick outside the deadzone overrides the keys on its axis.
type Mixer struct {
	Deadzone   float64
	horizontal *Ramp
	vertical   *Ramp
	state      State
}

func NewMixer() *Mixer {
	return &Mixer{
		Deadzone:   DefaultDeadzone,
		horizontal: NewRamp(),
		vertical:   NewRamp(),
	}
}

func (m *Mixer) Update(r Reading, dt float64) {
	x := m.horizontal.Update(r.Left, r.Right, dt)
	z := m.vertical.Update(r.Back, r.Forward, dt)
	if math.Abs(r.StickX) > m.Deadzone {
		x = r.StickX
	}
	if math.Abs(r.StickZ) > m.Deadzone {
		z = r.StickZ
	}
	m.state.X = clamp(x)
	m.state.Z = clamp(z)
	m.state.Sprint = r.Sprint
	m.state.Jump = r.Jump
}

func (m *Mixer) Axis(a Axis) float64 { return m.state.Axis(a) }

func (m *Mixer) Held(k Key) bool { return m.state.Held(k) }

func (m *Mixer) Pressed(k Key) bool { return m.state.Pressed(k) }

func (m *Mixer) State() State {
	return m.state
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
