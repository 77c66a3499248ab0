package input

import "math"

const (
	DefaultSensitivity = 3.0
	DefaultGravity     = 3.0
)

// Ramp turns a pair of digital keys into an analog axis the way engine
// keyboard axes behave: the value walks toward the target at Sensitivity
// units per second and falls back to zero at Gravity units per second.
type Ramp struct {
	Sensitivity float64
	Gravity     float64
	Snap        bool
	value       float64
}

func NewRamp() *Ramp {
	return &Ramp{
		Sensitivity: DefaultSensitivity,
		Gravity:     DefaultGravity,
		Snap:        true,
	}
}

// Update advances the axis by dt given the keys currently held.
func (r *Ramp) Update(negative, positive bool, dt float64) float64 {
	if r == nil {
		return 0
	}
	var target float64
	if positive {
		target++
	}
	if negative {
		target--
	}

	if target == 0 {
		r.value = approach(r.value, 0, r.Gravity*dt)
		return r.value
	}

	if r.Snap && r.value != 0 && math.Signbit(r.value) != math.Signbit(target) {
		r.value = 0
	}
	r.value = approach(r.value, target, r.Sensitivity*dt)
	return r.value
}

func (r *Ramp) Value() float64 {
	if r == nil {
		return 0
	}
	return r.value
}

func (r *Ramp) Reset() {
	if r != nil {
		r.value = 0
	}
}

func approach(current, target, step float64) float64 {
	if step <= 0 {
		return current
	}
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}
