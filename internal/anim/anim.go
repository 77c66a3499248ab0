// Package anim is the animation-parameter sink the controller writes to.
package anim

const (
	ParamGrounded = "Grounded"
	ParamBlend    = "Blend"
	ParamSprint   = "Sprint"
	ParamJump     = "Jump"
)

// Animator receives named parameters once per frame. SetFloatDamped moves
// the stored value toward v over roughly damp seconds.
type Animator interface {
	SetBool(name string, v bool)
	SetFloat(name string, v float64)
	SetFloatDamped(name string, v, damp, dt float64)
	SetTrigger(name string)
	ResetTrigger(name string)
}
