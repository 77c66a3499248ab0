package locomotion

import "fmt"

// RotationMode selects how the per-frame turn fraction is derived.
type RotationMode string

const (
	// RotationFixed applies DesiredRotationSpeed as is every frame, so the
	// effective turn rate follows the frame rate.
	RotationFixed RotationMode = "fixed"
	// RotationExponential rescales the fraction by elapsed time so that one
	// frame at ReferenceRate matches RotationFixed.
	RotationExponential RotationMode = "exponential"
)

// Settings are the tunables exposed to level designers.
type Settings struct {
	WalkSpeed   float64
	SprintSpeed float64
	JumpForce   float64
	Gravity     float64

	BlockRotationPlayer  bool
	DesiredRotationSpeed float64
	AllowPlayerRotation  float64
	RotationMode         RotationMode
	ReferenceRate        float64

	StartAnimTime float64
	StopAnimTime  float64
}

func DefaultSettings() Settings {
	return Settings{
		WalkSpeed:            4,
		SprintSpeed:          7,
		JumpForce:            6,
		Gravity:              -20,
		DesiredRotationSpeed: 0.1,
		AllowPlayerRotation:  0.1,
		RotationMode:         RotationFixed,
		ReferenceRate:        60,
		StartAnimTime:        0.3,
		StopAnimTime:         0.15,
	}
}

func (s Settings) Validate() error {
	if s.WalkSpeed < 0 {
		return fmt.Errorf("walk speed must not be negative, got %g", s.WalkSpeed)
	}
	if s.SprintSpeed < 0 {
		return fmt.Errorf("sprint speed must not be negative, got %g", s.SprintSpeed)
	}
	if s.JumpForce < 0 {
		return fmt.Errorf("jump force must not be negative, got %g", s.JumpForce)
	}
	if s.DesiredRotationSpeed < 0 || s.DesiredRotationSpeed > 1 {
		return fmt.Errorf("desired rotation speed must be within [0, 1], got %g", s.DesiredRotationSpeed)
	}
	if s.AllowPlayerRotation < 0 {
		return fmt.Errorf("rotation threshold must not be negative, got %g", s.AllowPlayerRotation)
	}
	if s.StartAnimTime < 0 || s.StartAnimTime > 1 {
		return fmt.Errorf("start anim time must be within [0, 1], got %g", s.StartAnimTime)
	}
	if s.StopAnimTime < 0 || s.StopAnimTime > 1 {
		return fmt.Errorf("stop anim time must be within [0, 1], got %g", s.StopAnimTime)
	}
	switch s.RotationMode {
	case RotationFixed, "":
	case RotationExponential:
		if s.ReferenceRate <= 0 {
			return fmt.Errorf("reference rate must be positive for exponential rotation, got %g", s.ReferenceRate)
		}
	default:
		return fmt.Errorf("unknown rotation mode %q", s.RotationMode)
	}
	return nil
}
