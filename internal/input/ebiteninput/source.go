// Package ebiteninput reads keyboard and standard gamepad state from ebiten.
package ebiteninput

import (
	"github.com/Versifine/stride/internal/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source must be polled from the ebiten Update goroutine, once per frame
// and before the controller ticks.
type Source struct {
	*input.Mixer
}

func New() *Source {
	return &Source{Mixer: input.NewMixer()}
}

func (s *Source) Poll(dt float64) {
	s.Update(Read(), dt)
}

// Read samples the devices without any smoothing. The first connected
// gamepad wins.
func Read() input.Reading {
	r := input.Reading{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Forward: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Sprint:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Jump:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			r.StickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			// Stick up is negative.
			r.StickZ = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			r.Sprint = r.Sprint || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftStick)
			r.Jump = r.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		}
	}
	return r
}

// Orbit returns the camera yaw/pitch request in degrees per second from
// Q/E, R/F and the right stick.
func Orbit(rate float64) (float64, float64) {
	var yaw, pitch float64
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		yaw -= rate
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		yaw += rate
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		pitch -= rate
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		pitch += rate
	}
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if rx > input.DefaultDeadzone || rx < -input.DefaultDeadzone {
			yaw += rx * rate
		}
		if ry > input.DefaultDeadzone || ry < -input.DefaultDeadzone {
			pitch += ry * rate
		}
	}
	return yaw, pitch
}
