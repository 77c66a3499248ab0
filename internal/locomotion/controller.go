// Package locomotion drives a third-person character from player input:
// camera-relative movement, facing, jump and gravity, and the animation
// parameters that go with them.
package locomotion

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Versifine/stride/internal/anim"
	"github.com/Versifine/stride/internal/camera"
	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/geom"
	"github.com/Versifine/stride/internal/input"
	"github.com/Versifine/stride/internal/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Deps are the collaborators the controller polls and drives each frame.
// Bus and Logger are optional.
type Deps struct {
	Input    input.Source
	Camera   camera.View
	Animator anim.Animator
	Mover    physics.Mover
	Bus      *event.Bus
	Logger   *slog.Logger
}

func (d Deps) validate() error {
	var errs []error
	if d.Input == nil {
		errs = append(errs, errors.New("input source is nil"))
	}
	if d.Camera == nil {
		errs = append(errs, errors.New("camera is nil"))
	}
	if d.Animator == nil {
		errs = append(errs, errors.New("animator is nil"))
	}
	if d.Mover == nil {
		errs = append(errs, errors.New("mover is nil"))
	}
	return errors.Join(errs...)
}

// Frame is what one Tick sampled, decided and applied.
type Frame struct {
	DT          float64
	InputX      float64
	InputZ      float64
	Sprint      bool
	Jumped      bool
	Direction   geom.Vec3
	Rotated     bool
	State       GroundState
	Vertical    float64
	BlendTarget float64
	BlendDamp   float64
	Delta       geom.Vec3
	Flags       physics.CollisionFlags
	Position    geom.Vec3
	Rotation    geom.Quat
}

type Controller struct {
	mu       sync.Mutex
	settings Settings
	deps     Deps
	log      *slog.Logger
	rotation geom.Quat
	vertical Vertical
	lastDT   float64
	last     Frame
}

type pendingEvent struct {
	name    string
	payload any
}

func New(settings Settings, deps Deps) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("locomotion deps: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("locomotion settings: %w", err)
	}
	if settings.RotationMode == "" {
		settings.RotationMode = RotationFixed
	}
	lg := deps.Logger
	if lg == nil {
		lg = slog.Default()
	}

	c := &Controller{
		settings: settings,
		deps:     deps,
		log:      lg.With("component", "locomotion"),
		rotation: mgl64.QuatIdent(),
	}
	c.vertical.Sample(deps.Mover.IsGrounded())
	c.last = Frame{
		State:    c.vertical.State,
		Position: deps.Mover.Position(),
		Rotation: c.rotation,
	}
	return c, nil
}

// Tick runs one frame. A non-positive dt does nothing and returns the
// previous frame.
func (c *Controller) Tick(dt float64) Frame {
	c.mu.Lock()
	if dt <= 0 {
		f := c.last
		c.mu.Unlock()
		return f
	}
	f, events := c.tick(dt)
	c.mu.Unlock()

	for _, e := range events {
		c.deps.Bus.Publish(e.name, e.payload)
	}
	return f
}

func (c *Controller) tick(dt float64) (Frame, []pendingEvent) {
	s := c.settings
	d := c.deps
	var events []pendingEvent
	f := Frame{DT: dt}
	c.lastDT = dt

	grounded := d.Mover.IsGrounded()
	d.Animator.SetBool(anim.ParamGrounded, grounded)
	switch c.vertical.Sample(grounded) {
	case Landed:
		c.log.Debug("Landed", "velocity", c.vertical.Velocity)
		events = append(events, pendingEvent{event.EventLand, event.GroundEvent{Position: d.Mover.Position(), Velocity: c.vertical.Velocity}})
	case LeftGround:
		c.log.Debug("Left ground", "velocity", c.vertical.Velocity)
		events = append(events, pendingEvent{event.EventLeaveGround, event.GroundEvent{Position: d.Mover.Position(), Velocity: c.vertical.Velocity}})
	}

	f.InputX = d.Input.Axis(input.Horizontal)
	f.InputZ = d.Input.Axis(input.Vertical)
	f.Sprint = d.Input.Held(input.SprintKey)
	f.Direction = MoveDirection(d.Camera.Forward(), d.Camera.Right(), f.InputX, f.InputZ)
	if ShouldRotate(s, f.InputX, f.InputZ, f.Direction) {
		c.rotation = geom.Slerp(c.rotation, geom.LookRotation(f.Direction), RotationFraction(s, dt))
		f.Rotated = true
	}

	c.vertical.Settle()
	if grounded && d.Input.Pressed(input.JumpKey) && c.vertical.Jump(s.JumpForce) {
		d.Animator.ResetTrigger(anim.ParamJump)
		d.Animator.SetTrigger(anim.ParamJump)
		f.Jumped = true
		c.log.Debug("Jump", "velocity", c.vertical.Velocity)
		events = append(events, pendingEvent{event.EventJump, event.JumpEvent{Position: d.Mover.Position(), Velocity: c.vertical.Velocity}})
	}
	c.vertical.Integrate(s.Gravity, dt)

	f.Delta = Displacement(f.Direction, MoveSpeed(s, f.Sprint), c.vertical.Velocity, dt)
	f.Flags = d.Mover.Move(f.Delta)

	f.BlendTarget, f.BlendDamp = BlendTarget(s, f.InputX, f.InputZ, f.Sprint)
	d.Animator.SetFloatDamped(anim.ParamBlend, f.BlendTarget, f.BlendDamp, dt)
	d.Animator.SetBool(anim.ParamSprint, f.Sprint)

	f.State = c.vertical.State
	f.Vertical = c.vertical.Velocity
	f.Position = d.Mover.Position()
	f.Rotation = c.rotation
	c.last = f
	return f, events
}

// LookAt turns the character one step toward pos, at the same rate as
// input-driven turning. The facing may pitch when pos is above or below.
func (c *Controller) LookAt(pos geom.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := pos.Sub(c.deps.Mover.Position())
	if geom.IsZero(dir) {
		return
	}
	c.rotation = geom.Slerp(c.rotation, geom.LookRotation(dir), RotationFraction(c.settings, c.lastDT))
	c.last.Rotation = c.rotation
}

func (c *Controller) Rotation() geom.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

// SetRotation overrides the facing, e.g. when placing the character.
func (c *Controller) SetRotation(q geom.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = q.Normalize()
	c.last.Rotation = c.rotation
}

func (c *Controller) Position() geom.Vec3 {
	return c.deps.Mover.Position()
}

func (c *Controller) VerticalVelocity() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vertical.Velocity
}

func (c *Controller) GroundState() GroundState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vertical.State
}

func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// SetSettings swaps the tunables; invalid settings are rejected and the
// current ones kept.
func (c *Controller) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.RotationMode == "" {
		s.RotationMode = RotationFixed
	}
	c.mu.Lock()
	c.settings = s
	c.mu.Unlock()
	c.log.Info("Settings updated", "walk", s.WalkSpeed, "sprint", s.SprintSpeed, "rotation_mode", s.RotationMode)
	return nil
}

func (c *Controller) LastFrame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
