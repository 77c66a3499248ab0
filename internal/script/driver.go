// Package script drives the character from a tengo script. The script body
// runs once per frame and describes the input for that frame.
package script

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/Versifine/stride/internal/geom"
	"github.com/Versifine/stride/internal/input"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Target is what a script may observe and steer besides the input axes.
type Target interface {
	Position() geom.Vec3
	LookAt(pos geom.Vec3)
}

// Driver is not safe for concurrent use; Step and the Source methods are
// expected to run on the simulation goroutine.
type Driver struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	target   Target
	log      *slog.Logger
	frame    input.State
}

func Load(path string, logger *slog.Logger) (*Driver, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return New(path, src, logger)
}

func New(name string, src []byte, logger *slog.Logger) (*Driver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Driver{
		name:  name,
		state: &tengo.Map{Value: map[string]tengo.Object{}},
		log:   logger.With("component", "script", "script", name),
	}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	globals := map[string]any{
		"now":      0.0,
		"dt":       0.0,
		"position": []any{0.0, 0.0, 0.0},
		"state":    d.state,
	}
	for k, v := range globals {
		if err := s.Add(k, v); err != nil {
			return nil, fmt.Errorf("add script global %s: %w", k, err)
		}
	}
	for _, fn := range d.functions() {
		if err := s.Add(fn.Name, fn); err != nil {
			return nil, fmt.Errorf("add script function %s: %w", fn.Name, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script %s: %w", name, err)
	}
	d.compiled = compiled
	return d, nil
}

// Attach sets the character the script observes and steers. The controller
// is normally built with the driver as its input source, so it comes second.
func (d *Driver) Attach(target Target) {
	d.target = target
}

// Step clears the previous frame's input and runs the script at time t.
func (d *Driver) Step(t, dt float64) error {
	d.frame = input.State{}
	if d.target == nil {
		return fmt.Errorf("script %s: no target attached", d.name)
	}

	pos := d.target.Position()
	vars := map[string]any{
		"now":      t,
		"dt":       dt,
		"position": []any{pos[0], pos[1], pos[2]},
		"state":    d.state,
	}
	for k, v := range vars {
		if err := d.compiled.Set(k, v); err != nil {
			return fmt.Errorf("set script global %s: %w", k, err)
		}
	}
	if err := d.compiled.Run(); err != nil {
		return fmt.Errorf("run script %s: %w", d.name, err)
	}
	return nil
}

func (d *Driver) Axis(a input.Axis) float64 { return d.frame.Axis(a) }
func (d *Driver) Held(k input.Key) bool { return d.frame.Held(k) }
func (d *Driver) Pressed(k input.Key) bool { return d.frame.Pressed(k) }

// Frame is the input the last Step produced.
func (d *Driver) Frame() input.State {
	return d.frame
}

func (d *Driver) functions() []*tengo.UserFunction {
	return []*tengo.UserFunction{
		{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
			xz, err := floatArgs("move", args, 2)
			if err != nil {
				return nil, err
			}
			d.frame.X = clampAxis(xz[0])
			d.frame.Z = clampAxis(xz[1])
			return tengo.UndefinedValue, nil
		}},
		{Name: "sprint", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			d.frame.Sprint = !args[0].IsFalsy()
			return tengo.UndefinedValue, nil
		}},
		{Name: "jump", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			d.frame.Jump = true
			return tengo.UndefinedValue, nil
		}},
		{Name: "look_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
			xyz, err := floatArgs("look_at", args, 3)
			if err != nil {
				return nil, err
			}
			d.target.LookAt(geom.Vec3{xyz[0], xyz[1], xyz[2]})
			return tengo.UndefinedValue, nil
		}},
		{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			msg, _ := tengo.ToString(args[0])
			d.log.Info(msg)
			return tengo.UndefinedValue, nil
		}},
	}
}

func floatArgs(fn string, args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]float64, n)
	for i, arg := range args {
		v, ok := tengo.ToFloat64(arg)
		if !ok || math.IsNaN(v) {
			return nil, tengo.ErrInvalidArgumentType{
				Name:     fmt.Sprintf("%s argument %d", fn, i+1),
				Expected: "float",
				Found:    arg.TypeName(),
			}
		}
		out[i] = v
	}
	return out, nil
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
