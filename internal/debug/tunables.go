package debug

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Versifine/stride/internal/locomotion"
)

type tunable func(s *locomotion.Settings, raw string) error

func floatTunable(field func(s *locomotion.Settings) *float64) tunable {
	return func(s *locomotion.Settings, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", raw)
		}
		*field(s) = v
		return nil
	}
}

var tunables = map[string]tunable{
	"walk":     floatTunable(func(s *locomotion.Settings) *float64 { return &s.WalkSpeed }),
	"sprint":   floatTunable(func(s *locomotion.Settings) *float64 { return &s.SprintSpeed }),
	"jump":     floatTunable(func(s *locomotion.Settings) *float64 { return &s.JumpForce }),
	"gravity":  floatTunable(func(s *locomotion.Settings) *float64 { return &s.Gravity }),
	"turn":     floatTunable(func(s *locomotion.Settings) *float64 { return &s.DesiredRotationSpeed }),
	"deadzone": floatTunable(func(s *locomotion.Settings) *float64 { return &s.AllowPlayerRotation }),
	"start":    floatTunable(func(s *locomotion.Settings) *float64 { return &s.StartAnimTime }),
	"stop":     floatTunable(func(s *locomotion.Settings) *float64 { return &s.StopAnimTime }),
	"block": func(s *locomotion.Settings, raw string) error {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid bool %q", raw)
		}
		s.BlockRotationPlayer = v
		return nil
	},
	"mode": func(s *locomotion.Settings, raw string) error {
		s.RotationMode = locomotion.RotationMode(raw)
		return nil
	},
}

func tunableNames() []string {
	names := make([]string, 0, len(tunables))
	for name := range tunables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applyTunable(s *locomotion.Settings, name, raw string) error {
	fn, ok := tunables[name]
	if !ok {
		return fmt.Errorf("unknown tunable %q", name)
	}
	return fn(s, raw)
}
