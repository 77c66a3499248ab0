package config

import (
	"fmt"
	"os"

	"github.com/Versifine/stride/internal/locomotion"
	"github.com/Versifine/stride/internal/physics"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Movement  MovementConfig  `yaml:"movement"`
	Rotation  RotationConfig  `yaml:"rotation"`
	Animation AnimationConfig `yaml:"animation"`
	Sim       SimConfig       `yaml:"sim"`
	Script    ScriptConfig    `yaml:"script"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MovementConfig struct {
	WalkSpeed   float64 `yaml:"walk_speed"`
	SprintSpeed float64 `yaml:"sprint_speed"`
	JumpForce   float64 `yaml:"jump_force"`
	Gravity     float64 `yaml:"gravity"`
}

type RotationConfig struct {
	Block          bool    `yaml:"block"`
	DesiredSpeed   float64 `yaml:"desired_speed"`
	AllowThreshold float64 `yaml:"allow_threshold"`
	Mode           string  `yaml:"mode"`
	ReferenceRate  float64 `yaml:"reference_rate"`
}

type AnimationConfig struct {
	StartTime float64 `yaml:"start_time"`
	StopTime  float64 `yaml:"stop_time"`
}

type SimConfig struct {
	TPS           int     `yaml:"tps"`
	Mover         string  `yaml:"mover"` // "grid" or "arena"
	Level         string  `yaml:"level"`
	CapsuleRadius float64 `yaml:"capsule_radius"`
	CapsuleHeight float64 `yaml:"capsule_height"`
}

type ScriptConfig struct {
	Path string `yaml:"path"`
}

const (
	MoverGrid  = "grid"
	MoverArena = "arena"
)

// Default mirrors locomotion.DefaultSettings. Keys missing from a file keep
// these values.
func Default() *Config {
	s := locomotion.DefaultSettings()
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Movement: MovementConfig{
			WalkSpeed:   s.WalkSpeed,
			SprintSpeed: s.SprintSpeed,
			JumpForce:   s.JumpForce,
			Gravity:     s.Gravity,
		},
		Rotation: RotationConfig{
			Block:          s.BlockRotationPlayer,
			DesiredSpeed:   s.DesiredRotationSpeed,
			AllowThreshold: s.AllowPlayerRotation,
			Mode:           string(s.RotationMode),
			ReferenceRate:  s.ReferenceRate,
		},
		Animation: AnimationConfig{StartTime: s.StartAnimTime, StopTime: s.StopAnimTime},
		Sim: SimConfig{
			TPS:           60,
			Mover:         MoverGrid,
			CapsuleRadius: physics.DefaultCapsuleRadius,
			CapsuleHeight: physics.DefaultCapsuleHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "", "console", "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if c.Sim.TPS <= 0 || c.Sim.TPS > 1000 {
		return fmt.Errorf("sim.tps must be within [1, 1000], got %d", c.Sim.TPS)
	}
	switch c.Sim.Mover {
	case MoverGrid, MoverArena:
	default:
		return fmt.Errorf("sim.mover: unknown mover %q", c.Sim.Mover)
	}
	if c.Sim.CapsuleRadius <= 0 || c.Sim.CapsuleHeight <= 0 {
		return fmt.Errorf("sim capsule must have positive size, got radius=%g height=%g", c.Sim.CapsuleRadius, c.Sim.CapsuleHeight)
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("locomotion: %w", err)
	}
	return nil
}

func (c *Config) Settings() locomotion.Settings {
	return locomotion.Settings{
		WalkSpeed:            c.Movement.WalkSpeed,
		SprintSpeed:          c.Movement.SprintSpeed,
		JumpForce:            c.Movement.JumpForce,
		Gravity:              c.Movement.Gravity,
		BlockRotationPlayer:  c.Rotation.Block,
		DesiredRotationSpeed: c.Rotation.DesiredSpeed,
		AllowPlayerRotation:  c.Rotation.AllowThreshold,
		RotationMode:         locomotion.RotationMode(c.Rotation.Mode),
		ReferenceRate:        c.Rotation.ReferenceRate,
		StartAnimTime:        c.Animation.StartTime,
		StopAnimTime:         c.Animation.StopTime,
	}
}

func (c *Config) Capsule() physics.Capsule {
	return physics.Capsule{Radius: c.Sim.CapsuleRadius, Height: c.Sim.CapsuleHeight}
}
