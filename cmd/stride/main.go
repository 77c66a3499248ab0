package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Versifine/stride/internal/anim"
	"github.com/Versifine/stride/internal/camera"
	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/debug"
	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/geom"
	"github.com/Versifine/stride/internal/input/ebiteninput"
	"github.com/Versifine/stride/internal/locomotion"
	"github.com/Versifine/stride/internal/logger"
	"github.com/Versifine/stride/internal/physics"
	"github.com/Versifine/stride/internal/script"
	"github.com/Versifine/stride/internal/sim"
	"github.com/Versifine/stride/internal/view"
	"github.com/Versifine/stride/internal/world"
)

const (
	modeConsole = "console"
	modeViewer  = "viewer"
	modeScript  = "script"

	flatLevelSize = 16
)

type placeableMover interface {
	physics.Mover
	SetPosition(pos geom.Vec3)
}

func main() {
	configPath := flag.String("config", "configs/stride.yaml", "path to the config file")
	mode := flag.String("mode", modeConsole, "console, viewer or script")
	ticks := flag.Int("ticks", 0, "script mode: stop after this many ticks (0 runs until interrupted)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		RawTerminal: *mode == modeConsole,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *configPath, *mode, *ticks); err != nil {
		slog.Error("Stride exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, configPath, mode string, ticks int) error {
	level, err := loadLevel(cfg.Sim.Level)
	if err != nil {
		return err
	}
	mover, err := newMover(cfg, level)
	if err != nil {
		return err
	}
	slog.Info("Level loaded", "level", level.Name, "mover", cfg.Sim.Mover, "spawn", level.Spawn)

	bus := event.NewBus()
	subscribeEvents(bus)
	params := anim.NewParams()
	rig := camera.NewRig(0, 20)

	deps := locomotion.Deps{
		Animator: params,
		Mover:    mover,
		Bus:      bus,
		Logger:   logger.L(),
	}

	switch mode {
	case modeConsole:
		console := debug.NewConsole(mover, rig)
		deps.Input, deps.Camera = console, console
		ctrl, err := locomotion.New(cfg.Settings(), deps)
		if err != nil {
			return err
		}
		console.Attach(ctrl)
		watchConfig(ctx, configPath, ctrl)
		return console.Start(ctx)

	case modeViewer:
		source := ebiteninput.New()
		deps.Input, deps.Camera = source, rig
		ctrl, err := locomotion.New(cfg.Settings(), deps)
		if err != nil {
			return err
		}
		watchConfig(ctx, configPath, ctrl)
		return view.Run(view.New(ctrl, source, rig, params, level, cfg.Sim.TPS), "stride")

	case modeScript:
		return runScript(ctx, cfg, configPath, deps, rig, ticks)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

func runScript(ctx context.Context, cfg *config.Config, configPath string, deps locomotion.Deps, rig *camera.Rig, ticks int) error {
	if cfg.Script.Path == "" {
		return errors.New("script mode needs script.path in the config")
	}
	driver, err := script.Load(cfg.Script.Path, logger.L())
	if err != nil {
		return err
	}
	deps.Input, deps.Camera = driver, rig
	ctrl, err := locomotion.New(cfg.Settings(), deps)
	if err != nil {
		return err
	}
	driver.Attach(ctrl)
	watchConfig(ctx, configPath, ctrl)

	var elapsed float64
	tps := cfg.Sim.TPS
	runner := sim.NewRunner(sim.TickFunc(func(dt float64) error {
		if err := driver.Step(elapsed, dt); err != nil {
			return err
		}
		f := ctrl.Tick(dt)
		elapsed += dt
		if n := int(elapsed*float64(tps) + 0.5); n%tps == 0 {
			slog.Info("Tick",
				"t", fmt.Sprintf("%.1f", elapsed),
				"pos", fmt.Sprintf("(%.2f, %.2f, %.2f)", f.Position[0], f.Position[1], f.Position[2]),
				"state", f.State.String(),
				"facing", fmt.Sprintf("%.1f", geom.YawDegrees(f.Rotation)),
			)
		}
		return nil
	}), tps)

	if ticks > 0 {
		err = runner.RunTicks(ticks)
	} else {
		err = runner.Run(ctx)
	}
	f := ctrl.LastFrame()
	slog.Info("Script finished", "ticks", runner.Ticks(), "elapsed", runner.Elapsed(), "pos", f.Position, "state", f.State.String())
	return err
}

func loadLevel(path string) (*world.Level, error) {
	if path == "" {
		return world.Flat(flatLevelSize), nil
	}
	return world.Load(path)
}

func newMover(cfg *config.Config, level *world.Level) (placeableMover, error) {
	switch cfg.Sim.Mover {
	case config.MoverGrid:
		return physics.NewGridMover(level.Grid, cfg.Capsule(), level.Spawn), nil
	case config.MoverArena:
		return physics.NewArenaMover(level.Walls, level.Floor, cfg.Capsule(), level.Spawn), nil
	default:
		return nil, fmt.Errorf("unknown mover %q", cfg.Sim.Mover)
	}
}

func subscribeEvents(bus *event.Bus) {
	lg := logger.Component("events")
	bus.Subscribe(event.EventJump, func(raw any) {
		if e, ok := raw.(event.JumpEvent); ok {
			lg.Debug("Jump", "pos", e.Position, "velocity", e.Velocity)
		}
	})
	bus.Subscribe(event.EventLand, func(raw any) {
		if e, ok := raw.(event.GroundEvent); ok {
			lg.Debug("Land", "pos", e.Position, "impact", e.Velocity)
		}
	})
	bus.Subscribe(event.EventLeaveGround, func(raw any) {
		if e, ok := raw.(event.GroundEvent); ok {
			lg.Debug("Leave ground", "pos", e.Position, "velocity", e.Velocity)
		}
	})
}

// watchConfig hot-reloads the locomotion tunables. Changes to sim or
// logging settings need a restart.
func watchConfig(ctx context.Context, path string, ctrl *locomotion.Controller) {
	w, err := config.Watch(path)
	if err != nil {
		slog.Warn("Config hot reload disabled", "error", err)
		return
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-w.Updates:
				if !ok {
					return
				}
				if err := ctrl.SetSettings(cfg.Settings()); err != nil {
					slog.Warn("Config reload rejected", "error", err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("Config reload failed", "error", err)
			}
		}
	}()
}
