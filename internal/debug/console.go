// Package debug is a raw-mode terminal console for driving the character
// by hand and poking at its tunables.
package debug

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Versifine/stride/internal/camera"
	"github.com/Versifine/stride/internal/geom"
	"github.com/Versifine/stride/internal/input"
	"github.com/Versifine/stride/internal/locomotion"
	"golang.org/x/term"
)

const (
	defaultTickInterval = time.Second / 60
	defaultMovePulse    = 180 * time.Millisecond
	yawStep             = 5.0
	pitchStep           = 5.0
)

type Controller interface {
	Tick(dt float64) locomotion.Frame
	LookAt(pos geom.Vec3)
	LastFrame() locomotion.Frame
	Settings() locomotion.Settings
	SetSettings(s locomotion.Settings) error
}

type Teleporter interface {
	SetPosition(pos geom.Vec3)
}

// Console is both the controller's input source and its camera. Terminals
// report key presses, not releases, so W/A/S/D hold their key for a short
// pulse and the axes ramp the way an engine smooths digital input.
type Console struct {
	ctrl         Controller
	mover        Teleporter
	tickInterval time.Duration
	movePulse    time.Duration
	out          io.Writer

	mu          sync.Mutex
	rig         *camera.Rig
	heldUntil   map[input.Key]time.Time
	horizontal  *input.Ramp
	vertical    *input.Ramp
	sprint      bool
	jumpQueued  bool
	jumpFrame   bool
	lookTarget  *geom.Vec3
	commandMode bool
	commandBuf  []rune
	statusWidth int
}

func NewConsole(mover Teleporter, rig *camera.Rig) *Console {
	if rig == nil {
		rig = camera.NewRig(0, 20)
	}
	return &Console{
		mover:        mover,
		tickInterval: defaultTickInterval,
		movePulse:    defaultMovePulse,
		out:          os.Stdout,
		rig:          rig,
		heldUntil:    make(map[input.Key]time.Time),
		horizontal:   input.NewRamp(),
		vertical:     input.NewRamp(),
	}
}

// Attach sets the controller to drive. The controller is normally built
// with the console as its input source and camera, so it comes second.
func (c *Console) Attach(ctrl Controller) {
	c.ctrl = ctrl
}

func (c *Console) Start(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("console is nil")
	}
	if c.ctrl == nil {
		return fmt.Errorf("console controller is nil")
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
		fmt.Fprint(c.out, "\r\n")
	}()

	fmt.Fprint(c.out, "[debug] console started (W/A/S/D pulse, Space jump, ] sprint, arrows orbit, X clear, : command)\r\n")
	c.renderStatusLine()

	go c.tickLoop(ctx)

	reader := bufio.NewReader(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		b, err := reader.ReadByte()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read console input: %w", err)
		}
		if b == 3 { // Ctrl-C is not delivered as a signal in raw mode
			return nil
		}
		c.handleKey(reader, b)
	}
}

func (c *Console) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	dt := c.tickInterval.Seconds()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.step(now, dt)
			c.renderStatusLine()
		}
	}
}

// step samples the keyboard for one frame and ticks the controller.
func (c *Console) step(now time.Time, dt float64) locomotion.Frame {
	c.mu.Lock()
	c.sampleLocked(now, dt)
	target := c.lookTarget
	c.mu.Unlock()

	if target != nil {
		c.ctrl.LookAt(*target)
	}
	return c.ctrl.Tick(dt)
}

func (c *Console) sampleLocked(now time.Time, dt float64) {
	for k, until := range c.heldUntil {
		if !now.Before(until) {
			delete(c.heldUntil, k)
		}
	}
	c.horizontal.Update(c.heldLocked(input.KeyA), c.heldLocked(input.KeyD), dt)
	c.vertical.Update(c.heldLocked(input.KeyS), c.heldLocked(input.KeyW), dt)
	c.jumpFrame = c.jumpQueued
	c.jumpQueued = false
}

func (c *Console) heldLocked(k input.Key) bool {
	_, ok := c.heldUntil[k]
	return ok
}

func (c *Console) Axis(a input.Axis) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch a {
	case input.Horizontal:
		return c.horizontal.Value()
	case input.Vertical:
		return c.vertical.Value()
	default:
		return 0
	}
}

func (c *Console) Held(k input.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if k == input.SprintKey {
		return c.sprint
	}
	return c.heldLocked(k)
}

func (c *Console) Pressed(k input.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return k == input.JumpKey && c.jumpFrame
}

func (c *Console) Forward() geom.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rig.Forward()
}

func (c *Console) Right() geom.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rig.Right()
}

func (c *Console) handleKey(reader *bufio.Reader, b byte) {
	if c.isCommandMode() {
		c.handleCommandByte(b)
		return
	}

	switch b {
	case ':':
		c.enterCommandMode()
		return
	case 'w', 'W':
		c.pulse(input.KeyW, input.KeyS)
	case 's', 'S':
		c.pulse(input.KeyS, input.KeyW)
	case 'a', 'A':
		c.pulse(input.KeyA, input.KeyD)
	case 'd', 'D':
		c.pulse(input.KeyD, input.KeyA)
	case ' ':
		c.mu.Lock()
		c.jumpQueued = true
		c.mu.Unlock()
	case ']':
		c.toggleSprint()
	case 'x', 'X':
		c.clearInput()
	case 27: // ESC + arrow sequence
		next, err := reader.ReadByte()
		if err != nil || next != '[' {
			return
		}
		arrow, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch arrow {
		case 'D': // left
			c.orbit(-yawStep, 0)
		case 'C': // right
			c.orbit(yawStep, 0)
		case 'A': // up
			c.orbit(0, -pitchStep)
		case 'B': // down
			c.orbit(0, pitchStep)
		}
	}
	c.renderStatusLine()
}

func (c *Console) enterCommandMode() {
	c.mu.Lock()
	c.commandMode = true
	c.commandBuf = c.commandBuf[:0]
	c.mu.Unlock()
	fmt.Fprint(c.out, "\r\n:")
}

func (c *Console) handleCommandByte(b byte) {
	switch b {
	case 13, 10: // Enter
		c.mu.Lock()
		cmd := strings.TrimSpace(string(c.commandBuf))
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()

		fmt.Fprint(c.out, "\r\n")
		if cmd != "" {
			c.executeCommand(cmd)
		}
		c.renderStatusLine()
		return
	case 27: // ESC cancel command mode
		c.mu.Lock()
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()
		fmt.Fprint(c.out, "\r\n[debug] command cancelled\r\n")
		c.renderStatusLine()
		return
	case 8, 127: // Backspace
		c.mu.Lock()
		if len(c.commandBuf) > 0 {
			c.commandBuf = c.commandBuf[:len(c.commandBuf)-1]
		}
		buf := string(c.commandBuf)
		c.mu.Unlock()
		fmt.Fprintf(c.out, "\r:%s ", buf)
		fmt.Fprintf(c.out, "\r:%s", buf)
		return
	default:
		if b < 32 || b > 126 {
			return
		}
		c.mu.Lock()
		c.commandBuf = append(c.commandBuf, rune(b))
		buf := string(c.commandBuf)
		c.mu.Unlock()
		fmt.Fprintf(c.out, "\r:%s", buf)
	}
}

func (c *Console) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "help":
		c.printHelp()
	case "state":
		f := c.ctrl.LastFrame()
		fmt.Fprintf(c.out, "[debug] pos=(%.3f,%.3f,%.3f) vy=%.3f %s flags=%s yaw=%.1f blend=%.2f\r\n",
			f.Position[0], f.Position[1], f.Position[2],
			f.Vertical,
			f.State,
			f.Flags,
			geom.YawDegrees(f.Rotation),
			f.BlendTarget,
		)
	case "tp":
		if c.mover == nil {
			fmt.Fprint(c.out, "[debug] tp unavailable: mover cannot teleport\r\n")
			return
		}
		pos, ok := parseVec3(parts)
		if !ok {
			fmt.Fprint(c.out, "[debug] usage: :tp <x> <y> <z>\r\n")
			return
		}
		c.mover.SetPosition(pos)
		fmt.Fprintf(c.out, "[debug] teleported to (%.3f, %.3f, %.3f)\r\n", pos[0], pos[1], pos[2])
	case "look":
		c.handleLookCommand(parts)
	case "set":
		c.handleSetCommand(parts)
	default:
		fmt.Fprintf(c.out, "[debug] unknown command: %s\r\n", parts[0])
	}
}

func (c *Console) handleLookCommand(parts []string) {
	if len(parts) == 2 && parts[1] == "off" {
		c.mu.Lock()
		c.lookTarget = nil
		c.mu.Unlock()
		fmt.Fprint(c.out, "[debug] look target cleared\r\n")
		return
	}
	pos, ok := parseVec3(parts)
	if !ok {
		fmt.Fprint(c.out, "[debug] usage: :look <x> <y> <z> or :look off\r\n")
		return
	}
	c.mu.Lock()
	c.lookTarget = &pos
	c.mu.Unlock()
	fmt.Fprintf(c.out, "[debug] looking at (%.3f, %.3f, %.3f)\r\n", pos[0], pos[1], pos[2])
}

func (c *Console) handleSetCommand(parts []string) {
	if len(parts) != 3 {
		fmt.Fprintf(c.out, "[debug] usage: :set <%s> <value>\r\n", strings.Join(tunableNames(), "|"))
		return
	}
	s := c.ctrl.Settings()
	if err := applyTunable(&s, parts[1], parts[2]); err != nil {
		fmt.Fprintf(c.out, "[debug] %v\r\n", err)
		return
	}
	if err := c.ctrl.SetSettings(s); err != nil {
		fmt.Fprintf(c.out, "[debug] rejected: %v\r\n", err)
		return
	}
	fmt.Fprintf(c.out, "[debug] %s = %s\r\n", parts[1], parts[2])
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, "[debug] keys:\r\n")
	fmt.Fprint(c.out, "  W/S/A/D: pulse movement (~180ms)\r\n")
	fmt.Fprint(c.out, "  Space: jump\r\n")
	fmt.Fprint(c.out, "  ]: toggle sprint\r\n")
	fmt.Fprint(c.out, "  Arrow Left/Right: orbit camera yaw +/-5\r\n")
	fmt.Fprint(c.out, "  Arrow Up/Down: orbit camera pitch +/-5\r\n")
	fmt.Fprint(c.out, "  X: clear all input\r\n")
	fmt.Fprint(c.out, "  : enter command mode\r\n")
	fmt.Fprint(c.out, "[debug] commands:\r\n")
	fmt.Fprint(c.out, "  :look <x> <y> <z>\r\n")
	fmt.Fprint(c.out, "  :look off\r\n")
	fmt.Fprint(c.out, "  :tp <x> <y> <z>\r\n")
	fmt.Fprintf(c.out, "  :set <%s> <value>\r\n", strings.Join(tunableNames(), "|"))
	fmt.Fprint(c.out, "  :state\r\n")
	fmt.Fprint(c.out, "  :help\r\n")
}

func (c *Console) renderStatusLine() {
	c.mu.Lock()
	if c.commandMode {
		c.mu.Unlock()
		return
	}
	x, z := c.horizontal.Value(), c.vertical.Value()
	sprint := c.sprint
	yaw, pitch := c.rig.Yaw, c.rig.Pitch
	width := c.statusWidth
	c.mu.Unlock()

	var f locomotion.Frame
	if c.ctrl != nil {
		f = c.ctrl.LastFrame()
	}

	line := fmt.Sprintf(
		"[X:%+.2f Z:%+.2f SPR:%s | %s vy:%+.2f | X:%.2f Y:%.2f Z:%.2f facing:%.1f | cam %.1f/%.1f]",
		x, z,
		boolLabel(sprint),
		f.State,
		f.Vertical,
		f.Position[0], f.Position[1], f.Position[2],
		geom.YawDegrees(f.Rotation),
		yaw, pitch,
	)

	padding := ""
	if width > len(line) {
		padding = strings.Repeat(" ", width-len(line))
	}
	fmt.Fprintf(c.out, "\r%s%s", line, padding)

	c.mu.Lock()
	if len(line) > c.statusWidth {
		c.statusWidth = len(line)
	}
	c.mu.Unlock()
}

func (c *Console) orbit(dyaw, dpitch float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rig.Orbit(dyaw, dpitch)
}

// pulse holds key for one pulse and releases its opposite.
func (c *Console) pulse(key, opposite input.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.heldUntil[key] = time.Now().Add(c.movePulse)
	delete(c.heldUntil, opposite)
}

func (c *Console) toggleSprint() {
	c.mu.Lock()
	c.sprint = !c.sprint
	enabled := c.sprint
	c.mu.Unlock()
	slog.Debug("debug sprint toggled", "enabled", enabled)
}

func (c *Console) clearInput() {
	c.mu.Lock()
	clear(c.heldUntil)
	c.horizontal.Reset()
	c.vertical.Reset()
	c.sprint = false
	c.jumpQueued = false
	c.lookTarget = nil
	c.mu.Unlock()
}

func (c *Console) isCommandMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandMode
}

func parseVec3(parts []string) (geom.Vec3, bool) {
	if len(parts) != 4 {
		return geom.Vec3{}, false
	}
	var v geom.Vec3
	for i := range v {
		f, err := strconv.ParseFloat(parts[i+1], 64)
		if err != nil {
			return geom.Vec3{}, false
		}
		v[i] = f
	}
	return v, true
}

func boolLabel(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
