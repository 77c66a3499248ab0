// Package view is a top-down ebiten viewer. It owns the frame loop: each
// Update polls the devices and ticks the controller once.
package view

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Versifine/stride/internal/anim"
	"github.com/Versifine/stride/internal/camera"
	"github.com/Versifine/stride/internal/geom"
	"github.com/Versifine/stride/internal/input/ebiteninput"
	"github.com/Versifine/stride/internal/locomotion"
	"github.com/Versifine/stride/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720

	pixelsPerUnit = 32.0
	orbitRate     = 90.0 // degrees per second
	facingLength  = 1.2
)

type Controller interface {
	Tick(dt float64) locomotion.Frame
	LastFrame() locomotion.Frame
}

type Game struct {
	ctrl   Controller
	source *ebiteninput.Source
	rig    *camera.Rig
	params *anim.Params
	level  *world.Level
	dt     float64
	frame  locomotion.Frame
}

// New builds a viewer ticking at tps. source and rig must be the ones the
// controller was built with.
func New(ctrl Controller, source *ebiteninput.Source, rig *camera.Rig, params *anim.Params, level *world.Level, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		ctrl:   ctrl,
		source: source,
		rig:    rig,
		params: params,
		level:  level,
		dt:     1 / float64(tps),
		frame:  ctrl.LastFrame(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(int(math.Round(1 / g.dt)))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.source.Poll(g.dt)
	yaw, pitch := ebiteninput.Orbit(orbitRate)
	g.rig.Orbit(yaw*g.dt, pitch*g.dt)
	g.frame = g.ctrl.Tick(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	origin := g.frame.Position

	if g.level != nil {
		g.drawGrid(screen, origin)
		g.drawWalls(screen, origin)
	}

	cx, cy := project(origin, origin)
	body := colornames.Lightskyblue
	if g.frame.State == locomotion.Airborne {
		body = colornames.Gold
	}
	vector.FillCircle(screen, cx, cy, float32(0.5*pixelsPerUnit), body, true)

	facing := geom.ForwardOf(g.frame.Rotation)
	fx, fy := project(origin.Add(geom.Flatten(facing).Mul(facingLength)), origin)
	vector.StrokeLine(screen, cx, cy, fx, fy, 3, colornames.White, true)

	if !geom.IsZero(g.frame.Direction) {
		dx, dy := project(origin.Add(g.frame.Direction.Mul(facingLength)), origin)
		vector.StrokeLine(screen, cx, cy, dx, dy, 1, colornames.Lime, true)
	}

	cam := geom.Normalize(geom.Flatten(g.rig.Forward()))
	kx, ky := project(origin.Sub(cam.Mul(3)), origin)
	vector.StrokeLine(screen, kx, ky, cx, cy, 1, color.RGBA{R: 255, G: 255, B: 255, A: 64}, true)

	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// drawGrid shades the layer the character stands on and the one at its
// body height.
func (g *Game) drawGrid(screen *ebiten.Image, origin geom.Vec3) {
	feet := int(math.Floor(origin[1]))
	size := float32(pixelsPerUnit)
	layers := []struct {
		y   int
		clr color.Color
	}{
		{feet - 1, colornames.Darkslategray},
		{feet, colornames.Slategray},
	}
	for _, layer := range layers {
		for _, cell := range g.level.Grid.Cells(layer.y) {
			x, y := project(geom.Vec3{float64(cell[0]), 0, float64(cell[2]) + 1}, origin)
			if x < -size || y < -size || x > ScreenWidth || y > ScreenHeight {
				continue
			}
			vector.FillRect(screen, x, y, size, size, layer.clr, false)
			vector.StrokeRect(screen, x, y, size, size, 1, colornames.Black, false)
		}
	}
}

func (g *Game) drawWalls(screen *ebiten.Image, origin geom.Vec3) {
	for _, w := range g.level.Walls {
		ax, ay := project(geom.Vec3{w.A[0], 0, w.A[1]}, origin)
		bx, by := project(geom.Vec3{w.B[0], 0, w.B[1]}, origin)
		vector.StrokeLine(screen, ax, ay, bx, by, 2, colornames.Orange, true)
	}
}

func (g *Game) hud() string {
	f := g.frame
	blend, sprint := 0.0, false
	if g.params != nil {
		blend = g.params.Float(anim.ParamBlend)
		sprint = g.params.Bool(anim.ParamSprint)
	}
	return fmt.Sprintf(
		"WASD move  Shift sprint  Space jump  Q/E R/F orbit  Esc quit\n"+
			"TPS %.0f  input (%+.2f, %+.2f)  sprint %t\n"+
			"%s  vy %+.2f  flags %s\n"+
			"pos (%.2f, %.2f, %.2f)  facing %.1f  cam %.1f/%.1f\n"+
			"blend %.2f -> %.2f",
		ebiten.ActualTPS(), f.InputX, f.InputZ, sprint,
		f.State, f.Vertical, f.Flags,
		f.Position[0], f.Position[1], f.Position[2], geom.YawDegrees(f.Rotation), g.rig.Yaw, g.rig.Pitch,
		blend, f.BlendTarget,
	)
}

// project maps world x/z to screen pixels centred on origin; +Z is up.
func project(p, origin geom.Vec3) (float32, float32) {
	x := (p[0]-origin[0])*pixelsPerUnit + ScreenWidth/2
	y := ScreenHeight/2 - (p[2]-origin[2])*pixelsPerUnit
	return float32(x), float32(y)
}
