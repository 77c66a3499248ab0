package world

import (
	"fmt"
	"os"

	"github.com/Versifine/stride/internal/geom"
	"github.com/Versifine/stride/internal/physics"
	"gopkg.in/yaml.v3"
)

const solidRune = '#'

// Level is a playable map: a voxel grid for the grid mover and wall
// segments for the arena mover.
type Level struct {
	Name  string
	Spawn geom.Vec3
	Floor float64
	Grid  *Grid
	Walls []physics.Wall
}

type levelFile struct {
	Name   string       `yaml:"name"`
	Spawn  []float64    `yaml:"spawn"`
	Floor  float64      `yaml:"floor"`
	Layers []layerFile  `yaml:"layers"`
	Walls  [][4]float64 `yaml:"walls"`
}

type layerFile struct {
	Y    int      `yaml:"y"`
	Fill bool     `yaml:"fill"`
	Rows []string `yaml:"rows"`
}

func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	level, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return level, nil
}

// Parse reads a level. Row i of a layer is z = i, column j is x = j; '#'
// marks a solid cell. A fill layer covers the footprint of all row layers.
func Parse(data []byte) (*Level, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, err
	}

	level := &Level{
		Name:  lf.Name,
		Floor: lf.Floor,
		Grid:  NewGrid(),
	}

	switch len(lf.Spawn) {
	case 0:
	case 3:
		level.Spawn = geom.Vec3{lf.Spawn[0], lf.Spawn[1], lf.Spawn[2]}
	default:
		return nil, fmt.Errorf("spawn needs 3 coordinates, got %d", len(lf.Spawn))
	}

	width, depth := 0, 0
	for _, layer := range lf.Layers {
		depth = max(depth, len(layer.Rows))
		for _, row := range layer.Rows {
			width = max(width, len(row))
		}
	}

	for i, layer := range lf.Layers {
		if layer.Fill {
			if len(layer.Rows) > 0 {
				return nil, fmt.Errorf("layer %d: fill and rows are exclusive", i)
			}
			if width == 0 || depth == 0 {
				return nil, fmt.Errorf("layer %d: fill needs at least one row layer", i)
			}
			level.Grid.Fill(Cell{0, layer.Y, 0}, Cell{width - 1, layer.Y, depth - 1})
			continue
		}
		for z, row := range layer.Rows {
			for x, r := range []rune(row) {
				if r == solidRune {
					level.Grid.Set(x, layer.Y, z, true)
				}
			}
		}
	}

	for _, w := range lf.Walls {
		level.Walls = append(level.Walls, physics.Wall{
			A: [2]float64{w[0], w[1]},
			B: [2]float64{w[2], w[3]},
		})
	}

	return level, nil
}

// Flat is a size×size floor at y = -1 enclosed by walls, with the spawn in
// the middle. Used when no level file is configured.
func Flat(size int) *Level {
	size = max(size, 1)
	s := float64(size)
	level := &Level{
		Name:  "flat",
		Spawn: geom.Vec3{s / 2, 0, s / 2},
		Grid:  NewGrid(),
		Walls: []physics.Wall{
			{A: [2]float64{0, 0}, B: [2]float64{s, 0}},
			{A: [2]float64{s, 0}, B: [2]float64{s, s}},
			{A: [2]float64{s, s}, B: [2]float64{0, s}},
			{A: [2]float64{0, s}, B: [2]float64{0, 0}},
		},
	}
	level.Grid.Fill(Cell{0, -1, 0}, Cell{size - 1, -1, size - 1})
	return level
}
