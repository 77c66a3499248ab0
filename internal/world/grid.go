package world

import "sync"

type Cell [3]int

// Grid is a sparse set of solid unit cells. It satisfies physics.BlockStore.
type Grid struct {
	mu    sync.RWMutex
	solid map[Cell]struct{}
	min   Cell
	max   Cell
}

func NewGrid() *Grid {
	return &Grid{solid: make(map[Cell]struct{})}
}

func (g *Grid) IsSolid(x, y, z int) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.solid[Cell{x, y, z}]
	return ok
}

func (g *Grid) Set(x, y, z int, solid bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := Cell{x, y, z}
	if !solid {
		delete(g.solid, c)
		return
	}
	if len(g.solid) == 0 {
		g.min, g.max = c, c
	} else {
		for i := 0; i < 3; i++ {
			g.min[i] = min(g.min[i], c[i])
			g.max[i] = max(g.max[i], c[i])
		}
	}
	g.solid[c] = struct{}{}
}

// Fill marks every cell of the inclusive box solid.
func (g *Grid) Fill(from, to Cell) {
	for x := min(from[0], to[0]); x <= max(from[0], to[0]); x++ {
		for y := min(from[1], to[1]); y <= max(from[1], to[1]); y++ {
			for z := min(from[2], to[2]); z <= max(from[2], to[2]); z++ {
				g.Set(x, y, z, true)
			}
		}
	}
}

// Bounds returns the inclusive extent of cells ever set, and false for an
// empty grid.
func (g *Grid) Bounds() (Cell, Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.solid) == 0 {
		return Cell{}, Cell{}, false
	}
	return g.min, g.max, true
}

func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.solid)
}

// Cells lists solid cells in one horizontal layer.
func (g *Grid) Cells(y int) []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Cell, 0)
	for c := range g.solid {
		if c[1] == y {
			out = append(out, c)
		}
	}
	return out
}
