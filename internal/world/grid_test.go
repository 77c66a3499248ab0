package world

import "testing"

func TestGridSetAndBounds(t *testing.T) {
	g := NewGrid()
	if _, _, ok := g.Bounds(); ok {
		t.Fatal("空网格不应有边界")
	}

	g.Set(-2, 0, 3, true)
	g.Set(4, -1, -5, true)

	if !g.IsSolid(-2, 0, 3) || !g.IsSolid(4, -1, -5) {
		t.Fatal("Set 后方块应为实心")
	}
	lo, hi, ok := g.Bounds()
	if !ok {
		t.Fatal("Bounds 应返回 true")
	}
	if lo != (Cell{-2, -1, -5}) || hi != (Cell{4, 0, 3}) {
		t.Fatalf("Bounds = %v..%v", lo, hi)
	}

	g.Set(-2, 0, 3, false)
	if g.IsSolid(-2, 0, 3) {
		t.Fatal("清除后方块不应为实心")
	}
	if g.Len() != 1 {
		t.Fatalf("Len = %d, 期望 1", g.Len())
	}
}

func TestGridFillAndCells(t *testing.T) {
	g := NewGrid()
	g.Fill(Cell{2, 0, 2}, Cell{0, 0, 0})
	if g.Len() != 9 {
		t.Fatalf("Len = %d, 期望 9", g.Len())
	}
	if got := len(g.Cells(0)); got != 9 {
		t.Fatalf("Cells(0) = %d, 期望 9", got)
	}
	if got := len(g.Cells(1)); got != 0 {
		t.Fatalf("Cells(1) = %d, 期望 0", got)
	}
}

func TestNilGridIsEmpty(t *testing.T) {
	var g *Grid
	if g.IsSolid(0, 0, 0) {
		t.Fatal("nil Grid 不应有实心方块")
	}
}
