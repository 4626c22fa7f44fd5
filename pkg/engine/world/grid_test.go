package world

import "testing"

func TestNewGrid_AllEmpty(t *testing.T) {
	g := NewGrid(30, 15, 50)
	if g.Cols() != 30 || g.Rows() != 15 {
		t.Fatalf("NewGrid(30, 15) dims = %dx%d, want 30x15", g.Cols(), g.Rows())
	}
	if n := g.CountType(Empty); n != 30*15 {
		t.Errorf("CountType(Empty) = %d, want %d", n, 30*15)
	}
}

func TestNewGrid_CellWorldPositions(t *testing.T) {
	g := NewGrid(4, 3, 50)
	cell := g.GetCell(3, 2)
	if cell == nil {
		t.Fatal("GetCell(3, 2) = nil")
	}
	if cell.X != 150 || cell.Y != 100 {
		t.Errorf("GetCell(3, 2) position = (%v, %v), want (150, 100)", cell.X, cell.Y)
	}
	if cell.Col != 3 || cell.Row != 2 {
		t.Errorf("GetCell(3, 2) = %v, want col 3 row 2", cell)
	}
}

func TestNewGrid_PanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5, 50)
}

func TestSafeNeighborType_OutOfBoundsIsEmpty(t *testing.T) {
	g := NewGrid(3, 3, 16)
	g.Fill(Grass)

	positions := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, -1}, {3, 3}}
	for _, p := range positions {
		if got := g.SafeNeighborType(p[0], p[1]); got != Empty {
			t.Errorf("SafeNeighborType(%d, %d) = %v, want Empty", p[0], p[1], got)
		}
	}
	if got := g.SafeNeighborType(1, 1); got != Grass {
		t.Errorf("SafeNeighborType(1, 1) = %v, want Grass", got)
	}
}

func TestSetCellType(t *testing.T) {
	g := NewGrid(3, 3, 16)
	g.SetCellType(2, 1, Dirt)
	if got := g.SafeNeighborType(2, 1); got != Dirt {
		t.Errorf("after SetCellType(2, 1, Dirt) type = %v, want Dirt", got)
	}
	g.SetCellType(2, 1, Empty)
	if got := g.SafeNeighborType(2, 1); got != Empty {
		t.Errorf("after SetCellType(2, 1, Empty) type = %v, want Empty", got)
	}
}

func TestSetCellType_OutOfRangeIgnored(t *testing.T) {
	g := NewGrid(3, 3, 16)
	g.Fill(Grass)

	g.SetCellType(-1, 0, Dirt)
	g.SetCellType(0, -1, Dirt)
	g.SetCellType(3, 0, Dirt)
	g.SetCellType(0, 3, Dirt)
	g.SetCellType(1, 1, TileType(99))

	if n := g.CountType(Grass); n != 9 {
		t.Errorf("CountType(Grass) after out-of-range writes = %d, want 9", n)
	}
}

func TestCellAt_FloorsNegativePositions(t *testing.T) {
	g := NewGrid(30, 15, 50)
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{49.9, 50, 0, 1},
		{-0.5, 10, -1, 0},
		{1499, 749, 29, 14},
		{1500, 0, 30, 0},
	}
	for _, tt := range tests {
		col, row := g.CellAt(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("CellAt(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestForEachCellIn_Clips(t *testing.T) {
	g := NewGrid(5, 5, 16)
	n := 0
	g.ForEachCellIn(-3, -3, 1, 1, func(col, row int, cell *Cell) {
		n++
	})
	if n != 4 {
		t.Errorf("ForEachCellIn(-3,-3,1,1) visited %d cells, want 4", n)
	}
}

func TestDirection_OppositeAndFromVector(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dc, dr := d.Delta()
		got, ok := DirectionFromVector(float64(dc)*3, float64(dr)*0.5)
		if !ok || got != d {
			t.Errorf("DirectionFromVector(%d, %d) = %v, %v, want %v", dc, dr, got, ok, d)
		}
	}
	if _, ok := DirectionFromVector(0, 0); ok {
		t.Error("DirectionFromVector(0, 0) ok = true, want false")
	}
}
