package maze

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

func mustGrid(t *testing.T, layout string) *Grid {
	t.Helper()
	g, err := ParseGrid(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

func mustEntity(t *testing.T, bounds core.Rect, m config.Margins, speed int) *Entity {
	t.Helper()
	e, err := NewEntity(bounds, m, speed)
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	return &e
}

func TestNewEntityDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  core.Rect
		margins config.Margins
		speed   int
	}{
		{"zero width", core.NewRect(0, 0, 0, 10), config.Margins{}, 1},
		{"negative margin", core.NewRect(0, 0, 10, 10), config.Margins{Left: -1}, 1},
		{"margins eat width", core.NewRect(0, 0, 40, 40), config.Margins{Left: 20, Right: 20}, 1},
		{"margins exceed height", core.NewRect(0, 0, 40, 40), config.Margins{Top: 30, Bottom: 30}, 1},
		{"negative speed", core.NewRect(0, 0, 10, 10), config.Margins{}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEntity(tc.bounds, tc.margins, tc.speed)
			if !errors.Is(err, ErrDegenerateConfiguration) {
				t.Errorf("NewEntity() error = %v, expected ErrDegenerateConfiguration", err)
			}
		})
	}
}

func TestEntityCollider(t *testing.T) {
	e := mustEntity(t, core.NewRect(100, 100, 120, 120), config.Margins{Left: 20, Right: 10, Top: 5, Bottom: 15}, 2)

	want := core.NewRect(120, 105, 90, 100)
	if e.Collider() != want {
		t.Errorf("Collider() = %+v, expected %+v", e.Collider(), want)
	}
}

func TestProposeMoveBlockedRestoresPosition(t *testing.T) {
	// Wall occupies cell (1,1): [40,80) x [40,80).
	grid := mustGrid(t, "000\n010\n000\n")

	tests := []struct {
		name   string
		start  core.Rect
		dx, dy int
	}{
		{"right into wall", core.NewRect(15, 50, 20, 20), 10, 0},
		{"down into wall", core.NewRect(50, 15, 20, 20), 0, 10},
		{"left into wall", core.NewRect(85, 50, 20, 20), -10, 0},
		{"up into wall", core.NewRect(50, 85, 20, 20), 0, -10},
		{"diagonal into wall", core.NewRect(15, 15, 20, 20), 10, 10},
		{"tunnel through wall", core.NewRect(15, 50, 20, 20), 40, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := mustEntity(t, tc.start, config.Margins{}, 5)

			if e.ProposeMove(tc.dx, tc.dy, grid) {
				t.Error("ProposeMove() = true, expected false")
			}
			if e.Bounds() != tc.start {
				t.Errorf("Bounds() = %+v after rejected move, expected %+v", e.Bounds(), tc.start)
			}
		})
	}
}

func TestProposeMoveCommits(t *testing.T) {
	grid := mustGrid(t, "000\n010\n000\n")
	e := mustEntity(t, core.NewRect(0, 0, 20, 20), config.Margins{}, 5)

	if !e.ProposeMove(20, 0, grid) {
		t.Fatal("ProposeMove() = false, expected true")
	}
	// Flush against the wall's top edge is not a collision.
	if !e.ProposeMove(0, 20, grid) {
		t.Fatal("ProposeMove() to wall edge = false, expected true")
	}
	if e.Bounds() != core.NewRect(20, 20, 20, 20) {
		t.Errorf("Bounds() = %+v, expected (20,20)", e.Bounds())
	}
}

func TestProposeMoveZeroIsIdempotent(t *testing.T) {
	grid := mustGrid(t, "1\n")

	// Starts overlapping the wall; a zero move still succeeds.
	start := core.NewRect(10, 10, 20, 20)
	e := mustEntity(t, start, config.Margins{}, 5)

	for range 3 {
		if !e.ProposeMove(0, 0, grid) {
			t.Fatal("ProposeMove(0, 0) = false, expected true")
		}
	}
	if e.Bounds() != start {
		t.Errorf("Bounds() = %+v, expected unchanged %+v", e.Bounds(), start)
	}
}

func TestProposeMoveUsesShrunkCollider(t *testing.T) {
	grid := mustGrid(t, "0001\n")

	// Box reaches into the wall at x=120 but the collider stops at x=110.
	e := mustEntity(t, core.NewRect(0, 0, 120, 40), config.Margins{Left: 10, Right: 20}, 5)

	if !e.ProposeMove(10, 0, grid) {
		t.Fatal("ProposeMove() = false, expected the margin to absorb the overlap")
	}
	if !e.Bounds().Intersects(grid.Walls()[0]) {
		t.Error("bounding box should overlap the wall visually")
	}
	if e.ProposeMove(11, 0, grid) {
		t.Error("ProposeMove() = true once the collider reaches the wall")
	}
}

func TestProposeMoveNilGrid(t *testing.T) {
	e := mustEntity(t, core.NewRect(0, 0, 10, 10), config.Margins{}, 5)
	if !e.ProposeMove(-5, 7, nil) {
		t.Error("ProposeMove() with no grid should always commit")
	}
	if e.Bounds() != core.NewRect(-5, 7, 10, 10) {
		t.Errorf("Bounds() = %+v", e.Bounds())
	}
}
