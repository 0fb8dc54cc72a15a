// Package maze implements the game session core: tile grids loaded from text
// levels, moving entities with collider-based wall collision, the roaming
// enemy, the input-driven player and the session state machine that ties
// them together. It has no terminal dependencies; the platform layer feeds
// it input frames and renders its snapshots.
package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// CellSize is the edge length of one grid cell in world units.
const CellSize = 40

// Level file characters.
const (
	cellWall = '1'
	cellGoal = 'E'
)

// Grid is the static collision map of one level plus an optional goal cell.
// It is immutable after loading.
type Grid struct {
	walls   []core.Rect
	goal    core.Rect
	hasGoal bool
	rows    int
	cols    int
}

// ParseGrid reads a level description: one line per row, one character per
// column. '1' is a wall, 'E' the goal, anything else is open floor.
// If several goals are present the last one wins.
func ParseGrid(r io.Reader) (*Grid, error) {
	g := &Grid{}

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		col := 0
		for _, ch := range line {
			cell := core.NewRect(col*CellSize, row*CellSize, CellSize, CellSize)
			switch ch {
			case cellWall:
				g.walls = append(g.walls, cell)
			case cellGoal:
				g.goal = cell
				g.hasGoal = true
			}
			col++
		}

		g.cols = max(g.cols, col)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLevel, row+1, err)
	}

	g.rows = row
	return g, nil
}

// LoadGrid parses the level file at path.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	g, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Walls returns the wall rectangles. Callers must not modify the slice.
func (g *Grid) Walls() []core.Rect {
	return g.walls
}

// Goal returns the goal rectangle and whether the level has one.
func (g *Grid) Goal() (core.Rect, bool) {
	return g.goal, g.hasGoal
}

// Rows returns the number of lines in the level.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the length of the longest line.
func (g *Grid) Cols() int {
	return g.cols
}

// Blocked reports whether r overlaps any wall.
func (g *Grid) Blocked(r core.Rect) bool {
	if g == nil {
		return false
	}
	for _, w := range g.walls {
		if r.Intersects(w) {
			return true
		}
	}
	return false
}
