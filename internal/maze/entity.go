package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Entity is the movable body shared by the player and the enemy.
// Bounds is the authoritative position; collisions use the smaller collider.
type Entity struct {
	bounds  core.Rect
	margins config.Margins
	speed   int
}

// NewEntity validates the geometry and creates an entity.
// Margins must be non-negative and leave a collider with positive size.
func NewEntity(bounds core.Rect, margins config.Margins, speed int) (Entity, error) {
	if bounds.Empty() {
		return Entity{}, fmt.Errorf("%w: bounding box %dx%d", ErrDegenerateConfiguration, bounds.W, bounds.H)
	}
	if margins.Left < 0 || margins.Right < 0 || margins.Top < 0 || margins.Bottom < 0 {
		return Entity{}, fmt.Errorf("%w: negative collider margin %+v", ErrDegenerateConfiguration, margins)
	}
	if speed < 0 {
		return Entity{}, fmt.Errorf("%w: negative speed %d", ErrDegenerateConfiguration, speed)
	}

	e := Entity{bounds: bounds, margins: margins, speed: speed}
	if c := e.Collider(); c.Empty() {
		return Entity{}, fmt.Errorf("%w: collider %dx%d from %dx%d box", ErrDegenerateConfiguration, c.W, c.H, bounds.W, bounds.H)
	}
	return e, nil
}

// Bounds returns the bounding box.
func (e *Entity) Bounds() core.Rect {
	return e.bounds
}

// Collider returns the bounding box shrunk by the collider margins.
func (e *Entity) Collider() core.Rect {
	m := e.margins
	return e.bounds.Inset(m.Left, m.Right, m.Top, m.Bottom)
}

// Speed returns the displacement per tick.
func (e *Entity) Speed() int {
	return e.speed
}

// MoveTo places the bounding box's top-left corner at (x, y).
func (e *Entity) MoveTo(x, y int) {
	e.bounds.X = x
	e.bounds.Y = y
}

// ProposeMove tentatively applies (dx, dy) and keeps it only if the collider
// stays clear of every wall in grid. A rejected move leaves the position
// exactly as it was. A zero displacement always succeeds.
func (e *Entity) ProposeMove(dx, dy int, grid *Grid) bool {
	if dx == 0 && dy == 0 {
		return true
	}

	prev := e.bounds
	e.bounds = e.bounds.Translate(dx, dy)
	if grid.Blocked(e.Collider()) {
		e.bounds = prev
		return false
	}
	return true
}
