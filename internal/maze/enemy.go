package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Vec is a direction with components in {-1, 0, 1}.
type Vec struct {
	X, Y int
}

// Directions lists all nine direction vectors, including idle (0, 0).
var Directions = [9]Vec{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// randomDirection draws each component uniformly from {-1, 0, 1}.
func randomDirection(rng *rand.Rand) Vec {
	return Vec{X: rng.Intn(3) - 1, Y: rng.Intn(3) - 1}
}

// Enemy roams the playfield on a random walk. It ignores walls and bounces
// off the screen edges.
type Enemy struct {
	Entity
	dir  Vec
	odds int
	rng  *rand.Rand
	sink EventSink
}

// NewEnemy creates an enemy at (x, y) with a random initial direction.
func NewEnemy(cfg config.EnemyConfig, x, y int, rng *rand.Rand, sink EventSink) (*Enemy, error) {
	body, err := NewEntity(core.NewRect(x, y, cfg.Width, cfg.Height), cfg.Collider, cfg.Speed)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}

	return &Enemy{
		Entity: body,
		dir:    randomDirection(rng),
		odds:   max(cfg.RerollOdds, 1),
		rng:    rng,
		sink:   sink,
	}, nil
}

// Direction returns the current movement vector.
func (e *Enemy) Direction() Vec {
	return e.dir
}

// SetDirection overrides the movement vector.
func (e *Enemy) SetDirection(d Vec) {
	e.dir = Vec{X: core.Clamp(d.X, -1, 1), Y: core.Clamp(d.Y, -1, 1)}
}

// Update advances the enemy by one tick inside a screenW x screenH field.
//
// With probability 1/odds the direction is re-rolled; a re-roll that lands on
// a different vector emits EventDirectionChanged. The enemy then moves by
// direction*speed. Crossing an edge clamps it back, flips that axis and emits
// EventDirectionChanged, so one tick may emit several events.
func (e *Enemy) Update(screenW, screenH int) {
	prev := e.dir
	if e.rng.Intn(e.odds) == 0 {
		e.dir = randomDirection(e.rng)
		if e.dir != prev {
			e.changed()
		}
	}

	e.bounds = e.bounds.Translate(e.dir.X*e.speed, e.dir.Y*e.speed)

	if e.bounds.X < 0 {
		e.bounds.X = 0
		e.bounce(&e.dir.X)
	}
	if e.bounds.Right() > screenW {
		e.bounds.X = screenW - e.bounds.W
		e.bounce(&e.dir.X)
	}
	if e.bounds.Y < 0 {
		e.bounds.Y = 0
		e.bounce(&e.dir.Y)
	}
	if e.bounds.Bottom() > screenH {
		e.bounds.Y = screenH - e.bounds.H
		e.bounce(&e.dir.Y)
	}
}

func (e *Enemy) bounce(component *int) {
	*component = -*component
	e.changed()
}

func (e *Enemy) changed() {
	e.sink.Emit(Event{Kind: EventDirectionChanged})
}
