package maze

import (
	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Facing is the direction the player sprite looks. It only affects rendering.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns the facing name.
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the input-driven entity.
type Player struct {
	Entity
	spawnX, spawnY int
	facing         Facing
	moving         bool
	stepInterval   int
	stepTicker     int
	sink           EventSink
}

// NewPlayer creates a player at its configured spawn point.
func NewPlayer(cfg config.PlayerConfig, sink EventSink) (*Player, error) {
	body, err := NewEntity(core.NewRect(cfg.SpawnX, cfg.SpawnY, cfg.Width, cfg.Height), cfg.Collider, cfg.Speed)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}

	return &Player{
		Entity:       body,
		spawnX:       cfg.SpawnX,
		spawnY:       cfg.SpawnY,
		stepInterval: cfg.StepInterval,
		sink:         sink,
	}, nil
}

// Facing returns the sprite direction.
func (p *Player) Facing() Facing {
	return p.facing
}

// Moving reports whether a direction was held on the last input frame.
func (p *Player) Moving() bool {
	return p.moving
}

// Respawn returns the player to the spawn point, idle and facing down.
func (p *Player) Respawn() {
	p.MoveTo(p.spawnX, p.spawnY)
	p.facing = FacingDown
	p.moving = false
	p.stepTicker = 0
}

// HandleInput moves the player along at most one axis per frame.
// When several directions are held, up beats down beats left beats right.
// A move blocked by a wall is dropped entirely; there is no sliding.
func (p *Player) HandleInput(in core.InputFrame, grid *Grid) {
	dx, dy := 0, 0
	p.moving = true

	switch {
	case in.Has(core.ActionUp):
		dy = -p.speed
		p.facing = FacingUp
	case in.Has(core.ActionDown):
		dy = p.speed
		p.facing = FacingDown
	case in.Has(core.ActionLeft):
		dx = -p.speed
		p.facing = FacingLeft
	case in.Has(core.ActionRight):
		dx = p.speed
		p.facing = FacingRight
	default:
		p.moving = false
	}

	if !p.moving {
		p.stepTicker = 0
		return
	}

	p.ProposeMove(dx, dy, grid)

	if p.stepInterval > 0 {
		p.stepTicker++
		if p.stepTicker >= p.stepInterval {
			p.stepTicker = 0
			p.sink.Emit(Event{Kind: EventStep})
		}
	}
}
