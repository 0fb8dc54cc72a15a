package maze

import "github.com/vovakirdan/tui-maze/internal/core"

// EntityView is the presentation-facing state of one entity.
type EntityView struct {
	Bounds    core.Rect
	Collider  core.Rect
	Facing    Facing // Player only
	Moving    bool   // Player only
	Direction Vec    // Enemy only
}

// Snapshot captures everything a renderer needs for one frame. It is also
// used to compare runs in determinism tests.
type Snapshot struct {
	Tick       uint64
	State      State
	Outcome    Outcome
	Level      int // 1-indexed for display
	LevelCount int
	LevelName  string
	WorldW     int
	WorldH     int
	Walls      []core.Rect
	Goal       core.Rect
	HasGoal    bool
	Player     EntityView
	Enemy      EntityView
	HasEnemy   bool
}

// Snapshot returns the current frame's view. Walls alias the grid's
// read-only slice.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Outcome:    s.outcome,
		Level:      s.levelIndex + 1,
		LevelCount: s.levels.Count(),
		LevelName:  s.levels.Name(s.levelIndex),
		WorldW:     s.cfg.Screen.Width,
		WorldH:     s.cfg.Screen.Height,
		Player: EntityView{
			Bounds:   s.player.Bounds(),
			Collider: s.player.Collider(),
			Facing:   s.player.Facing(),
			Moving:   s.player.Moving(),
		},
	}

	if s.grid != nil {
		snap.Walls = s.grid.Walls()
		snap.Goal, snap.HasGoal = s.grid.Goal()
	}
	if s.enemy != nil {
		snap.HasEnemy = true
		snap.Enemy = EntityView{
			Bounds:    s.enemy.Bounds(),
			Collider:  s.enemy.Collider(),
			Direction: s.enemy.Direction(),
		}
	}

	return snap
}
