package maze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// maxSpawnAttempts bounds the enemy spawn rejection loop.
const maxSpawnAttempts = 10000

// State is the session's position in the screen flow.
type State int

const (
	StateStart     State = iota // Start screen
	StatePlaying                // Episode in progress
	StateCaught                 // Game-over screen after touching the enemy
	StateCompleted              // Victory screen after the last level
	StateQuit                   // Terminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateCaught:
		return "caught"
	case StateCompleted:
		return "completed"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome records how the most recent episode ended.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeRetry
	OutcomeQuit
	OutcomeCompleted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeRetry:
		return "retry"
	case OutcomeQuit:
		return "quit"
	case OutcomeCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is the game flow state machine. It owns the current grid, the
// player and the enemy; the grid and enemy are rebuilt on every level load.
type Session struct {
	cfg     config.MazeConfig
	levels  *Levels
	rng     *rand.Rand
	sink    EventSink
	screens Screens

	state      State
	outcome    Outcome
	tick       uint64
	levelIndex int

	grid   *Grid
	player *Player
	enemy  *Enemy
}

// NewSession validates the configuration and returns a session on the start
// screen. A nil sink discards events; nil screens use KeyScreens.
func NewSession(cfg config.MazeConfig, levels *Levels, rng *rand.Rand, sink EventSink, screens Screens) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if levels == nil || levels.Count() == 0 {
		return nil, fmt.Errorf("%w: %w: no levels", ErrMalformedLevel, ErrAssetMissing)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if sink == nil {
		sink = NopSink{}
	}
	if screens == nil {
		screens = KeyScreens{}
	}

	s := &Session{
		cfg:     cfg,
		levels:  levels,
		rng:     rng,
		sink:    sink,
		screens: screens,
		state:   StateStart,
	}

	player, err := NewPlayer(cfg.Player, s.stamped())
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	s.player = player

	// Fail at startup rather than on the first level load.
	if _, err := NewEntity(core.NewRect(0, 0, cfg.Enemy.Width, cfg.Enemy.Height), cfg.Enemy.Collider, cfg.Enemy.Speed); err != nil {
		return nil, fmt.Errorf("enemy: %w", err)
	}
	if err := s.checkSpawnArea(); err != nil {
		return nil, err
	}

	return s, nil
}

// stamped returns a sink that fills in the tick and level before forwarding.
func (s *Session) stamped() EventSink {
	return EventSinkFunc(func(e Event) {
		e.Tick = s.tick
		e.Level = s.levelIndex
		s.sink.Emit(e)
	})
}

func (s *Session) emit(k EventKind) {
	s.stamped().Emit(Event{Kind: k})
}

// Step advances the session by one tick. Errors are fatal level-load
// failures; the session should not be stepped again after one.
func (s *Session) Step(in core.InputFrame) error {
	s.tick++

	if s.state != StateQuit && in.Has(core.ActionQuit) {
		s.quit()
		return nil
	}

	switch s.state {
	case StateStart:
		switch s.screens.Start(in) {
		case ScreenContinue, ScreenRetry:
			return s.begin()
		case ScreenQuit:
			s.quit()
		}

	case StatePlaying:
		return s.play(in)

	case StateCaught:
		switch s.screens.GameOver(in) {
		case ScreenRetry, ScreenContinue:
			s.outcome = OutcomeRetry
			s.player.Respawn()
			return s.loadLevel()
		case ScreenQuit:
			s.quit()
		}

	case StateCompleted:
		switch s.screens.Victory(in) {
		case ScreenContinue, ScreenRetry:
			s.state = StateStart
		case ScreenQuit:
			s.quit()
		}
	}

	return nil
}

// begin starts the whole session over from the first level.
func (s *Session) begin() error {
	s.levelIndex = 0
	s.outcome = OutcomeInProgress
	s.player.Respawn()
	return s.loadLevel()
}

// play runs one frame of an episode and evaluates its end conditions.
func (s *Session) play(in core.InputFrame) error {
	s.player.HandleInput(in, s.grid)
	s.enemy.Update(s.cfg.Screen.Width, s.cfg.Screen.Height)

	collider := s.player.Collider()

	if collider.Intersects(s.enemy.Bounds()) {
		s.emit(EventCaught)
		s.state = StateCaught
		return nil
	}

	if goal, ok := s.grid.Goal(); ok && collider.Intersects(goal) {
		s.emit(EventLevelComplete)
		return s.advance()
	}

	return nil
}

// advance moves to the next level, keeping the player where it stands.
func (s *Session) advance() error {
	next := s.levelIndex + 1
	if next >= s.levels.Count() {
		s.emit(EventVictory)
		s.state = StateCompleted
		s.outcome = OutcomeCompleted
		return nil
	}

	s.levelIndex = next
	return s.loadLevel()
}

// loadLevel builds a fresh grid and enemy for the current level index.
func (s *Session) loadLevel() error {
	grid, err := s.levels.Load(s.levelIndex)
	if err != nil {
		return fmt.Errorf("level %d: %w", s.levelIndex+1, err)
	}

	enemy, err := s.spawnEnemy()
	if err != nil {
		return err
	}

	s.grid = grid
	s.enemy = enemy
	s.state = StatePlaying
	return nil
}

func (s *Session) quit() {
	s.state = StateQuit
	s.outcome = OutcomeQuit
}

func (s *Session) checkSpawnArea() error {
	ec := s.cfg.Enemy
	w, h := s.cfg.Screen.Width, s.cfg.Screen.Height
	if ec.Width > w || ec.Height > h || ec.SpawnMargin > w || ec.SpawnMargin > h || ec.SpawnMargin < 0 {
		return fmt.Errorf("%w: enemy %dx%d (spawn margin %d) does not fit a %dx%d screen",
			ErrDegenerateConfiguration, ec.Width, ec.Height, ec.SpawnMargin, w, h)
	}
	return nil
}

// spawnEnemy draws random positions in [0, screen-margin] on each axis until
// the enemy clears the player. Draws near the right or bottom edge are judged
// where the enemy's first update clamps them, and both bodies are grown by
// one tick of movement, so a fresh enemy cannot catch the player on the
// next frame.
func (s *Session) spawnEnemy() (*Enemy, error) {
	if err := s.checkSpawnArea(); err != nil {
		return nil, err
	}

	ec := s.cfg.Enemy
	maxX := s.cfg.Screen.Width - ec.SpawnMargin
	maxY := s.cfg.Screen.Height - ec.SpawnMargin

	p := s.player.Speed()
	avoid := s.player.Bounds().Inset(-p, -p, -p, -p)

	for range maxSpawnAttempts {
		x := s.rng.Intn(maxX + 1)
		y := s.rng.Intn(maxY + 1)
		if !s.spawnClear(x, y, avoid) {
			continue
		}
		return NewEnemy(ec, x, y, s.rng, s.stamped())
	}

	return nil, fmt.Errorf("%w: no enemy spawn clear of the player after %d draws", ErrDegenerateConfiguration, maxSpawnAttempts)
}

// spawnClear reports whether an enemy drawn at (x, y) stays clear of avoid,
// both as drawn and once clamped onto the screen.
func (s *Session) spawnClear(x, y int, avoid core.Rect) bool {
	ec := s.cfg.Enemy
	drawn := core.NewRect(x, y, ec.Width, ec.Height)
	if drawn.Intersects(avoid) {
		return false
	}

	clamped := core.NewRect(
		core.Clamp(x, 0, s.cfg.Screen.Width-ec.Width),
		core.Clamp(y, 0, s.cfg.Screen.Height-ec.Height),
		ec.Width, ec.Height,
	)
	e := ec.Speed
	return !clamped.Inset(-e, -e, -e, -e).Intersects(avoid)
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Outcome returns how the latest episode ended.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Tick returns the number of steps taken.
func (s *Session) Tick() uint64 {
	return s.tick
}

// LevelIndex returns the 0-indexed current level.
func (s *Session) LevelIndex() int {
	return s.levelIndex
}

// LevelCount returns the number of levels in the sequence.
func (s *Session) LevelCount() int {
	return s.levels.Count()
}

// Grid returns the current level's grid, or nil before the first load.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Player returns the player.
func (s *Session) Player() *Player {
	return s.player
}

// Enemy returns the current enemy, or nil before the first load.
func (s *Session) Enemy() *Enemy {
	return s.enemy
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.state == StateQuit
}
