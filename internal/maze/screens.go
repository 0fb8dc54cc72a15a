package maze

import "github.com/vovakirdan/tui-maze/internal/core"

// ScreenResult is what an outer screen reports back to the session.
type ScreenResult int

const (
	ScreenPending  ScreenResult = iota // Stay on the screen
	ScreenContinue                     // Start or replay
	ScreenRetry                        // Reload the current level
	ScreenQuit                         // End the session
)

// String returns the result name.
func (r ScreenResult) String() string {
	switch r {
	case ScreenPending:
		return "pending"
	case ScreenContinue:
		return "continue"
	case ScreenRetry:
		return "retry"
	case ScreenQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Screens decides when the modal start, game-over and victory screens are
// left. The session calls the matching method once per tick while it is in
// that state, so the screens never block the tick loop.
type Screens interface {
	Start(in core.InputFrame) ScreenResult
	GameOver(in core.InputFrame) ScreenResult
	Victory(in core.InputFrame) ScreenResult
}

// KeyScreens maps input actions onto screen results.
type KeyScreens struct{}

// Start continues on Confirm.
func (KeyScreens) Start(in core.InputFrame) ScreenResult {
	switch {
	case in.Has(core.ActionQuit):
		return ScreenQuit
	case in.Has(core.ActionConfirm):
		return ScreenContinue
	}
	return ScreenPending
}

// GameOver retries on Restart or Confirm.
func (KeyScreens) GameOver(in core.InputFrame) ScreenResult {
	switch {
	case in.Has(core.ActionQuit):
		return ScreenQuit
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
		return ScreenRetry
	}
	return ScreenPending
}

// Victory continues back to the start screen on Confirm.
func (KeyScreens) Victory(in core.InputFrame) ScreenResult {
	switch {
	case in.Has(core.ActionQuit):
		return ScreenQuit
	case in.Has(core.ActionConfirm):
		return ScreenContinue
	}
	return ScreenPending
}
