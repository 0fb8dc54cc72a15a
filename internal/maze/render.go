package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// hudHeight is the number of status rows drawn above the playfield.
const hudHeight = 1

// Scale is the number of world units covered by one terminal cell.
type Scale struct {
	CellW int
	CellH int
}

// FitScale returns the configured scale, or, for a zero axis, the smallest
// scale at which the world fits a cols x rows area below the HUD.
func FitScale(worldW, worldH, cols, rows, cellW, cellH int) Scale {
	if cellW <= 0 {
		cellW = core.CeilDiv(worldW, max(cols, 1))
	}
	if cellH <= 0 {
		cellH = core.CeilDiv(worldH, max(rows-hudHeight, 1))
	}
	return Scale{CellW: max(cellW, 1), CellH: max(cellH, 1)}
}

// Fits reports whether a world of the given size fits a cols x rows screen.
func (sc Scale) Fits(worldW, worldH, cols, rows int) bool {
	return core.CeilDiv(worldW, sc.CellW) <= cols && core.CeilDiv(worldH, sc.CellH)+hudHeight <= rows
}

// toScreen converts a world rectangle to the terminal cells it touches.
func (sc Scale) toScreen(r core.Rect) core.Rect {
	x0 := r.X / sc.CellW
	y0 := r.Y / sc.CellH
	x1 := max(core.CeilDiv(r.Right(), sc.CellW), x0+1)
	y1 := max(core.CeilDiv(r.Bottom(), sc.CellH), y0+1)
	return core.NewRect(x0, y0+hudHeight, x1-x0, y1-y0)
}

// Render draws a snapshot into dst: HUD, walls, goal, entities and the
// overlay for modal states.
func Render(dst *core.Screen, snap Snapshot, sc Scale) {
	dst.Clear()

	if !sc.Fits(snap.WorldW, snap.WorldH, dst.Width(), dst.Height()) {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	renderHUD(dst, snap)

	if snap.State == StateStart {
		drawOverlay(dst, "M A Z E", "Reach the red goal, avoid the monster.  Enter: start  Q: quit")
		return
	}

	for _, w := range snap.Walls {
		dst.DrawRect(sc.toScreen(w), '█', core.ColorGray)
	}
	if snap.HasGoal {
		dst.DrawRect(sc.toScreen(snap.Goal), '▒', core.ColorRed)
	}
	if snap.HasEnemy {
		renderEnemy(dst, snap.Enemy, sc)
	}
	renderPlayer(dst, snap.Player, sc)

	switch snap.State {
	case StateCaught:
		drawOverlay(dst, "Caught!", "R: retry level  Q: quit")
	case StateCompleted:
		drawOverlay(dst, "All levels cleared!", "Enter: back to start  Q: quit")
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Maze | Level %d/%d %s | %s", snap.Level, snap.LevelCount, snap.LevelName, snap.State)
	dst.DrawText(0, 0, hud, core.ColorBrightYellow)
}

func renderPlayer(dst *core.Screen, p EntityView, sc Scale) {
	glyph := 'o'
	if p.Moving {
		switch p.Facing {
		case FacingUp:
			glyph = '^'
		case FacingDown:
			glyph = 'v'
		case FacingLeft:
			glyph = '<'
		case FacingRight:
			glyph = '>'
		}
	}
	dst.DrawRect(sc.toScreen(p.Bounds), glyph, core.ColorBrightGreen)
}

func renderEnemy(dst *core.Screen, e EntityView, sc Scale) {
	box := sc.toScreen(e.Bounds)
	dst.DrawRect(box, '░', core.ColorMagenta)
	dst.DrawRect(sc.toScreen(e.Collider), '▓', core.ColorMagenta)
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
