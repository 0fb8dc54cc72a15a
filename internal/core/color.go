package core

// Color tags a screen cell with a palette entry named for what the maze
// draws with it. The tui layer owns the terminal styling, so nothing here
// depends on ANSI codes.
type Color uint8

const (
	ColorDefault      Color = iota // Unstyled text and floor
	ColorRed                       // Goal cell
	ColorYellow                    // Overlay frames
	ColorMagenta                   // Enemy body and collider
	ColorWhite                     // Overlay hints
	ColorBrightGreen               // Player
	ColorBrightYellow              // HUD and overlay titles
	ColorGray                      // Walls
)
