package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Each tile takes two columns: the glyph and a gap.
const tileWidth = 2

// numberColors are the classic colors for 1..8.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorNavy,
	core.ColorMaroon,
	core.ColorTeal,
	core.ColorWhite,
	core.ColorGray,
}

// tileGlyph maps a visual state to what is drawn for it.
func tileGlyph(v mines.Visual) (rune, core.Color) {
	switch {
	case v == mines.VisualHidden:
		return '·', core.ColorDarkGray
	case v == mines.VisualFlagged:
		return 'F', core.ColorOrange
	case v == 0:
		return ' ', core.ColorDefault
	case v.IsOpen():
		return rune('0' + v), numberColors[v]
	case v == mines.VisualCorrectFlag:
		return 'F', core.ColorGreen
	case v == mines.VisualWrongFlag:
		return 'x', core.ColorBrightRed
	case v == mines.VisualExplodedMine:
		return '*', core.ColorBrightRed
	case v == mines.VisualExposedMine:
		return '*', core.ColorBrightWhite
	}
	return '?', core.ColorMagenta
}

// face is the status indicator between the counters.
func face(o mines.Outcome) string {
	switch o {
	case mines.Won:
		return "B)"
	case mines.Lost:
		return "X("
	default:
		return ":)"
	}
}

// boardView lays out one session on a screen.
type boardView struct {
	box core.Rect // border around the tiles
}

// minScreenSize returns the terminal size a board of w x h tiles needs.
func minScreenSize(w, h int) (int, int) {
	return w*tileWidth + 3, h + 6
}

// newBoardView centers a board of w x h tiles in a screen.
// Rows: title, header, box, status, help.
func newBoardView(screenW, screenH, w, h int) boardView {
	boxW, boxH := w*tileWidth+3, h+2
	block := core.NewRect(0, 2, screenW, core.Max(0, screenH-4)).Centered(boxW, boxH+1)
	return boardView{box: core.NewRect(block.X, block.Y+1, boxW, boxH)}
}

// tile returns the screen position of the tile at (x, y).
func (v boardView) tile(x, y int) (int, int) {
	return v.box.X + 2 + x*tileWidth, v.box.Y + 1 + y
}

// draw renders the snapshot into s: title, counters, tiles and status line.
func (v boardView) draw(s *core.Screen, snap mines.Snapshot, status string, statusColor core.Color) {
	s.Clear()

	s.DrawTextCentered(0, fmt.Sprintf("M I N E S  ·  %s", snap.Label), core.ColorYellow)

	header := v.box.Y - 1
	s.DrawTextColored(v.box.X, header, fmt.Sprintf("%03d", snap.FlagsRemaining), core.ColorRed)
	faceX := v.box.X + (v.box.W-2)/2
	s.DrawTextColored(faceX, header, face(snap.Outcome), core.ColorYellow)
	s.DrawTextColored(v.box.Right()-3, header, fmt.Sprintf("%03d", snap.Elapsed), core.ColorRed)

	s.DrawBox(v.box, core.ColorGray)
	for y := range snap.Height {
		for x := range snap.Width {
			r, c := tileGlyph(snap.At(x, y))
			sx, sy := v.tile(x, y)
			s.SetColored(sx, sy, r, c)
		}
	}

	s.DrawTextCentered(v.box.Bottom(), status, statusColor)
}

// drawTooSmall tells the player to enlarge the terminal.
func drawTooSmall(s *core.Screen, needW, needH int) {
	s.Clear()
	y := s.Height() / 2
	s.DrawTextCentered(y-1, "Terminal too small", core.ColorYellow)
	s.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, s.Width(), s.Height()), core.ColorGray)
}
