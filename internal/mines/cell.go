package mines

import "strconv"

// Visual is what a renderer should draw for one tile.
// Values 0..8 mean an opened tile with that many adjacent mines.
type Visual int8

const (
	VisualHidden  Visual = -2
	VisualFlagged Visual = -1

	// Game-over states, only produced by the reveal-all pass.
	VisualCorrectFlag  Visual = 64
	VisualExplodedMine Visual = 65
	VisualWrongFlag    Visual = 66
	VisualExposedMine  Visual = 67
)

// IsOpen reports whether v is an opened numbered (or empty) tile.
func (v Visual) IsOpen() bool {
	return v >= 0 && v <= 8
}

// String returns a one-character debug representation.
func (v Visual) String() string {
	switch {
	case v == VisualHidden:
		return "#"
	case v == VisualFlagged:
		return "F"
	case v == 0:
		return "."
	case v.IsOpen():
		return strconv.Itoa(int(v))
	case v == VisualCorrectFlag:
		return "f"
	case v == VisualExplodedMine:
		return "X"
	case v == VisualWrongFlag:
		return "x"
	case v == VisualExposedMine:
		return "*"
	default:
		return "?"
	}
}

// Cell is the per-tile state owned by a Board.
// A flagged cell is never revealed and a revealed cell is never flagged.
type Cell struct {
	hasMine  bool
	adjacent int
	revealed bool
	flagged  bool

	// set by the game-over pass
	exposed  bool
	exploded bool
}

// HasMine reports whether the cell holds a mine. Meaningful after placement.
func (c Cell) HasMine() bool { return c.hasMine }

// Adjacent returns the number of mines in the 8-neighborhood.
func (c Cell) Adjacent() int { return c.adjacent }

// Revealed reports whether the player has opened the cell.
func (c Cell) Revealed() bool { return c.revealed }

// Flagged reports whether the cell carries a flag.
func (c Cell) Flagged() bool { return c.flagged }

// Shown reports whether the cell's contents are visible, either because it
// was revealed or because the game-over pass exposed it.
func (c Cell) Shown() bool { return c.revealed || c.exposed }

// Visual maps the cell state to what should be drawn.
func (c Cell) Visual() Visual {
	switch {
	case c.exploded:
		return VisualExplodedMine
	case c.exposed && c.flagged && c.hasMine:
		return VisualCorrectFlag
	case c.exposed && c.flagged:
		return VisualWrongFlag
	case c.flagged:
		return VisualFlagged
	case (c.revealed || c.exposed) && c.hasMine:
		return VisualExposedMine
	case c.revealed || c.exposed:
		return Visual(c.adjacent)
	default:
		return VisualHidden
	}
}
