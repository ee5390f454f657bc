package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
)

// Point is a board coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Board is the fixed-size grid of cells for one session.
// Cells are stored row-major: index = y*width + x.
type Board struct {
	width    int
	height   int
	mines    int
	cells    []Cell
	placed   bool
	revealed int
	flagged  int
}

// NewBoard creates an empty, mine-less board sized for d.
func NewBoard(d Difficulty) *Board {
	return &Board{
		width:  d.width,
		height: d.height,
		mines:  d.mines,
		cells:  make([]Cell, d.width*d.height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// MineCount returns the number of mines the board holds once placed.
func (b *Board) MineCount() int { return b.mines }

// MinesPlaced reports whether PlaceMines has run.
func (b *Board) MinesPlaced() bool { return b.placed }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) Cell {
	return *b.at(x, y)
}

// Visual returns what should be drawn at (x, y).
func (b *Board) Visual(x, y int) Visual {
	return b.at(x, y).Visual()
}

// at returns the cell at (x, y). Out-of-bounds access is a caller bug.
func (b *Board) at(x, y int) *Cell {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("mines: coordinate (%d,%d) outside %dx%d board", x, y, b.width, b.height))
	}
	return &b.cells[y*b.width+x]
}

// Neighbors returns the 8-neighborhood of (x, y), clipped to the grid.
func (b *Board) Neighbors(x, y int) []Point {
	pts := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				pts = append(pts, Point{nx, ny})
			}
		}
	}
	return pts
}

// insideSafeZone reports whether (x, y) is within Euclidean distance 1.5 of
// the safe cell, which is exactly the cell and its 8 neighbors.
func insideSafeZone(x, y, safeX, safeY int) bool {
	dx, dy := x-safeX, y-safeY
	return dx*dx+dy*dy < 3 // 1.5^2 = 2.25; integer distances squared are 0, 1, 2, 4, ...
}

// PlaceMines randomly places exactly MineCount mines, keeping (safeX, safeY)
// and its neighbors mine-free, then computes adjacency counts.
// It must be called exactly once, with the coordinates of the first reveal.
func (b *Board) PlaceMines(safeX, safeY int, rng *rand.Rand) {
	b.at(safeX, safeY) // bounds check
	if b.placed {
		panic("mines: PlaceMines called twice")
	}

	candidates := make([]int, 0, len(b.cells))
	for y := range b.height {
		for x := range b.width {
			if !insideSafeZone(x, y, safeX, safeY) {
				candidates = append(candidates, y*b.width+x)
			}
		}
	}

	// Very dense boards cannot keep the whole 3x3 clear; only the clicked
	// cell stays guaranteed in that case.
	if len(candidates) < b.mines {
		for _, p := range b.Neighbors(safeX, safeY) {
			candidates = append(candidates, p.Y*b.width+p.X)
		}
	}

	picked := make([]Point, 0, b.mines)
	k := len(candidates)
	for range b.mines {
		i := rng.IntN(k)
		idx := candidates[i]
		picked = append(picked, Point{idx % b.width, idx / b.width})
		k--
		candidates[i] = candidates[k]
	}

	b.placeAt(picked)
}

// placeAt puts mines on exactly the given points and computes adjacency.
func (b *Board) placeAt(points []Point) {
	for _, p := range points {
		b.at(p.X, p.Y).hasMine = true
	}
	b.mines = len(points)

	for y := range b.height {
		for x := range b.width {
			c := b.at(x, y)
			c.adjacent = lo.CountBy(b.Neighbors(x, y), func(p Point) bool {
				return b.at(p.X, p.Y).hasMine
			})
		}
	}
	b.placed = true
}

// RevealCell opens a single cell. It reports whether the cell held a mine
// and whether anything changed; already revealed or flagged cells are left
// alone.
func (b *Board) RevealCell(x, y int) (hitMine, changed bool) {
	c := b.at(x, y)
	if c.revealed || c.flagged {
		return false, false
	}

	c.revealed = true
	if c.hasMine {
		c.exploded = true
		return true, true
	}
	b.revealed++
	return false, true
}

// FloodReveal opens the connected zero-adjacency region containing (x, y)
// together with its numbered border. It does nothing unless (x, y) is a
// mine-free cell with no adjacent mines. Flagged cells are never opened.
// Returns every cell opened by this call.
func (b *Board) FloodReveal(x, y int) []Point {
	start := b.at(x, y)
	if start.hasMine || start.adjacent != 0 || start.flagged {
		return nil
	}

	var opened []Point
	if _, changed := b.RevealCell(x, y); changed {
		opened = append(opened, Point{x, y})
	}

	// Cells are revealed when queued, so the revealed bit doubles as the
	// visited set and no cell is processed twice.
	queue := []Point{{x, y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, n := range b.Neighbors(p.X, p.Y) {
			nc := b.at(n.X, n.Y)
			if nc.revealed || nc.flagged || nc.hasMine {
				continue
			}
			b.RevealCell(n.X, n.Y)
			opened = append(opened, n)
			if nc.adjacent == 0 {
				queue = append(queue, n)
			}
		}
	}

	return opened
}

// ToggleFlag flips the flag on an unrevealed cell. Placing a new flag needs
// canPlace; removing one never does. Reports whether the cell changed.
func (b *Board) ToggleFlag(x, y int, canPlace bool) bool {
	c := b.at(x, y)
	if c.revealed || c.exposed {
		return false
	}

	if c.flagged {
		c.flagged = false
		b.flagged--
		return true
	}
	if !canPlace {
		return false
	}
	c.flagged = true
	b.flagged++
	return true
}

// FlagCount returns the number of flags on the board.
func (b *Board) FlagCount() int { return b.flagged }

// FlaggedNeighbors counts flags around (x, y).
func (b *Board) FlaggedNeighbors(x, y int) int {
	return lo.CountBy(b.Neighbors(x, y), func(p Point) bool {
		return b.at(p.X, p.Y).flagged
	})
}

// ChordReveal opens every unrevealed, unflagged neighbor of a revealed
// numbered cell whose flagged-neighbor count equals its number. Any other
// call is a no-op. Returns the opened cells and whether one of them was a
// mine.
func (b *Board) ChordReveal(x, y int) (opened []Point, detonated bool) {
	c := b.at(x, y)
	if !c.revealed || c.hasMine || c.adjacent == 0 {
		return nil, false
	}
	if b.FlaggedNeighbors(x, y) != c.adjacent {
		return nil, false
	}

	targets := lo.Filter(b.Neighbors(x, y), func(p Point, _ int) bool {
		n := b.at(p.X, p.Y)
		return !n.revealed && !n.flagged
	})
	for _, p := range targets {
		hit, changed := b.RevealCell(p.X, p.Y)
		if changed {
			opened = append(opened, p)
		}
		if hit {
			detonated = true
		}
	}
	return opened, detonated
}

// RevealAllForGameOver exposes every cell: unflagged mines are shown, flags
// are marked correct or wrong, and hidden safe cells show their counts.
// Calling it again changes nothing. Returns the cells whose visual changed.
func (b *Board) RevealAllForGameOver() []Point {
	var changed []Point
	for y := range b.height {
		for x := range b.width {
			c := b.at(x, y)
			if c.exposed {
				continue
			}
			before := c.Visual()
			c.exposed = true
			if c.Visual() != before {
				changed = append(changed, Point{x, y})
			}
		}
	}
	return changed
}

// CountRevealed returns the number of safe cells the player has opened.
func (b *Board) CountRevealed() int { return b.revealed }

// IsFullyCleared reports whether every safe cell has been opened.
func (b *Board) IsFullyCleared() bool {
	return b.placed && b.revealed == len(b.cells)-b.mines
}

// String renders the board's visuals row by row, for debugging and tests.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.width {
			sb.WriteString(b.Visual(x, y).String())
		}
	}
	return sb.String()
}
