package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// layoutBoard builds a board with mines at exactly the given points.
func layoutBoard(t *testing.T, w, h int, mines ...Point) *Board {
	t.Helper()
	b := NewBoard(Difficulty{width: w, height: h, mines: len(mines), kind: KindCustom})
	b.placeAt(mines)
	return b
}

func TestPlaceMinesKeepsFirstClickSafe(t *testing.T) {
	difficulties := append(Presets(), Difficulty{width: 7, height: 7, mines: 24, kind: KindCustom})

	for _, d := range difficulties {
		for seed := uint64(1); seed <= 40; seed++ {
			rng := rand.New(rand.NewPCG(seed, seed))
			sx, sy := rng.IntN(d.width), rng.IntN(d.height)

			b := NewBoard(d)
			b.PlaceMines(sx, sy, rng)

			mines := 0
			for y := range d.height {
				for x := range d.width {
					if b.Cell(x, y).HasMine() {
						mines++
						dx, dy := x-sx, y-sy
						require.False(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1,
							"%s seed %d: mine at (%d,%d) next to first click (%d,%d)", d.label, seed, x, y, sx, sy)
					}
				}
			}
			require.Equal(t, d.mines, mines)
			require.True(t, b.MinesPlaced())
		}
	}
}

func TestAdjacencyCounts(t *testing.T) {
	b := NewBoard(Expert)
	b.PlaceMines(5, 5, rand.New(rand.NewPCG(7, 7)))

	sum, pairs := 0, 0
	for y := range b.Height() {
		for x := range b.Width() {
			c := b.Cell(x, y)
			require.GreaterOrEqual(t, c.Adjacent(), 0)
			require.LessOrEqual(t, c.Adjacent(), 8)
			sum += c.Adjacent()
			if c.HasMine() {
				pairs += len(b.Neighbors(x, y))
			}
		}
	}
	require.Equal(t, pairs, sum)
}

func TestNeighborsClipAtEdges(t *testing.T) {
	b := NewBoard(Beginner)
	require.Len(t, b.Neighbors(0, 0), 3)
	require.Len(t, b.Neighbors(7, 7), 3)
	require.Len(t, b.Neighbors(0, 4), 5)
	require.Len(t, b.Neighbors(4, 4), 8)
}

func TestPlaceMinesTwicePanics(t *testing.T) {
	b := NewBoard(Beginner)
	rng := rand.New(rand.NewPCG(1, 2))
	b.PlaceMines(0, 0, rng)
	require.Panics(t, func() { b.PlaceMines(0, 0, rng) })
}

func TestOutOfBoundsPanics(t *testing.T) {
	b := NewBoard(Beginner)
	require.PanicsWithValue(t, "mines: coordinate (8,0) outside 8x8 board", func() { b.RevealCell(8, 0) })
	require.Panics(t, func() { b.ToggleFlag(-1, 3, true) })
	require.Panics(t, func() { b.Cell(0, 8) })
}

func TestRevealCell(t *testing.T) {
	b := layoutBoard(t, 8, 8, Point{3, 3})

	hit, changed := b.RevealCell(0, 0)
	require.False(t, hit)
	require.True(t, changed)
	require.Equal(t, 1, b.CountRevealed())

	hit, changed = b.RevealCell(0, 0)
	require.False(t, hit)
	require.False(t, changed, "already revealed")

	require.True(t, b.ToggleFlag(1, 1, true))
	_, changed = b.RevealCell(1, 1)
	require.False(t, changed, "flagged")

	hit, changed = b.RevealCell(3, 3)
	require.True(t, hit)
	require.True(t, changed)
	require.Equal(t, VisualExplodedMine, b.Visual(3, 3))
	require.Equal(t, 1, b.CountRevealed(), "mines are not counted")
}

func TestFloodRevealSingleRegion(t *testing.T) {
	b := layoutBoard(t, 8, 8, Point{7, 7})

	opened := b.FloodReveal(0, 0)
	require.Len(t, opened, 63)

	seen := make(map[Point]bool)
	for _, p := range opened {
		require.False(t, seen[p], "cell %v opened twice", p)
		seen[p] = true
	}
	require.False(t, seen[Point{7, 7}])
	require.Equal(t, Visual(1), b.Visual(6, 6))
	require.True(t, b.IsFullyCleared())
}

func TestFloodRevealStopsAtBorder(t *testing.T) {
	// A wall of mines down column 4.
	var wall []Point
	for y := range 8 {
		wall = append(wall, Point{4, y})
	}
	b := layoutBoard(t, 8, 8, wall...)

	opened := b.FloodReveal(0, 0)
	require.Len(t, opened, 32)
	for y := range 8 {
		require.Equal(t, Visual(0), b.Visual(2, y))
		require.True(t, b.Visual(3, y) > 0 && b.Visual(3, y) <= 3)
		require.Equal(t, VisualHidden, b.Visual(5, y))
	}
	require.False(t, b.IsFullyCleared())

	require.Nil(t, b.FloodReveal(3, 0), "numbered cells do not flood")
}

func TestFloodRevealSkipsFlags(t *testing.T) {
	b := layoutBoard(t, 8, 8, Point{7, 7})
	require.True(t, b.ToggleFlag(2, 2, true))

	opened := b.FloodReveal(0, 0)
	require.Len(t, opened, 62)
	require.Equal(t, VisualFlagged, b.Visual(2, 2))
}

func TestChordReveal(t *testing.T) {
	newBoard := func() *Board {
		b := layoutBoard(t, 8, 8, Point{0, 0}, Point{2, 0})
		_, changed := b.RevealCell(1, 1)
		require.True(t, changed)
		require.Equal(t, 2, b.Cell(1, 1).Adjacent())
		return b
	}

	t.Run("one flag is a no-op", func(t *testing.T) {
		b := newBoard()
		require.True(t, b.ToggleFlag(0, 0, true))
		opened, detonated := b.ChordReveal(1, 1)
		require.Empty(t, opened)
		require.False(t, detonated)
		require.Equal(t, 1, b.CountRevealed())
	})

	t.Run("two flags open the rest", func(t *testing.T) {
		b := newBoard()
		require.True(t, b.ToggleFlag(0, 0, true))
		require.True(t, b.ToggleFlag(2, 0, true))
		opened, detonated := b.ChordReveal(1, 1)
		require.False(t, detonated)
		require.ElementsMatch(t, []Point{{1, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}, opened)
		require.Equal(t, 7, b.CountRevealed())
	})

	t.Run("wrong flag detonates", func(t *testing.T) {
		b := newBoard()
		require.True(t, b.ToggleFlag(0, 0, true))
		require.True(t, b.ToggleFlag(1, 0, true))
		_, detonated := b.ChordReveal(1, 1)
		require.True(t, detonated)
		require.Equal(t, VisualExplodedMine, b.Visual(2, 0))
	})

	t.Run("hidden cell is a no-op", func(t *testing.T) {
		b := newBoard()
		opened, detonated := b.ChordReveal(5, 5)
		require.Empty(t, opened)
		require.False(t, detonated)
	})
}

func TestToggleFlag(t *testing.T) {
	b := layoutBoard(t, 8, 8, Point{7, 7})

	require.True(t, b.ToggleFlag(3, 3, true))
	require.Equal(t, 1, b.FlagCount())
	require.True(t, b.Cell(3, 3).Flagged())

	require.True(t, b.ToggleFlag(3, 3, false), "removing a flag needs no budget")
	require.Equal(t, 0, b.FlagCount())

	require.False(t, b.ToggleFlag(3, 3, false), "no budget for a new flag")

	b.RevealCell(0, 0)
	require.False(t, b.ToggleFlag(0, 0, true), "revealed cells cannot be flagged")
}

func TestRevealAllForGameOver(t *testing.T) {
	b := layoutBoard(t, 8, 8, Point{0, 0}, Point{5, 5}, Point{7, 0})
	require.True(t, b.ToggleFlag(5, 5, true)) // correct
	require.True(t, b.ToggleFlag(3, 3, true)) // wrong
	b.RevealCell(0, 0)

	changed := b.RevealAllForGameOver()
	require.NotEmpty(t, changed)

	require.Equal(t, VisualExplodedMine, b.Visual(0, 0))
	require.Equal(t, VisualCorrectFlag, b.Visual(5, 5))
	require.Equal(t, VisualWrongFlag, b.Visual(3, 3))
	require.Equal(t, VisualExposedMine, b.Visual(7, 0))

	for y := range 8 {
		for x := range 8 {
			v := b.Visual(x, y)
			require.NotEqual(t, VisualHidden, v)
			require.NotEqual(t, VisualFlagged, v)
		}
	}

	before := b.String()
	require.Empty(t, b.RevealAllForGameOver())
	require.Equal(t, before, b.String())
}

func TestBoardString(t *testing.T) {
	b := layoutBoard(t, 3, 2, Point{2, 1})
	b.RevealCell(0, 0)
	b.RevealCell(1, 1)
	b.ToggleFlag(2, 1, true)
	require.Equal(t, ".##\n#1F", b.String())
}
