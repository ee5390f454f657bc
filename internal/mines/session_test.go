package mines

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// layoutSession returns a session whose mines are already placed.
func layoutSession(t *testing.T, w, h int, mines ...Point) *Session {
	t.Helper()
	d := Difficulty{width: w, height: h, mines: len(mines), label: "test", kind: KindCustom}
	s := NewSession(d, WithSeed(1))
	s.board.placeAt(mines)
	return s
}

func TestNewSession(t *testing.T) {
	s := NewSession(Intermediate, WithSeed(3))
	require.Equal(t, InProgress, s.Outcome())
	require.Equal(t, 40, s.FlagsRemaining())
	require.Equal(t, 0, s.Elapsed())
	require.Equal(t, 0, s.RevealedCount())
	require.False(t, s.Started())
	require.Equal(t, Intermediate, s.Difficulty())
}

func TestFirstRevealIsAlwaysSafe(t *testing.T) {
	for _, d := range Presets() {
		for seed := uint64(0); seed < 50; seed++ {
			s := NewSession(d, WithSeed(seed))
			x, y := int(seed)%d.Width(), int(seed*7)%d.Height()

			res := s.Reveal(x, y)
			require.NotEqual(t, Lost, res.Outcome, "%s seed %d", d.Label(), seed)
			require.True(t, s.Started())
			require.Equal(t, Visual(0), s.Board().Visual(x, y), "first click opens a zero cell")
			require.GreaterOrEqual(t, len(res.Changed), 1)
		}
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a := NewSession(Expert, WithSeed(42))
	b := NewSession(Expert, WithSeed(42))
	a.Reveal(10, 10)
	b.Reveal(10, 10)
	require.Equal(t, a.Board().String(), b.Board().String())
}

func TestRevealMineLoses(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{0, 0}, Point{7, 7})
	s.ToggleFlag(7, 7)
	s.Tick()

	res := s.Reveal(0, 0)
	require.Equal(t, Lost, res.Outcome)
	require.Equal(t, Lost, s.Outcome())
	require.Len(t, res.Changed, 64)

	snap := s.Snapshot()
	for y := range 8 {
		for x := range 8 {
			v := snap.At(x, y)
			require.NotEqual(t, VisualHidden, v)
			require.NotEqual(t, VisualFlagged, v)
		}
	}
	require.Equal(t, VisualExplodedMine, snap.At(0, 0))
	require.Equal(t, VisualCorrectFlag, snap.At(7, 7))

	// Terminal: nothing moves any more.
	require.Empty(t, s.Board().RevealAllForGameOver())
	require.Empty(t, s.Reveal(3, 3).Changed)
	require.False(t, s.ToggleFlag(4, 4).Changed)
	require.Empty(t, s.ChordReveal(1, 1).Changed)
	require.Equal(t, 1, s.Tick())
	require.Equal(t, snap, s.Snapshot())
}

func TestWinOnlyByClearingEverySafeCell(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{0, 0}, Point{2, 0})

	res := s.Reveal(1, 1)
	require.Equal(t, InProgress, res.Outcome)
	require.Equal(t, []Change{{X: 1, Y: 1, Visual: 2}}, res.Changed)

	res = s.Reveal(7, 7)
	require.Equal(t, InProgress, res.Outcome)
	require.Equal(t, 61, s.RevealedCount(), "(1,0) borders no zero cell")
	require.False(t, s.Board().IsFullyCleared())

	res = s.Reveal(1, 0)
	require.Equal(t, Won, res.Outcome)
	require.Equal(t, s.Difficulty().SafeCells(), s.RevealedCount())
	require.True(t, s.Board().IsFullyCleared())
	require.Equal(t, VisualExposedMine, s.Board().Visual(0, 0))
}

func TestWinningFloodExposesMines(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{7, 7})

	res := s.Reveal(0, 0)
	require.Equal(t, Won, res.Outcome)
	require.Len(t, res.Changed, 64)
	require.Equal(t, VisualExposedMine, s.Board().Visual(7, 7))
}

func TestRevealIgnoresFlaggedAndRevealed(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{0, 0}, Point{2, 0})

	s.ToggleFlag(1, 1)
	require.Empty(t, s.Reveal(1, 1).Changed)
	s.ToggleFlag(1, 1)

	require.Len(t, s.Reveal(1, 1).Changed, 1)
	require.Empty(t, s.Reveal(1, 1).Changed)
}

func TestFlagBudget(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{0, 0}, Point{2, 0})

	res := s.ToggleFlag(5, 5)
	require.True(t, res.Changed)
	require.Equal(t, 1, res.FlagsRemaining)

	res = s.ToggleFlag(6, 6)
	require.True(t, res.Changed)
	require.Equal(t, 0, res.FlagsRemaining)

	res = s.ToggleFlag(7, 7)
	require.False(t, res.Changed, "budget exhausted")
	require.Equal(t, 0, res.FlagsRemaining)

	res = s.ToggleFlag(6, 6)
	require.True(t, res.Changed)
	require.Equal(t, 1, res.FlagsRemaining)

	s.Reveal(1, 1)
	res = s.ToggleFlag(1, 1)
	require.False(t, res.Changed, "revealed cells cannot be flagged")
	require.Equal(t, 1, res.FlagsRemaining)
}

func TestFlagBeforeFirstReveal(t *testing.T) {
	s := NewSession(Beginner, WithSeed(9))
	res := s.ToggleFlag(0, 0)
	require.True(t, res.Changed)
	require.Equal(t, 9, res.FlagsRemaining)
	require.False(t, s.Started())
}

func TestChordRevealFloodsZeros(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{0, 0}, Point{2, 0})
	s.Reveal(1, 1)
	s.ToggleFlag(0, 0)
	s.ToggleFlag(2, 0)

	res := s.ChordReveal(1, 1)
	require.Equal(t, Won, res.Outcome, "the zero neighbors flood the rest of the board")
	require.True(t, s.Board().IsFullyCleared())
	require.Equal(t, VisualCorrectFlag, s.Board().Visual(0, 0))
}

func TestChordRevealDetonation(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{0, 0}, Point{2, 0})
	s.Reveal(1, 1)
	s.ToggleFlag(0, 0)
	s.ToggleFlag(1, 0)

	res := s.ChordReveal(1, 1)
	require.Equal(t, Lost, res.Outcome)
	require.Equal(t, VisualExplodedMine, s.Board().Visual(2, 0))
	require.Equal(t, VisualWrongFlag, s.Board().Visual(1, 0))
}

func TestChordRevealBeforeStartIsNoop(t *testing.T) {
	s := NewSession(Beginner, WithSeed(1))
	res := s.ChordReveal(3, 3)
	require.Empty(t, res.Changed)
	require.False(t, s.Started())
}

func TestTickSaturates(t *testing.T) {
	s := NewSession(Beginner, WithSeed(1))
	for range MaxElapsed + 25 {
		s.Tick()
	}
	require.Equal(t, MaxElapsed, s.Elapsed())
}

func TestSessionOutOfBoundsPanics(t *testing.T) {
	s := NewSession(Beginner, WithSeed(1))
	require.Panics(t, func() { s.Reveal(8, 8) })
	require.Panics(t, func() { s.ToggleFlag(-1, 0) })
	require.Panics(t, func() { s.ChordReveal(0, 99) })
}

func TestSnapshot(t *testing.T) {
	s := layoutSession(t, 8, 8, Point{0, 0}, Point{2, 0})
	s.Reveal(1, 1)
	s.ToggleFlag(0, 0)
	s.Tick()

	snap := s.Snapshot()
	require.Equal(t, 8, snap.Width)
	require.Equal(t, 8, snap.Height)
	require.Equal(t, "test", snap.Label)
	require.Equal(t, 1, snap.FlagsRemaining)
	require.Equal(t, 1, snap.Elapsed)
	require.Equal(t, 1, snap.Revealed)
	require.True(t, snap.Started)
	require.Equal(t, Visual(2), snap.At(1, 1))
	require.Equal(t, VisualFlagged, snap.At(0, 0))
	require.Equal(t, VisualHidden, snap.At(5, 5))
}
