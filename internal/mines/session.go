package mines

import (
	"math/rand/v2"
	"time"

	"github.com/samber/lo"
)

// MaxElapsed is where the session clock saturates.
const MaxElapsed = 999

// Outcome is the terminal state of a session.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns "in progress", "won" or "lost".
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Terminal reports whether no further moves are accepted.
func (o Outcome) Terminal() bool { return o != InProgress }

// Change is one tile that needs to be redrawn.
type Change struct {
	X, Y   int
	Visual Visual
}

// RevealResult describes the effect of a reveal or chord action.
type RevealResult struct {
	Changed []Change
	Outcome Outcome
}

// FlagResult describes the effect of a flag toggle.
type FlagResult struct {
	Changed        bool
	FlagsRemaining int
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes mine placement deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// Session is one play-through on a single board.
// A Session is not safe for concurrent use; the caller serializes player
// actions and clock ticks.
type Session struct {
	difficulty     Difficulty
	board          *Board
	rng            *rand.Rand
	flagsRemaining int
	elapsed        int
	outcome        Outcome
}

// NewSession starts a fresh game. Mines are placed on the first reveal.
func NewSession(d Difficulty, opts ...Option) *Session {
	s := &Session{
		difficulty:     d,
		board:          NewBoard(d),
		flagsRemaining: d.mines,
		outcome:        InProgress,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return s
}

// Difficulty returns the configuration the session was created with.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Board exposes the board for read-only inspection.
func (s *Session) Board() *Board { return s.board }

// Outcome returns the current state.
func (s *Session) Outcome() Outcome { return s.outcome }

// Started reports whether the first reveal has happened.
func (s *Session) Started() bool { return s.board.placed }

// FlagsRemaining returns the unused flag budget.
func (s *Session) FlagsRemaining() int { return s.flagsRemaining }

// Elapsed returns the clock in seconds.
func (s *Session) Elapsed() int { return s.elapsed }

// RevealedCount returns how many safe cells are open.
func (s *Session) RevealedCount() int { return s.board.CountRevealed() }

// Reveal opens (x, y). The first reveal places the mines so that (x, y)
// and its neighbors are safe. Zero cells flood outward. Revealing a mine
// loses the game; opening the last safe cell wins it. Either way the board
// is fully exposed. Ignored once the game is over.
func (s *Session) Reveal(x, y int) RevealResult {
	c := s.board.at(x, y)
	if s.outcome.Terminal() {
		return RevealResult{Outcome: s.outcome}
	}
	if c.revealed || c.flagged {
		return RevealResult{Outcome: s.outcome}
	}

	if !s.board.placed {
		s.board.PlaceMines(x, y, s.rng)
	}

	hit, changed := s.board.RevealCell(x, y)
	if !changed {
		return RevealResult{Outcome: s.outcome}
	}
	opened := []Point{{x, y}}
	if hit {
		return s.finish(Lost, opened)
	}
	if c.adjacent == 0 {
		opened = append(opened, s.board.FloodReveal(x, y)...)
	}
	return s.settle(opened)
}

// ToggleFlag flags or unflags a hidden cell. New flags are refused when the
// budget is exhausted; revealed cells cannot be flagged.
func (s *Session) ToggleFlag(x, y int) FlagResult {
	s.board.at(x, y)
	if s.outcome.Terminal() {
		return FlagResult{FlagsRemaining: s.flagsRemaining}
	}

	if !s.board.ToggleFlag(x, y, s.flagsRemaining > 0) {
		return FlagResult{FlagsRemaining: s.flagsRemaining}
	}
	if s.board.at(x, y).flagged {
		s.flagsRemaining--
	} else {
		s.flagsRemaining++
	}
	s.flagsRemaining = max(0, min(s.flagsRemaining, s.difficulty.mines))
	return FlagResult{Changed: true, FlagsRemaining: s.flagsRemaining}
}

// ChordReveal opens the unflagged neighbors of a satisfied numbered cell.
// Opened zero cells flood like a normal reveal. A flag in the wrong place
// can detonate a mine, which loses the game even if the same move would
// have cleared the board.
func (s *Session) ChordReveal(x, y int) RevealResult {
	s.board.at(x, y)
	if s.outcome.Terminal() || !s.board.placed {
		return RevealResult{Outcome: s.outcome}
	}

	opened, detonated := s.board.ChordReveal(x, y)
	if detonated {
		return s.finish(Lost, opened)
	}
	for _, p := range opened {
		if s.board.at(p.X, p.Y).adjacent == 0 {
			opened = append(opened, s.board.FloodReveal(p.X, p.Y)...)
		}
	}
	return s.settle(opened)
}

// Tick advances the clock by one second, saturating at MaxElapsed.
// It does nothing once the game is over.
func (s *Session) Tick() int {
	if !s.outcome.Terminal() && s.elapsed < MaxElapsed {
		s.elapsed++
	}
	return s.elapsed
}

func (s *Session) settle(opened []Point) RevealResult {
	if s.board.IsFullyCleared() {
		return s.finish(Won, opened)
	}
	return RevealResult{Changed: s.changes(opened), Outcome: s.outcome}
}

func (s *Session) finish(o Outcome, opened []Point) RevealResult {
	s.outcome = o
	opened = append(opened, s.board.RevealAllForGameOver()...)
	return RevealResult{Changed: s.changes(opened), Outcome: o}
}

func (s *Session) changes(pts []Point) []Change {
	if len(pts) == 0 {
		return nil
	}
	return lo.Map(lo.Uniq(pts), func(p Point, _ int) Change {
		return Change{X: p.X, Y: p.Y, Visual: s.board.Visual(p.X, p.Y)}
	})
}

// Snapshot is a value copy of everything a renderer needs.
type Snapshot struct {
	Width          int
	Height         int
	Label          string
	Kind           Kind
	Visuals        []Visual // row-major
	FlagsRemaining int
	Elapsed        int
	Revealed       int
	Started        bool
	Outcome        Outcome
}

// At returns the visual at (x, y).
func (sn Snapshot) At(x, y int) Visual {
	return sn.Visuals[y*sn.Width+x]
}

// Snapshot captures the current visible state.
func (s *Session) Snapshot() Snapshot {
	visuals := make([]Visual, len(s.board.cells))
	for i, c := range s.board.cells {
		visuals[i] = c.Visual()
	}
	return Snapshot{
		Width:          s.board.width,
		Height:         s.board.height,
		Label:          s.difficulty.label,
		Kind:           s.difficulty.kind,
		Visuals:        visuals,
		FlagsRemaining: s.flagsRemaining,
		Elapsed:        s.elapsed,
		Revealed:       s.board.revealed,
		Started:        s.board.placed,
		Outcome:        s.outcome,
	}
}
