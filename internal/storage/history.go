package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// History is the game-facing side of the store. It never fails: without a
// store it does nothing, and store errors are logged.
type History struct {
	store  *Store
	logger *log.Logger
}

// NewHistory wraps store, which may be nil when the database could not be
// opened. A nil logger discards output.
func NewHistory(store *Store, logger *log.Logger) *History {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &History{store: store, logger: logger}
}

// Enabled reports whether results are being stored.
func (h *History) Enabled() bool { return h != nil && h.store != nil }

// Record stores a finished session. Sessions still in progress are ignored.
func (h *History) Record(s *mines.Session) {
	if !h.Enabled() || !s.Outcome().Terminal() {
		return
	}
	id, err := h.store.SaveResult(ResultFromSession(s))
	if err != nil {
		h.logger.Warn("cannot record game", "error", err)
		return
	}
	h.logger.Debug("game recorded", "id", id, "kind", s.Difficulty().Kind(), "outcome", s.Outcome())
}

// Stats returns the statistics for one kind, or nil when unavailable.
func (h *History) Stats(kind mines.Kind) *Stats {
	if !h.Enabled() {
		return nil
	}
	st, err := h.store.Stats(kind.String())
	if err != nil {
		h.logger.Warn("cannot load stats", "kind", kind, "error", err)
		return nil
	}
	return st
}

// Clear deletes the history of one kind.
func (h *History) Clear(kind mines.Kind) {
	if !h.Enabled() {
		return
	}
	if err := h.store.ClearResults(kind.String()); err != nil {
		h.logger.Warn("cannot clear history", "kind", kind, "error", err)
	}
}
