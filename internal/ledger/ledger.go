// Package ledger keeps the best three times per difficulty in small binary
// files, one per difficulty kind.
package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// MaxEntries is how many times are kept per difficulty.
const MaxEntries = 3

// FileExt is the extension of ledger files.
const FileExt = ".swp"

// Entry is one recorded win.
type Entry struct {
	Name       string
	Difficulty string
	Seconds    int
}

// String renders the entry the way the scoreboard lists it.
func (e Entry) String() string {
	return fmt.Sprintf("%s beat %s in %d seconds.", e.Name, e.Difficulty, e.Seconds)
}

// NameError reports a rejected player name.
type NameError struct {
	Reason string
}

func (e *NameError) Error() string { return e.Reason }

// ValidateName checks a player name: non-empty, no whitespace, letters only.
func ValidateName(name string) error {
	if name == "" {
		return &NameError{Reason: "You didn't enter anything"}
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return &NameError{Reason: "Cannot contain whitespace"}
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return &NameError{Reason: "Name must only contain letters"}
		}
	}
	return nil
}

// Ledger reads and writes the per-difficulty score files in one directory.
// Disk failures are logged and never returned: an unreadable file behaves
// as an empty ledger and a failed write leaves the old file in place.
type Ledger struct {
	dir    string
	logger *log.Logger
}

// New creates a ledger rooted at dir. A nil logger discards output.
func New(dir string, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ledger{dir: dir, logger: logger}
}

// Dir returns the directory holding the score files.
func (l *Ledger) Dir() string { return l.dir }

// Path returns the score file for a difficulty kind.
func (l *Ledger) Path(kind mines.Kind) string {
	return filepath.Join(l.dir, kind.String()+FileExt)
}

// Load returns the stored entries, best first. A missing file is an empty
// ledger.
func (l *Ledger) Load(kind mines.Kind) []Entry {
	path := l.Path(kind)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		l.logger.Warn("cannot read high scores", "path", path, "error", err)
		return nil
	}

	entries, err := Decode(bytes.NewReader(data))
	if err != nil {
		l.logger.Warn("corrupt high score file", "path", path, "error", err, "kept", len(entries))
	}
	return normalize(entries)
}

// Qualifies reports whether a win in seconds would enter the top list.
func (l *Ledger) Qualifies(kind mines.Kind, seconds int) bool {
	entries := l.Load(kind)
	if len(entries) < MaxEntries {
		return true
	}
	return seconds < entries[len(entries)-1].Seconds
}

// Record validates name, inserts the entry, keeps the best MaxEntries and
// writes the file. Only validation problems are returned.
func (l *Ledger) Record(kind mines.Kind, name string, seconds int) ([]Entry, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	entries := append(l.Load(kind), Entry{Name: name, Difficulty: kind.String(), Seconds: seconds})
	entries = normalize(entries)

	if err := l.save(kind, entries); err != nil {
		l.logger.Warn("cannot write high scores", "path", l.Path(kind), "error", err)
	}
	return entries, nil
}

// Clear removes the stored entries for a difficulty.
func (l *Ledger) Clear(kind mines.Kind) {
	path := l.Path(kind)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("cannot clear high scores", "path", path, "error", err)
	}
}

func (l *Ledger) save(kind mines.Kind, entries []Entry) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("ledger: cannot create directory %s: %w", l.dir, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return err
	}

	path := l.Path(kind)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("ledger: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("ledger: cannot replace %s: %w", path, err)
	}
	return nil
}

// normalize sorts ascending by time, earlier entries first on ties, and
// truncates to MaxEntries.
func normalize(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Seconds - b.Seconds
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}
