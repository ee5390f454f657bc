// Package mines implements the minesweeper board engine: difficulty presets,
// mine placement, adjacency counts, reveal/flag/chord transitions and
// win/loss bookkeeping. It has no dependency on any UI toolkit; the platform
// layer renders the state it exposes.
package mines

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies which difficulty family a board belongs to.
// High scores are kept per kind.
type Kind int

const (
	KindBeginner Kind = iota
	KindIntermediate
	KindExpert
	KindCustom
)

// String returns the lower-case kind name used for ledger files and the CLI.
func (k Kind) String() string {
	switch k {
	case KindBeginner:
		return "beginner"
	case KindIntermediate:
		return "intermediate"
	case KindExpert:
		return "expert"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Kinds lists every difficulty kind in menu order.
func Kinds() []Kind {
	return []Kind{KindBeginner, KindIntermediate, KindExpert, KindCustom}
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "beginner", "easy":
		return KindBeginner, nil
	case "intermediate", "normal", "medium":
		return KindIntermediate, nil
	case "expert", "hard":
		return KindExpert, nil
	case "custom":
		return KindCustom, nil
	}
	return 0, fmt.Errorf("mines: unknown difficulty %q", name)
}

// Custom board bounds.
const (
	MinCustomWidth  = 7
	MaxCustomWidth  = 40
	MinCustomHeight = 7
	MaxCustomHeight = 25
	MinCustomMines  = 1
)

// Difficulty is an immutable board configuration.
type Difficulty struct {
	width  int
	height int
	mines  int
	label  string
	kind   Kind
}

// Preset difficulties.
var (
	Beginner     = Difficulty{width: 8, height: 8, mines: 10, label: "Beginner", kind: KindBeginner}
	Intermediate = Difficulty{width: 16, height: 16, mines: 40, label: "Intermediate", kind: KindIntermediate}
	Expert       = Difficulty{width: 32, height: 16, mines: 99, label: "Expert", kind: KindExpert}
)

// Presets returns the fixed difficulties in menu order.
func Presets() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Expert}
}

// Preset returns the fixed difficulty for a kind. Custom has no preset.
func Preset(k Kind) (Difficulty, bool) {
	switch k {
	case KindBeginner:
		return Beginner, true
	case KindIntermediate:
		return Intermediate, true
	case KindExpert:
		return Expert, true
	}
	return Difficulty{}, false
}

// Width returns the number of columns.
func (d Difficulty) Width() int { return d.width }

// Height returns the number of rows.
func (d Difficulty) Height() int { return d.height }

// MineCount returns the number of mines placed on the board.
func (d Difficulty) MineCount() int { return d.mines }

// Label returns the display name ("Beginner", "16x9: 20", ...).
func (d Difficulty) Label() string { return d.label }

// Kind returns the difficulty family.
func (d Difficulty) Kind() Kind { return d.kind }

// Cells returns width*height.
func (d Difficulty) Cells() int { return d.width * d.height }

// SafeCells returns the number of cells that must be revealed to win.
func (d Difficulty) SafeCells() int { return d.Cells() - d.mines }

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", d.label, d.width, d.height, d.mines)
}

// MaxCustomMines returns the largest mine count allowed on a custom board.
func MaxCustomMines(width, height int) int {
	return (width * height) / 2
}

// ValidationError reports a rejected user-supplied value.
// Error returns the labeled reason shown to the player.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

// NewCustom builds a custom difficulty after checking the custom bounds.
func NewCustom(width, height, mines int) (Difficulty, error) {
	if err := inRange("Width", width, MinCustomWidth, MaxCustomWidth); err != nil {
		return Difficulty{}, err
	}
	if err := inRange("Height", height, MinCustomHeight, MaxCustomHeight); err != nil {
		return Difficulty{}, err
	}
	if err := inRange("Mine", mines, MinCustomMines, MaxCustomMines(width, height)); err != nil {
		return Difficulty{}, err
	}
	return Difficulty{
		width:  width,
		height: height,
		mines:  mines,
		label:  fmt.Sprintf("%dx%d: %d", width, height, mines),
		kind:   KindCustom,
	}, nil
}

// ParseCustom validates raw text fields from a custom-difficulty form.
// Checks run in order: empty, whitespace, numeric, then range.
func ParseCustom(width, height, mines string) (Difficulty, error) {
	fields := []struct {
		name string
		raw  string
	}{
		{"Width", width},
		{"Height", height},
		{"Mine", mines},
	}

	for _, f := range fields {
		if f.raw == "" {
			return Difficulty{}, &ValidationError{Reason: "You didn't enter anything"}
		}
	}
	for _, f := range fields {
		if strings.IndexFunc(f.raw, unicode.IsSpace) >= 0 {
			return Difficulty{}, &ValidationError{Reason: "Cannot contain whitespace"}
		}
	}
	for _, f := range fields {
		if !isNumber(f.raw) {
			return Difficulty{}, &ValidationError{Reason: "Selection must be a number"}
		}
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f.raw)
		if err != nil {
			return Difficulty{}, &ValidationError{Field: f.name, Reason: "must be a whole number"}
		}
		values[i] = v
	}

	return NewCustom(values[0], values[1], values[2])
}

// isNumber accepts an optional sign followed by at least one digit.
func isNumber(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func inRange(field string, v, low, high int) error {
	if v < low || v > high {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be between %d and %d", low, high),
		}
	}
	return nil
}
