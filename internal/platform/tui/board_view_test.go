package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

func TestTileGlyph(t *testing.T) {
	tests := []struct {
		v    mines.Visual
		want rune
	}{
		{mines.VisualHidden, '·'},
		{mines.VisualFlagged, 'F'},
		{0, ' '},
		{1, '1'},
		{8, '8'},
		{mines.VisualCorrectFlag, 'F'},
		{mines.VisualWrongFlag, 'x'},
		{mines.VisualExplodedMine, '*'},
		{mines.VisualExposedMine, '*'},
	}

	for _, tt := range tests {
		if got, _ := tileGlyph(tt.v); got != tt.want {
			t.Errorf("tileGlyph(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}

	if _, c := tileGlyph(3); c != numberColors[3] {
		t.Errorf("digit 3 color = %v, want %v", c, numberColors[3])
	}
	if _, c := tileGlyph(mines.VisualExplodedMine); c == core.ColorBrightWhite {
		t.Error("exploded mine should not look like an exposed mine")
	}
}

func TestFace(t *testing.T) {
	if face(mines.InProgress) != ":)" || face(mines.Won) != "B)" || face(mines.Lost) != "X(" {
		t.Errorf("unexpected faces: %q %q %q", face(mines.InProgress), face(mines.Won), face(mines.Lost))
	}
}

func TestBoardViewLayout(t *testing.T) {
	v := newBoardView(80, 23, 8, 8)

	if v.box != core.NewRect(30, 7, 19, 10) {
		t.Fatalf("box = %+v", v.box)
	}
	if x, y := v.tile(0, 0); x != 32 || y != 8 {
		t.Errorf("tile(0,0) = (%d,%d), want (32,8)", x, y)
	}
	if x, y := v.tile(7, 7); x != 46 || y != 15 {
		t.Errorf("tile(7,7) = (%d,%d), want (46,15)", x, y)
	}

	w, h := minScreenSize(mines.Expert.Width(), mines.Expert.Height())
	if w != 67 || h != 22 {
		t.Errorf("minScreenSize(expert) = %dx%d, want 67x22", w, h)
	}
}

func TestBoardViewDraw(t *testing.T) {
	s := mines.NewSession(mines.Beginner, mines.WithSeed(1))
	s.ToggleFlag(0, 0)

	screen := core.NewScreen(80, 23)
	v := newBoardView(80, 23, 8, 8)
	v.draw(screen, s.Snapshot(), "status line", core.ColorGray)

	if !strings.Contains(screen.Row(0), "M I N E S  ·  Beginner") {
		t.Errorf("title row = %q", screen.Row(0))
	}
	header := screen.Row(v.box.Y - 1)
	if !strings.Contains(header, "009") || !strings.Contains(header, ":)") || !strings.Contains(header, "000") {
		t.Errorf("header row = %q", header)
	}
	if got := screen.Get(v.tile(0, 0)); got != 'F' {
		t.Errorf("flagged tile = %q, want 'F'", got)
	}
	if got := screen.Get(v.tile(1, 0)); got != '·' {
		t.Errorf("hidden tile = %q, want '·'", got)
	}
	if got := screen.Get(v.box.X, v.box.Y); got != '┌' {
		t.Errorf("box corner = %q", got)
	}
	if !strings.Contains(screen.Row(v.box.Bottom()), "status line") {
		t.Errorf("status row = %q", screen.Row(v.box.Bottom()))
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := core.NewScreen(30, 10)
	drawTooSmall(screen, 67, 23)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("missing too small message")
	}
	if !strings.Contains(screen.String(), "need 67x23, have 30x10") {
		t.Errorf("screen = %q", screen.String())
	}
}
