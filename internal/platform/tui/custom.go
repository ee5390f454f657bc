package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Custom form fields, in tab order.
const (
	fieldWidth = iota
	fieldHeight
	fieldMines
	fieldCount
)

// CustomModel is the form for a custom board size.
type CustomModel struct {
	inputs    []textinput.Model
	focus     int
	errMsg    string
	width     int
	height    int
	selected  *mines.Difficulty
	goingBack bool
	quitting  bool
}

// NewCustomModel creates the form prefilled with width, height and mines.
func NewCustomModel(width, height, mineCount, screenW, screenH int) CustomModel {
	labels := [fieldCount]string{"Width", "Height", "Mines"}
	values := [fieldCount]int{width, height, mineCount}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-7s ", labels[i]+":")
		ti.CharLimit = 4
		ti.Width = 6
		if values[i] > 0 {
			ti.SetValue(strconv.Itoa(values[i]))
		}
		inputs[i] = ti
	}
	inputs[fieldWidth].Placeholder = fmt.Sprintf("%d-%d", mines.MinCustomWidth, mines.MaxCustomWidth)
	inputs[fieldHeight].Placeholder = fmt.Sprintf("%d-%d", mines.MinCustomHeight, mines.MaxCustomHeight)
	inputs[fieldWidth].Focus()

	return CustomModel{
		inputs: inputs,
		width:  screenW,
		height: screenH,
	}
}

// Init initializes the form.
func (m CustomModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m CustomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.goingBack = true
			return m, tea.Quit
		case "tab", "down":
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus(m.focus - 1)
			return m, cmd
		case "enter":
			if m.focus < fieldCount-1 {
				cmd := m.setFocus(m.focus + 1)
				return m, cmd
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves the cursor to field i, wrapping around.
func (m *CustomModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// submit validates the form and selects the board on success.
func (m CustomModel) submit() (tea.Model, tea.Cmd) {
	d, err := mines.ParseCustom(
		m.inputs[fieldWidth].Value(),
		m.inputs[fieldHeight].Value(),
		m.inputs[fieldMines].Value(),
	)
	if err != nil {
		var verr *mines.ValidationError
		if errors.As(err, &verr) {
			m.errMsg = verr.Error()
		} else {
			m.errMsg = err.Error()
		}
		return m, nil
	}
	m.errMsg = ""
	m.selected = &d
	return m, tea.Quit
}

// View renders the form.
func (m CustomModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render("CUSTOM BOARD"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("at most half the cells may be mines (%d for this size)", m.maxMines())))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("tab: next field  enter: start  esc: back"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box.Render(b.String()))
}

// maxMines is the mine limit for the width and height currently typed,
// or 0 when either is not a number.
func (m CustomModel) maxMines() int {
	w, errW := strconv.Atoi(m.inputs[fieldWidth].Value())
	h, errH := strconv.Atoi(m.inputs[fieldHeight].Value())
	if errW != nil || errH != nil {
		return 0
	}
	return mines.MaxCustomMines(w, h)
}

// Selected returns the validated board, or nil.
func (m CustomModel) Selected() *mines.Difficulty {
	return m.selected
}

// Error returns the message of the last rejected submit.
func (m CustomModel) Error() string {
	return m.errMsg
}

// IsGoingBack returns true if user wants to go back to menu.
func (m CustomModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m CustomModel) IsQuitting() bool {
	return m.quitting
}
