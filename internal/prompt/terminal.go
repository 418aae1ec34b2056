package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")

	questionStyle = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	normalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Terminal prompts with an arrow-key list for choices and an editable line
// for free text.
type Terminal struct {
	in  *os.File
	out *os.File
}

// NewTerminal creates a terminal prompter on the given tty pair.
func NewTerminal(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// Select runs a list selection until the user presses enter.
func (t *Terminal) Select(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}
	idx, err := runSelect(t.in, t.out, newSelectModel(message, options))
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

// Confirm runs a two-item selection with the default answer first.
func (t *Terminal) Confirm(message string, def bool) (bool, error) {
	options := []string{"no", "yes"}
	if def {
		options = []string{"yes", "no"}
	}
	answer, err := t.Select(message, options)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// inputMarker is the plain liner prompt shown under a styled question. liner
// rejects prompts containing control characters, so no styling goes here.
const inputMarker = "› "

// Input reads one line with the default pre-filled for editing.
func (t *Terminal) Input(message, def string) (string, error) {
	fmt.Fprintln(t.out, questionStyle.Render(message))

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	answer, err := line.PromptWithSuggestion(inputMarker, def, -1)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func runSelect(in io.Reader, out io.Writer, m selectModel) (int, error) {
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return 0, fmt.Errorf("running selection: %w", err)
	}
	result := final.(selectModel)
	if result.aborted {
		return 0, ErrAborted
	}
	return result.cursor, nil
}

// selectModel is the bubbletea model behind Select.
type selectModel struct {
	message string
	options []string
	cursor  int
	chosen  bool
	aborted bool
}

func newSelectModel(message string, options []string) selectModel {
	return selectModel{message: message, options: options}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(questionStyle.Render(m.message))
	if m.chosen {
		b.WriteString(" " + selectedStyle.Render(m.options[m.cursor]) + "\n")
		return b.String()
	}
	b.WriteString("\n")

	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + opt))
		} else {
			b.WriteString(normalStyle.Render("  " + opt))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("↑/↓ navigate  ⏎ select  esc quit"))
	b.WriteString("\n")
	return b.String()
}
