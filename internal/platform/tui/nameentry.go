package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxNameLen    = 12
	nameRequired  = "PLEASE ENTER YOUR NAME"
	nameEntryHint = "enter submit  •  esc skip"
)

var (
	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c0392b"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e67e22"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// NameEntryModel asks for a player name after game over.
type NameEntryModel struct {
	input     textinput.Model
	score     int
	err       string
	submitted bool
	skipped   bool
	width     int
	height    int
}

// NewNameEntryModel creates a focused name prompt for the final score.
func NewNameEntryModel(score, width, height int) NameEntryModel {
	ti := textinput.New()
	ti.Placeholder = "YOUR NAME"
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen + 1
	ti.Prompt = "> "
	ti.Focus()

	return NameEntryModel{
		input:  ti,
		score:  score,
		width:  width,
		height: height,
	}
}

// Update handles typing, submit and skip.
func (m NameEntryModel) Update(msg tea.Msg) (NameEntryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.Name() == "" {
				m.err = nameRequired
				return m, nil
			}
			m.submitted = true
			return m, nil
		case "esc":
			m.skipped = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.input.SetValue(strings.ToUpper(m.input.Value()))
	if m.input.Value() != "" {
		m.err = ""
	}
	return m, cmd
}

// Name returns the trimmed, upper-cased name typed so far.
func (m NameEntryModel) Name() string {
	return strings.ToUpper(strings.TrimSpace(m.input.Value()))
}

// Score returns the score being recorded.
func (m NameEntryModel) Score() int {
	return m.score
}

// Submitted reports whether a non-empty name was confirmed.
func (m NameEntryModel) Submitted() bool {
	return m.submitted
}

// Skipped reports whether the player declined to record the score.
func (m NameEntryModel) Skipped() bool {
	return m.skipped
}

// View renders the prompt.
func (m NameEntryModel) View() string {
	var b strings.Builder
	b.WriteString(gameOverStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("SCORE: %d", m.score))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(nameEntryHint))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(b.String()))
}
