package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the home menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceScores
	ChoiceQuit
)

var menuItems = []struct {
	choice MenuChoice
	title  string
}{
	{ChoiceStart, "Start Game"},
	{ChoiceScores, "High Scores"},
	{ChoiceQuit, "Quit"},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f1c40f"))
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the home screen.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	best     int
	keys     KeyMap
	selected MenuChoice // set when the user picks an entry
}

// NewMenuModel creates a new menu model showing the best score so far.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		width:  width,
		height: height,
		best:   best,
		keys:   DefaultKeyMap(),
	}
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MenuAction(msg) {
		case MenuActionQuit:
			m.selected = ChoiceQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.selected = menuItems[m.cursor].choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// Selected returns the picked entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B L O C K F A L L"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("BEST %05d", m.best), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("↑/↓ navigate  •  enter select  •  q quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
