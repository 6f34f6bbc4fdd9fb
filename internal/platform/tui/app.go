package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Options wires an App to its collaborators.
type Options struct {
	Board    storage.Leaderboard // nil uses a process-local board
	Settings config.Config
	Runtime  core.RuntimeConfig
	Sink     audio.Sink // nil plays nothing
	Logger   *log.Logger
	Width    int
	Height   int
}

type screenID int

const (
	screenMenu screenID = iota
	screenGame
	screenNameEntry
	screenScores
)

func (s screenID) String() string {
	switch s {
	case screenGame:
		return "game"
	case screenNameEntry:
		return "name-entry"
	case screenScores:
		return "scores"
	}
	return "menu"
}

// App is the top-level model for one player: home menu, game, name entry
// after game over, then the leaderboard. Local play and every SSH session
// each run their own App.
type App struct {
	opts   Options
	keys   KeyMap
	screen screenID
	width  int
	height int

	menu   MenuModel
	game   GameModel
	entry  NameEntryModel
	scores ScoreboardModel

	quitting bool
}

// NewApp creates the app on its home menu.
func NewApp(opts Options) App {
	if opts.Board == nil {
		opts.Board = storage.NewMemory()
	}
	if opts.Sink == nil {
		opts.Sink = audio.Discard{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Settings.Display.FPS
	}

	game := NewGameModel(opts.Settings, opts.Runtime, opts.Sink, opts.Logger)
	game.width, game.height = opts.Width, opts.Height

	return App{
		opts:   opts,
		keys:   DefaultKeyMap(),
		width:  opts.Width,
		height: opts.Height,
		menu:   NewMenuModel(opts.Width, opts.Height, storage.Best(opts.Board)),
		game:   game,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen and moves between screens.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = ws.Width, ws.Height
		a.menu, _ = a.menu.Update(ws)
		a.game, _ = a.game.Update(ws)
		a.entry, _ = a.entry.Update(ws)
		a.scores, _ = a.scores.Update(ws)
		return a, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		// q is a letter while typing a name; only ctrl+c quits there.
		if k.String() == "ctrl+c" || (a.screen != screenNameEntry && key.Matches(k, a.keys.Quit)) {
			a.quitting = true
			return a, tea.Quit
		}
	}

	switch a.screen {
	case screenMenu:
		return a.updateMenu(msg)
	case screenGame:
		return a.updateGame(msg)
	case screenNameEntry:
		return a.updateNameEntry(msg)
	case screenScores:
		return a.updateScores(msg)
	}
	return a, nil
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)

	switch a.menu.Selected() {
	case ChoiceStart:
		return a, a.startGame()
	case ChoiceScores:
		a.showScores("", 0)
	case ChoiceQuit:
		a.quitting = true
		return a, tea.Quit
	}
	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GameOverMsg:
		if msg.Gen == a.game.Gen() {
			a.entry = NewNameEntryModel(msg.Score, a.width, a.height)
			a.switchTo(screenNameEntry)
			return a, textinput.Blink
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Restart) && a.game.Over():
			return a, a.startGame()
		case key.Matches(msg, a.keys.Back) && (a.game.Over() || a.game.Paused()):
			a.toMenu()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.game, cmd = a.game.Update(msg)
	return a, cmd
}

func (a App) updateNameEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.entry, cmd = a.entry.Update(msg)

	switch {
	case a.entry.Submitted():
		name, score := a.entry.Name(), a.entry.Score()
		if err := a.opts.Board.Save(name, score); err != nil {
			a.opts.Logger.Warn("could not save score", "name", name, "score", score, "err", err)
		} else {
			a.opts.Logger.Info("score saved", "name", name, "score", score)
		}
		a.showScores(name, score)
		return a, nil
	case a.entry.Skipped():
		a.showScores("", 0)
		return a, nil
	}
	return a, cmd
}

func (a App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.scores, cmd = a.scores.Update(msg)

	switch {
	case a.scores.WantsRestart():
		return a, a.startGame()
	case a.scores.IsGoingBack():
		a.toMenu()
		return a, nil
	}
	return a, cmd
}

func (a *App) startGame() tea.Cmd {
	a.switchTo(screenGame)
	return a.game.start(storage.Best(a.opts.Board))
}

func (a *App) showScores(name string, score int) {
	a.scores = NewScoreboardModel(a.opts.Board, a.width, a.height, name, score)
	a.switchTo(screenScores)
}

func (a *App) toMenu() {
	a.menu = NewMenuModel(a.width, a.height, storage.Best(a.opts.Board))
	a.switchTo(screenMenu)
}

func (a *App) switchTo(s screenID) {
	a.opts.Logger.Debug("screen", "from", a.screen, "to", s)
	a.screen = s
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenNameEntry:
		return a.entry.View()
	case screenScores:
		return a.scores.View()
	}
	return a.menu.View()
}

// Run starts a local Bubble Tea program on the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag gestures
	)

	_, err := p.Run()
	return err
}
