package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/fx"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/gesture"
)

// gameOverDelay is how long the final board stays up before name entry.
const gameOverDelay = 500 * time.Millisecond

// GameOverMsg is sent once the game-over pause has elapsed.
type GameOverMsg struct {
	Gen   int
	Score int
}

// GameModel runs one Game: it feeds key and mouse intents in, advances the
// tick loop and turns engine events into sound, particles and shake.
type GameModel struct {
	game     *blockfall.Game
	effects  *fx.System
	sound    *audio.Player
	gestures *gesture.Translator
	screen   *core.Screen

	keys     KeyMap
	settings config.Config
	runtime  core.RuntimeConfig
	logger   *log.Logger

	stats    blockfall.Stats
	best     int
	gen      int
	runID    string
	lastTick time.Time
	over     bool
	width    int
	height   int
}

// NewGameModel creates an idle game model. Call start to begin a run.
func NewGameModel(settings config.Config, runtime core.RuntimeConfig, sink audio.Sink, logger *log.Logger) GameModel {
	volume := settings.Audio.Volume
	if !settings.Audio.Enabled {
		sink = audio.Discard{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameModel{
		game: blockfall.New(),
		effects: fx.New(time.Now().UnixNano(), fx.Options{
			Particles: settings.Effects.Particles,
			Shake:     settings.Effects.Shake,
		}),
		sound:    audio.NewPlayer(sink, volume),
		gestures: gesture.NewTranslator(settings.Input.CellPixels),
		screen:   core.NewScreen(blockfall.ScreenW, blockfall.ScreenH),
		keys:     DefaultKeyMap(),
		settings: settings,
		runtime:  runtime,
		logger:   logger,
	}
}

// start begins a new run. A zero runtime seed picks a fresh one per run;
// a fixed seed replays the same piece sequence every time.
func (m *GameModel) start(best int) tea.Cmd {
	cfg := m.runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m.game.Reset(cfg)
	m.effects.Reset()
	m.sound.Flush()
	m.best = best
	m.gen++
	m.over = false
	m.lastTick = time.Time{}
	m.stats = blockfall.Stats{}
	m.runID = uuid.NewString()
	m.logger.Info("game started", "run", m.runID, "seed", cfg.Seed)

	return tea.Batch(m.dispatch(m.game.Events()), tickCmd(m.gen, m.runtime.TickRate))
}

// Update handles key, mouse and tick messages for the running game.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey applies gameplay keys. Navigation keys are the App's concern.
func (m GameModel) handleKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	action := m.keys.Action(msg)
	if !action.IsGameplay() {
		return m, nil
	}
	return m, m.apply(action)
}

// handleMouse bridges left-button drags to the gesture translator.
func (m GameModel) handleMouse(msg tea.MouseMsg) (GameModel, tea.Cmd) {
	p := gesture.Point{
		X: float64(msg.X) * m.settings.Input.ColumnPixels,
		Y: float64(msg.Y) * m.settings.Input.RowPixels,
	}

	var actions []core.Action
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.game.State().Playing {
			return m, nil
		}
		m.gestures.Start(p)
	case tea.MouseActionMotion:
		actions = m.gestures.Move(p)
	case tea.MouseActionRelease:
		actions = m.gestures.End(p)
	}

	var cmds []tea.Cmd
	for _, a := range actions {
		cmds = append(cmds, m.apply(a))
	}
	return m, tea.Batch(cmds...)
}

// apply pushes one intent and drains it at once so feedback lands on the
// same frame as the input.
func (m *GameModel) apply(a core.Action) tea.Cmd {
	m.game.Push(a)
	m.game.Drain()
	return m.dispatch(m.game.Events())
}

func (m GameModel) handleTick(msg TickMsg) (GameModel, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	dt := frameDelta(m.lastTick, msg.At)
	m.lastTick = msg.At

	st := m.game.State()
	if !st.Paused {
		m.sound.Advance(dt)
	}
	if st.Playing {
		m.effects.Advance(dt)
		m.game.Step(dt)
	}

	return m, tea.Batch(m.dispatch(m.game.Events()), tickCmd(m.gen, m.runtime.TickRate))
}

// dispatch routes engine events to the sound player, the effect system and
// the HUD.
func (m *GameModel) dispatch(events []blockfall.Event) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range events {
		switch e.Kind {
		case blockfall.EventMove:
			m.sound.Cue(audio.CueMove)
		case blockfall.EventRotate:
			m.sound.Cue(audio.CueRotate)
		case blockfall.EventDrop:
			m.sound.Cue(audio.CueDrop)
		case blockfall.EventHardDrop:
			m.sound.Cue(audio.CueDrop)
			m.effects.Shake(fx.ShakeSmall)
		case blockfall.EventLock:
			m.sound.Cue(audio.CueLock)
		case blockfall.EventCellCleared:
			m.effects.Explode(e.X, e.Y, core.Color(e.Color))
		case blockfall.EventClear:
			m.sound.Cue(audio.CueClear)
			m.effects.Shake(fx.ShakeSmall)
		case blockfall.EventMajorClear:
			m.sound.Cue(audio.CueMajorClear)
			m.effects.Shake(fx.ShakeBig)
		case blockfall.EventLevelUp:
			m.sound.Cue(audio.CueLevelUp)
			m.effects.Shake(fx.ShakeSmall)
			m.logger.Debug("level up", "level", e.Count)
		case blockfall.EventGarbage:
			m.sound.Cue(audio.CueDrop)
			m.effects.Shake(fx.ShakeBig)
		case blockfall.EventGameOver:
			m.sound.Cue(audio.CueGameOver)
			m.effects.Shake(fx.ShakeBig)
			m.over = true
			gen, score := m.gen, e.Score
			m.logger.Info("game over", "run", m.runID, "score", score, "level", m.stats.Level, "lines", m.stats.Lines)
			cmd = tea.Tick(gameOverDelay, func(time.Time) tea.Msg {
				return GameOverMsg{Gen: gen, Score: score}
			})
		case blockfall.EventStats:
			m.stats = e.Stats
		}
	}
	return cmd
}

// Over reports whether the current run has ended.
func (m GameModel) Over() bool {
	return m.over
}

// Paused reports whether the current run is paused.
func (m GameModel) Paused() bool {
	return m.game.State().Paused
}

// Stats returns the HUD stats last reported by the engine.
func (m GameModel) Stats() blockfall.Stats {
	return m.stats
}

// Gen identifies the current run.
func (m GameModel) Gen() int {
	return m.gen
}

// View renders the game centered in the window, displaced by any active
// shake.
func (m GameModel) View() string {
	m.game.Render(m.screen, m.effects)
	blockfall.DrawHUD(m.screen, m.stats, m.best)

	dx, dy := m.effects.Offset()
	left := max((m.width-blockfall.ScreenW)/2+dx, 0)
	top := max((m.height-blockfall.ScreenH)/2+dy, 0)

	pad := strings.Repeat(" ", left)
	lines := strings.Split(RenderScreen(m.screen), "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Repeat("\n", top) + strings.Join(lines, "\n")
}

// saveScreenshot writes the plain-text board to ~/.blockfall/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen, nil)
	blockfall.DrawHUD(m.screen, m.stats, m.best)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}
