package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start blockfall in this terminal.

Controls:
  ←/→ h/l a/d   - Move
  ↑ k w x       - Rotate
  ↓ j s         - Soft drop (+1 per row)
  Space         - Hard drop (+2 per row)
  P/Esc         - Pause
  R             - Restart (after game over)
  B             - Back to menu (paused or game over)
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Mouse: drag sideways to move, drag down to soft drop, flick down to hard
drop, click to rotate.

Logs are written to ~/.blockfall/blockfall.log.

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --mute --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "blockfall")
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	board, closeBoard := openBoard(logger)
	defer closeBoard()

	sink, closeSink := openSink(settings, logger)
	defer closeSink()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("starting", "db", flagDBPath, "fps", settings.Display.FPS, "seed", flagSeed)
	return tui.Run(tui.Options{
		Board:    board,
		Settings: settings,
		Runtime: core.RuntimeConfig{
			TickRate: settings.Display.FPS,
			Seed:     flagSeed,
		},
		Sink:   sink,
		Logger: logger,
		Width:  width,
		Height: height,
	})
}

// openSink returns the local speaker, or a silent sink when sound is
// disabled or the audio device cannot be opened.
func openSink(settings config.Config, logger *log.Logger) (audio.Sink, func()) {
	if flagMute || !settings.Audio.Enabled {
		return audio.Discard{}, func() {}
	}
	sp, err := audio.NewSpeaker()
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Discard{}, func() {}
	}
	return sp, sp.Close
}
