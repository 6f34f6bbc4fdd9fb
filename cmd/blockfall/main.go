// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play           - Play in this terminal (default command)
//	blockfall scores         - Print the leaderboard
//	blockfall serve          - Serve the game over SSH and the leaderboard over HTTP
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible piece sequences
//	--db <path>          - Set database path (default: ~/.blockfall/scores.db)
//	--config <path>      - Load settings from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--mute               - Disable sound
//
// Environment (also read from a .env file): BLOCKFALL_DB, BLOCKFALL_LOG_LEVEL,
// BLOCKFALL_HTTP supply defaults for --db, --log-level and serve --http.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagMute     bool
)

// envDefaults maps flags to the environment variables that supply their
// defaults.
var envDefaults = map[string]string{
	"db":        "BLOCKFALL_DB",
	"log-level": "BLOCKFALL_LOG_LEVEL",
	"http":      "BLOCKFALL_HTTP",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle for your terminal",
	Long: `Blockfall is a falling-block puzzle game. Clear rows to score, level up
to speed the drop, and survive the garbage rows each new level pushes in.

Available commands:
  play     - Play in this terminal
  scores   - Print the leaderboard
  serve    - Host games over SSH and the leaderboard over HTTP

Examples:
  blockfall
  blockfall play --seed 42
  blockfall scores
  blockfall serve --ssh :2222 --http :8080`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadEnv reads an optional .env file and fills unset flags from the
// environment.
func loadEnv(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // .env is optional
	godotenv.Load()
	return applyEnv(cmd, os.Getenv)
}

func applyEnv(cmd *cobra.Command, getenv func(string) string) error {
	for name, env := range envDefaults {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v := getenv(env)
		if v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// newLogger builds a charm logger at the configured level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.blockfall/blockfall.log for appending. The TUI owns
// the terminal, so local play cannot log to stderr.
func openLogFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".blockfall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "blockfall.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadSettings reads the YAML settings and applies --fps.
func loadSettings() (config.Config, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		settings.Display.FPS = flagFPS
	}
	if err := settings.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return settings, nil
}

// openBoard opens the SQLite leaderboard, falling back to an in-memory one
// when the database is unavailable. The returned func releases it.
func openBoard(logger *log.Logger) (storage.Leaderboard, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "path", flagDBPath, "err", err)
		return storage.NewMemory(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "err", err)
		}
	}
}
