package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/httpapi"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host games over SSH and the leaderboard over HTTP",
	Long: `Start an SSH server where every connection plays its own game, and
optionally an HTTP API for the shared leaderboard.

Remote sessions are silent. All sessions share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockfall/host_key

HTTP API (when --http is set):
  GET  /health
  GET  /api/scores
  POST /api/scores   {"name": "ADA", "score": 1200}

Examples:
  blockfall serve                        # SSH on :23234
  blockfall serve --ssh :2222            # SSH on port 2222
  blockfall serve --http :8080           # SSH plus the HTTP API
  blockfall serve --ssh "" --http :8080  # HTTP API only

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: set --ssh or --http")
	}

	logger, err := newLogger(os.Stderr, "blockfall")
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	board, closeBoard := openBoard(logger)
	defer closeBoard()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	type result struct {
		name string
		err  error
	}
	results := make(chan result, 2)
	running := 0

	if flagSSHAddr != "" {
		cfg := tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: flagHostKey,
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		}
		server, err := tui.NewSSHServer(cfg, board, settings, logger.WithPrefix("blockfall-ssh"))
		if err != nil {
			return err
		}
		running++
		go func() { results <- result{"ssh", server.ListenAndServe(ctx)} }()
	}

	if flagHTTPAddr != "" {
		api := httpapi.New(board, logger.WithPrefix("blockfall-http"))
		running++
		go func() { results <- result{"http", api.ListenAndServe(ctx, flagHTTPAddr)} }()
	}

	logger.Info("serving, press Ctrl+C to stop", "ssh", flagSSHAddr, "http", flagHTTPAddr)

	// The first server to fail stops the other.
	var firstErr error
	for ; running > 0; running-- {
		r := <-results
		if r.err != nil {
			logger.Error("server stopped", "server", r.name, "err", r.err)
			if firstErr == nil {
				firstErr = r.err
			}
			stop()
		}
	}
	return firstErr
}
