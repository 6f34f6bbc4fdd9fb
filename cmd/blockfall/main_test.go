package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func testCommand() (*cobra.Command, *string, *string) {
	var db, level string
	cmd := &cobra.Command{Use: "t"}
	cmd.Flags().StringVar(&db, "db", "default.db", "")
	cmd.Flags().StringVar(&level, "log-level", "info", "")
	return cmd, &db, &level
}

func TestApplyEnvFillsUnsetFlags(t *testing.T) {
	cmd, db, level := testCommand()
	env := map[string]string{
		"BLOCKFALL_DB":        "/tmp/env.db",
		"BLOCKFALL_LOG_LEVEL": "debug",
	}

	require.NoError(t, applyEnv(cmd, func(k string) string { return env[k] }))
	assert.Equal(t, "/tmp/env.db", *db)
	assert.Equal(t, "debug", *level)
}

func TestApplyEnvKeepsExplicitFlags(t *testing.T) {
	cmd, db, _ := testCommand()
	require.NoError(t, cmd.Flags().Set("db", "flag.db"))

	env := map[string]string{"BLOCKFALL_DB": "/tmp/env.db"}
	require.NoError(t, applyEnv(cmd, func(k string) string { return env[k] }))
	assert.Equal(t, "flag.db", *db)
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	var port int
	cmd := &cobra.Command{Use: "t"}
	cmd.Flags().IntVar(&port, "http", 0, "")

	err := applyEnv(cmd, func(k string) string {
		if k == "BLOCKFALL_HTTP" {
			return "not-a-number"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLOCKFALL_HTTP")
}

func TestNewLoggerLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "warn"
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "test")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	flagLogLevel = "loud"
	_, err = newLogger(&buf, "test")
	assert.Error(t, err)
}

func TestOpenBoardFallsBackToMemory(t *testing.T) {
	old := flagDBPath
	t.Cleanup(func() { flagDBPath = old })

	// A path under a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, writeEmpty(blocker))
	flagDBPath = filepath.Join(blocker, "scores.db")

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "test")
	require.NoError(t, err)

	board, closeBoard := openBoard(logger)
	defer closeBoard()
	assert.IsType(t, &storage.Memory{}, board)
	assert.Contains(t, buf.String(), "could not open scores database")
}

func TestScoresCommand(t *testing.T) {
	old := flagDBPath
	t.Cleanup(func() { flagDBPath = old })
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")

	store, err := storage.Open(flagDBPath)
	require.NoError(t, err)
	require.NoError(t, store.Save("ada", 1200))
	require.NoError(t, store.Close())

	var out bytes.Buffer
	scoresCmd.SetOut(&out)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	require.NoError(t, runScores(scoresCmd, nil))
	assert.Contains(t, out.String(), "ADA")
	assert.Contains(t, out.String(), "1200")
	assert.Contains(t, out.String(), "Best: 1200")
}

func writeEmpty(path string) error {
	return os.WriteFile(path, nil, 0o600)
}
