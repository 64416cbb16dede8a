package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultline/faultline/internal/store"
)

func TestRunPersistsAnalysis(t *testing.T) {
	dir := writeTreeDir(t, widgetCUE)
	dbPath := filepath.Join(t.TempDir(), "faultline.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir, "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	runID, ok := data["run_id"].(string)
	require.True(t, ok)
	assert.Equal(t, "widget", data["tree"])
	assert.Equal(t, []any{"A*B", "A*C"}, data["minimal"])

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	summary, err := db.GetRun(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, "widget", summary.Name)
	assert.Equal(t, 3, summary.Events)
	assert.Equal(t, 8, summary.Rows)
}

func TestRunCustomName(t *testing.T) {
	dir := writeTreeDir(t, widgetCUE)
	dbPath := filepath.Join(t.TempDir(), "faultline.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir, "--db", dbPath, "--name", "nightly"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "nightly", data["tree"])
}

func TestRunInvalidTreeDoesNotTouchDatabase(t *testing.T) {
	dir := writeTreeDir(t, toplessCUE)
	dbPath := filepath.Join(t.TempDir(), "faultline.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir, "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.NoFileExists(t, dbPath)
}
