package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pablo-Gaspar/baka/internal/history"
)

func historyConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "history.db")
	return fmt.Sprintf("history:\n  path: %s\n", path)
}

func TestHistoryCommand(t *testing.T) {
	t.Run("should print recorded interactions newest first", func(t *testing.T) {
		dbDir := t.TempDir()
		useTestHome(t, historyConfig(t, dbDir))

		store, err := history.Open(filepath.Join(dbDir, "history.db"))
		assert.NoError(t, err)
		assert.NoError(t, store.Add(history.Record{
			UserInput: "list the files", AgentAction: "use_tool:list_directory", Success: true,
		}))
		assert.NoError(t, store.Add(history.Record{
			UserInput: "start the vm ghost", AgentAction: "use_tool:start_vm",
		}))
		assert.NoError(t, store.Close())

		output, err := runApp(t, "history")

		assert.NoError(t, err)
		assert.Contains(t, output, "list the files")
		assert.Contains(t, output, "use_tool:start_vm")
		assert.Contains(t, output, "(failed) start the vm ghost")
	})

	t.Run("should say so when nothing is recorded", func(t *testing.T) {
		useTestHome(t, historyConfig(t, t.TempDir()))

		output, err := runApp(t, "history")

		assert.NoError(t, err)
		assert.Contains(t, output, "No interactions recorded")
	})

	t.Run("should honor the limit flag", func(t *testing.T) {
		dbDir := t.TempDir()
		useTestHome(t, historyConfig(t, dbDir))

		store, err := history.Open(filepath.Join(dbDir, "history.db"))
		assert.NoError(t, err)
		for i := 0; i < 5; i++ {
			assert.NoError(t, store.Add(history.Record{
				UserInput: fmt.Sprintf("request %d", i), AgentAction: "direct_response", Success: true,
			}))
		}
		assert.NoError(t, store.Close())

		output, err := runApp(t, "history", "--limit", "2")

		assert.NoError(t, err)
		assert.Contains(t, output, "request 4")
		assert.Contains(t, output, "request 3")
		assert.NotContains(t, output, "request 2")
	})
}
