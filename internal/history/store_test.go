package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	t.Run("should create parent directories for the database file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "history.db")

		store, err := Open(path)

		assert.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("should round-trip a record", func(t *testing.T) {
		store := openTestStore(t)

		err := store.Add(Record{
			UserInput:     "list the files",
			AgentAction:   "use_tool:list_directory",
			ActionDetails: ".",
			ToolOutput:    "dir listing",
			AgentResponse: "dir listing",
			Success:       true,
		})
		assert.NoError(t, err)

		records, err := store.Recent(10)
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "list the files", records[0].UserInput)
		assert.Equal(t, "use_tool:list_directory", records[0].AgentAction)
		assert.True(t, records[0].Success)
		assert.NotZero(t, records[0].ID)
		assert.False(t, records[0].Timestamp.IsZero())
	})

	t.Run("should return newest records first", func(t *testing.T) {
		store := openTestStore(t)
		for _, input := range []string{"first", "second", "third"} {
			assert.NoError(t, store.Add(Record{UserInput: input, AgentAction: "direct_response"}))
		}

		records, err := store.Recent(10)

		assert.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Equal(t, "third", records[0].UserInput)
		assert.Equal(t, "first", records[2].UserInput)
	})

	t.Run("should honor the limit", func(t *testing.T) {
		store := openTestStore(t)
		for _, input := range []string{"a", "b", "c"} {
			assert.NoError(t, store.Add(Record{UserInput: input}))
		}

		records, err := store.Recent(2)

		assert.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("should return no records from an empty store", func(t *testing.T) {
		store := openTestStore(t)

		records, err := store.Recent(10)

		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}
