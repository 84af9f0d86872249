package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	shoperrors "github.com/abgdnv/filecommerce/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_Collection_Load(t *testing.T) {
	testCases := []struct {
		name            string
		content         *string
		tolerateCorrupt bool
		expected        []record
		expectError     error
	}{
		{
			name:     "Missing file - empty collection",
			content:  nil,
			expected: []record{},
		},
		{
			name:     "Empty file - empty collection",
			content:  ptr("  \n"),
			expected: []record{},
		},
		{
			name:     "Null document - empty collection",
			content:  ptr("null"),
			expected: []record{},
		},
		{
			name:     "Valid file",
			content:  ptr(`[{"id":"a","count":1},{"id":"b","count":2}]`),
			expected: []record{{ID: "a", Count: 1}, {ID: "b", Count: 2}},
		},
		{
			name:        "Corrupt file - error",
			content:     ptr(`[{"id":`),
			expectError: shoperrors.ErrCorruptCollection,
		},
		{
			name:            "Corrupt file tolerated - empty collection",
			content:         ptr(`not json`),
			tolerateCorrupt: true,
			expected:        []record{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			path := filepath.Join(t.TempDir(), "records.json")
			if tc.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tc.content), 0o644))
			}
			c := NewCollection[record](path, tc.tolerateCorrupt, discardLogger())

			// when
			items, err := c.Load(context.Background())

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, items)
		})
	}
}

func Test_Collection_Mutate(t *testing.T) {
	t.Run("Writes indented array and removes temp file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "records.json")
		c := NewCollection[record](path, false, discardLogger())

		// when
		err := c.Mutate(context.Background(), func(items []record) ([]record, error) {
			return append(items, record{ID: "a", Count: 1}), nil
		})

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[\n  {\n    \"id\": \"a\",\n    \"count\": 1\n  }\n]", string(data))
		_, err = os.Stat(path + ".tmp")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("Failing mutation leaves file untouched", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "records.json")
		original := `[{"id":"a","count":1}]`
		require.NoError(t, os.WriteFile(path, []byte(original), 0o644))
		c := NewCollection[record](path, false, discardLogger())
		errBoom := errors.New("boom")

		// when
		err := c.Mutate(context.Background(), func(items []record) ([]record, error) {
			return nil, errBoom
		})

		// then
		assert.ErrorIs(t, err, errBoom)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, string(data))
	})

	t.Run("Nil result is persisted as empty array", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "records.json")
		c := NewCollection[record](path, false, discardLogger())

		// when
		err := c.Mutate(context.Background(), func(_ []record) ([]record, error) {
			return nil, nil
		})

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("Corrupt file is not overwritten", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "records.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		c := NewCollection[record](path, false, discardLogger())
		called := false

		// when
		err := c.Mutate(context.Background(), func(items []record) ([]record, error) {
			called = true
			return items, nil
		})

		// then
		assert.ErrorIs(t, err, shoperrors.ErrCorruptCollection)
		assert.False(t, called)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		// given
		c := NewCollection[record](filepath.Join(t.TempDir(), "records.json"), false, discardLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		err := c.Mutate(ctx, func(items []record) ([]record, error) {
			return items, nil
		})

		// then
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func Test_Collection_ConcurrentMutate(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "records.json")
	c := NewCollection[record](path, false, discardLogger())
	require.NoError(t, c.Mutate(context.Background(), func(_ []record) ([]record, error) {
		return []record{{ID: "counter"}}, nil
	}))
	const workers = 20

	// when
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Mutate(context.Background(), func(items []record) ([]record, error) {
				items[0].Count++
				return items, nil
			}))
		}()
	}
	wg.Wait()

	// then
	items, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Count)
}

func ptr[T any](v T) *T {
	return &v
}
