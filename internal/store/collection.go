package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	shoperrors "github.com/abgdnv/filecommerce/internal/errors"
)

// Collection is a JSON array of T stored as a whole in a single file.
// Every read loads the whole file and every write replaces it. The mutex serializes
// load-mutate-save cycles within the process; other processes writing the same file are not coordinated.
type Collection[T any] struct {
	mu              sync.Mutex
	path            string
	tolerateCorrupt bool
	logger          *slog.Logger
}

// NewCollection creates a collection backed by the file at path.
// With tolerateCorrupt set an unparseable file reads as an empty collection instead of failing.
func NewCollection[T any](path string, tolerateCorrupt bool, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{
		path:            path,
		tolerateCorrupt: tolerateCorrupt,
		logger:          logger.With("component", "collection", "path", path),
	}
}

// Path returns the backing file location.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load returns the current items. A missing file is an empty collection.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.read(ctx)
}

// Mutate loads the items, passes them to fn and persists whatever fn returns.
// Nothing is written when fn fails.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	items, err := c.read(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.write(items)
}

func (c *Collection[T]) read(ctx context.Context) ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", c.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		if c.tolerateCorrupt {
			c.logger.WarnContext(ctx, "Collection file is not valid JSON, treating it as empty", "error", err)
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", shoperrors.ErrCorruptCollection, c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// write replaces the file through a temporary sibling so readers never observe a partial array.
func (c *Collection[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.path, err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.path, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace collection %s: %w", c.path, err)
	}
	return nil
}
