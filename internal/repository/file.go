package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// Collection is a whole-file JSON array store: Load reads the entire
// backing file, Save rewrites it. There is no incremental update and no
// partial-write recovery. The mutex serializes in-process
// read-modify-write cycles so two concurrent handlers cannot drop each
// other's writes; writers in other processes are not protected.
type Collection[T any] struct {
	mu   sync.Mutex
	path string
}

// NewCollection creates a collection backed by the file at path. The
// file is not created until the first write.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load returns every record in the backing file. A missing file is an
// empty collection, not an error: the first run starts with no data.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Mutate applies fn to the loaded records under the store lock and
// rewrites the file with whatever fn returns. If fn fails the file is
// left untouched.
func (c *Collection[T]) Mutate(fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	items, err = fn(items)
	if err != nil {
		return err
	}

	return c.save(items)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.path, err)
	}
	return items, nil
}

func (c *Collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	// Pretty-printed, matching the document shape existing deployments
	// already have on disk.
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.path, err)
	}
	return nil
}
