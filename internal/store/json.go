package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ticklab/ticklist/pkg/types"
)

// TaskFileName is the fixed name of the JSON backing file inside the
// data directory.
const TaskFileName = "tasks.json"

// jsonBackend stores the whole collection as one JSON array in a single
// file.
type jsonBackend struct {
	path string
}

func openJSON(dataDir string) *jsonBackend {
	return &jsonBackend{path: filepath.Join(dataDir, TaskFileName)}
}

func (b *jsonBackend) Location() string { return b.path }

func (b *jsonBackend) Close() error { return nil }

func (b *jsonBackend) Load() ([]types.Task, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, &types.StorageError{Op: "read", Path: b.path, Err: err}
	}
	var tasks []types.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &types.StorageError{Op: "read", Path: b.path, Err: err}
	}
	return tasks, nil
}

// Persist rewrites the task file atomically: write to a temp file in the
// same directory, fsync, then rename over the destination. The data
// directory is created on demand.
func (b *jsonBackend) Persist(tasks []types.Task) error {
	if tasks == nil {
		// Marshal as [] rather than null.
		tasks = []types.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	return nil
}
