package kv

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"
)

// File is a Store backed by a single JSON document on disk. The whole
// document is loaded once at open and rewritten on every Set.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	logger *zap.Logger
}

// OpenFile loads the store at path, treating a missing or unreadable
// file as empty. A corrupt document is discarded, not surfaced.
func OpenFile(path string, logger *zap.Logger) *File {
	f := &File{
		path:   path,
		values: make(map[string]string),
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read state file, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return f
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		logger.Warn("Discarding corrupt state file",
			zap.String("path", path), zap.Error(err))
		f.values = make(map[string]string)
	}
	return f
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value

	data, err := json.Marshal(f.values)
	if err != nil {
		f.logger.Error("Failed to encode state file", zap.Error(err))
		return
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		f.logger.Error("Failed to write state file",
			zap.String("path", f.path), zap.Error(err))
	}
}
