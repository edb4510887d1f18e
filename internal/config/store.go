package config

import (
	"context"
	"fmt"
	"os"

	"duke/internal/storage"
	"duke/internal/storage/sqlite"
)

// CreateStore opens the storage backend selected by the configuration
func CreateStore(ctx context.Context, config *Config) (storage.Store, error) {
	path := config.GetDataPath()
	perm := os.FileMode(config.Storage.DirPermissions)

	switch config.Storage.Backend {
	case BackendFile:
		return storage.NewFileStore(path, perm), nil
	case BackendSQLite:
		store, err := sqlite.New(ctx, path, perm)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown storage backend %q", config.Storage.Backend)}
	}
}
