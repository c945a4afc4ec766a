// Package blobstore provides named-blob persistence with file system and
// Azure Blob Storage implementations. Blobs are addressed by key and are
// always read and written whole.
package blobstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alisyos/contract-scanner/pkg/lifecycle"
)

// System manages blob operations and lifecycle coordination.
type System interface {
	// Start registers a startup hook that initializes the backing store.
	Start(lc *lifecycle.Coordinator) error
	// Read returns the full contents of the blob at the given key.
	// Returns ErrNotFound if the blob does not exist.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write replaces the blob at the given key with data.
	Write(ctx context.Context, key string, data []byte) error
	// Delete removes the blob at the given key. Returns ErrNotFound if the blob does not exist.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a blob exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New creates a blob store from the given configuration.
// The provider selects the backing: "file" (default) or "azure".
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Provider {
	case ProviderFile:
		return newFileStore(cfg, logger)
	case ProviderAzure:
		return newAzureStore(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown blobstore provider: %q", cfg.Provider)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return ErrInvalidKey
	}

	return nil
}
