package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alisyos/contract-scanner/pkg/lifecycle"
)

type fileStore struct {
	root   string
	logger *slog.Logger
}

func newFileStore(cfg *Config, logger *slog.Logger) (System, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve blobstore root: %w", err)
	}

	return &fileStore{
		root:   root,
		logger: logger.With("system", "blobstore"),
	}, nil
}

func (f *fileStore) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting blob store", "provider", ProviderFile)

	lc.OnStartup(func() {
		if err := os.MkdirAll(f.root, 0700); err != nil {
			f.logger.Error("blob store initialization failed", "error", err)
			return
		}

		f.logger.Info("blob store ready", "root", f.root)
	})

	return nil
}

func (f *fileStore) Read(ctx context.Context, key string) ([]byte, error) {
	path, err := f.resolve(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read blob %s: %w", key, err)
	}

	return data, nil
}

// Write replaces the blob in full: write to a sibling temp file, then rename,
// so a concurrent Read never observes a partial blob.
func (f *fileStore) Write(ctx context.Context, key string, data []byte) error {
	path, err := f.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write blob %s: %w", key, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp blob: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("commit blob %s: %w", key, err)
	}

	return nil
}

func (f *fileStore) Delete(ctx context.Context, key string) error {
	path, err := f.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}

func (f *fileStore) Exists(ctx context.Context, key string) (bool, error) {
	path, err := f.resolve(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat blob %s: %w", key, err)
	}

	return true, nil
}

func (f *fileStore) resolve(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.root, filepath.FromSlash(key)), nil
}
