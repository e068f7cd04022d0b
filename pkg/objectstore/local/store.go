package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"invoice-assistant/pkg/objectstore"
)

// Store keeps objects as files under a root directory.
type Store struct {
	fs   afero.Fs
	root string
}

// New returns a Store rooted at dir on the OS filesystem, creating dir if needed.
func New(dir string) (*Store, error) {
	return NewWithFs(afero.NewOsFs(), dir)
}

// NewWithFs is New over an arbitrary afero filesystem.
func NewWithFs(fsys afero.Fs, dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("local store directory is required")
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &Store{fs: fsys, root: dir}, nil
}

func (s *Store) path(key string) (string, error) {
	normalized, err := objectstore.NormalizeKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(normalized)), nil
}

func (s *Store) Put(ctx context.Context, key string, body io.Reader, size int64, opts objectstore.PutOptions) (objectstore.ObjectInfo, error) {
	p, err := s.path(key)
	if err != nil {
		return objectstore.ObjectInfo{}, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return objectstore.ObjectInfo{}, fmt.Errorf("put object %q: %w", key, err)
	}
	f, err := s.fs.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return objectstore.ObjectInfo{}, fmt.Errorf("put object %q: %w", key, err)
	}
	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return objectstore.ObjectInfo{}, fmt.Errorf("put object %q: %w", key, err)
	}
	return objectstore.ObjectInfo{Key: key, Size: n, ContentType: opts.ContentType}, nil
}

func (s *Store) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, objectstore.ErrObjectNotFound
		}
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	return f, nil
}

func (s *Store) Stat(ctx context.Context, key string) (objectstore.ObjectInfo, error) {
	p, err := s.path(key)
	if err != nil {
		return objectstore.ObjectInfo{}, err
	}
	fi, err := s.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return objectstore.ObjectInfo{}, objectstore.ErrObjectNotFound
		}
		return objectstore.ObjectInfo{}, fmt.Errorf("stat object %q: %w", key, err)
	}
	if fi.IsDir() {
		return objectstore.ObjectInfo{}, objectstore.ErrObjectNotFound
	}
	return objectstore.ObjectInfo{
		Key:          key,
		Size:         fi.Size(),
		ContentType:  mime.TypeByExtension(path.Ext(key)),
		LastModified: fi.ModTime(),
	}, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}
