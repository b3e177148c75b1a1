package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/MacroPower/versync/pkg/syncerrors"
)

const defaultFileMode fs.FileMode = 0o644

// File is a concurrency-safe file reader and writer. Access to the same path
// is serialized; different paths proceed independently.
var File = &file{}

type file struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func (f *file) lock(path string) func() {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}

	f.mu.Lock()

	if f.locks == nil {
		f.locks = make(map[string]*sync.Mutex)
	}

	l, ok := f.locks[key]
	if !ok {
		l = &sync.Mutex{}
		f.locks[key] = l
	}

	f.mu.Unlock()

	l.Lock()

	return l.Unlock
}

// ReadFile reads the whole file at path. A missing file is reported as
// [syncerrors.ErrFileNotFound]; anything else as [syncerrors.ErrReadFile].
func (f *file) ReadFile(path string) ([]byte, error) {
	defer f.lock(path)()

	data, err := os.ReadFile(path) //nolint:gosec // Paths come from the caller's configuration.
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q: %w", syncerrors.ErrFileNotFound, path, err)
	}

	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", syncerrors.ErrReadFile, path, err)
	}

	return data, nil
}

// WriteFileAtomic replaces the file at path with data. The content is
// written to a temporary file next to the target and renamed into place, so
// the target never holds a partial write. The existing file mode is kept.
func (f *file) WriteFileAtomic(path string, data []byte) error {
	defer f.lock(path)()

	mode := defaultFileMode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmpPath := TempPath(path)

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode) //nolint:gosec // Derived from path.
	if err != nil {
		return fmt.Errorf("%w %q: %w", syncerrors.ErrWriteFile, path, err)
	}

	if err := writeAndClose(tmp, data); err != nil {
		removeQuietly(tmpPath)

		return fmt.Errorf("%w %q: %w", syncerrors.ErrWriteFile, path, err)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		removeQuietly(tmpPath)

		return fmt.Errorf("%w %q: %w", syncerrors.ErrWriteFile, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		removeQuietly(tmpPath)

		return fmt.Errorf("%w %q: %w", syncerrors.ErrWriteFile, path, err)
	}

	return nil
}

// TempPath returns a randomized sibling path for path, used as the staging
// file for an atomic write.
func TempPath(path string) string {
	dir, base := filepath.Split(path)

	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close() //nolint:errcheck // Write error takes precedence.

		return fmt.Errorf("write temp file: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close() //nolint:errcheck // Sync error takes precedence.

		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return nil
}

func removeQuietly(path string) {
	_ = os.Remove(path) //nolint:errcheck // Best-effort cleanup.
}
