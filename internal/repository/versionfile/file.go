package versionfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/oshokin/bump-version/internal/domain/version"
)

const (
	// DefaultFilename is the version file location relative to the project root.
	DefaultFilename = "tools/version.txt"

	// FilePermissions is the mode used when the version file is created.
	FilePermissions = 0o644

	// dirPermissions is the mode used for missing parent directories.
	dirPermissions = 0o755
)

// Repository defines persistence operations for the version counter.
type Repository interface {
	Load(ctx context.Context) (domain.Version, error)
	Save(ctx context.Context, v domain.Version) error
}

// FileRepository persists the version counter to a text file on disk.
type FileRepository struct {
	// path is the filesystem location of the version file.
	path string
	// mu protects concurrent access to the version file.
	mu sync.Mutex
}

// ErrNotFound is returned when the version file does not exist yet.
var ErrNotFound = errors.New("version file not found")

// NewFileRepository creates a repository that reads/writes the version at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the location of the version file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads and validates the stored version.
func (r *FileRepository) Load(_ context.Context) (domain.Version, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("read version from %s: %w", r.path, ErrNotFound)
		}

		return 0, fmt.Errorf("read version from %s: %w", r.path, err)
	}

	v, err := domain.Parse(string(contents))
	if err != nil {
		return 0, fmt.Errorf("read version from %s: %w", r.path, err)
	}

	return v, nil
}

// Save writes the version followed by a newline, creating parent directories.
func (r *FileRepository) Save(_ context.Context, v domain.Version) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), dirPermissions); err != nil {
		return fmt.Errorf("create version directory: %w", err)
	}

	if err := os.WriteFile(r.path, []byte(v.String()+"\n"), FilePermissions); err != nil {
		return fmt.Errorf("write version file: %w", err)
	}

	return nil
}
