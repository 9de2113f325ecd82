package assetsync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	domain "github.com/oshokin/bump-version/internal/domain/version"
	"github.com/oshokin/bump-version/internal/logger"
)

// markerPattern matches a cache-bust marker with its digit run.
var markerPattern = regexp.MustCompile(`\?v=[0-9]+`)

// ReasonNotUTF8 is recorded for files that cannot be decoded as UTF-8 text.
const ReasonNotUTF8 = "not valid UTF-8"

// Skipped describes an eligible file that was left alone because it could not be processed.
type Skipped struct {
	// Path is relative to the root, with forward slashes.
	Path string
	// Reason is a short human-readable cause.
	Reason string
}

// Result reports what one run did.
type Result struct {
	// Changed lists rewritten files in traversal order, relative to the root with forward slashes.
	Changed []string
	// Skipped lists eligible files that could not be read or decoded.
	Skipped []Skipped
}

// Sync rewrites every cache-bust marker under root to v.
// The version is not validated here.
// Unreadable or undecodable files are skipped. Write failures do not stop the
// walk: they are combined and returned with the partial result.
func Sync(ctx context.Context, root string, v domain.Version, opts ...Option) (*Result, error) {
	var (
		cfg         = newSettings(opts)
		replacement = []byte("?v=" + v.String())
		result      = new(Result)
		writeErrs   error
	)

	ctx = logger.WithKV(ctx, "version", v.String())

	// WalkDir does not follow a symlinked root.
	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil && path == root {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if err != nil {
			logger.WarnKV(ctx, "Cannot access path, skipping", "path", filepath.ToSlash(rel), "error", err)

			return nil
		}

		if rel == "." {
			return nil
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if cfg.isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !cfg.eligible(rel) {
			return nil
		}

		info, ok := regularFile(path, d)
		if !ok {
			return nil
		}

		changed, reason, err := rewrite(path, info.Mode().Perm(), replacement)

		switch {
		case err != nil:
			logger.ErrorKV(ctx, "Failed to rewrite file", "path", rel, "error", err)
			writeErrs = multierr.Append(writeErrs, fmt.Errorf("write %s: %w", rel, err))
		case reason != "":
			logger.WarnKV(ctx, "Skipped file", "path", rel, "reason", reason)
			result.Skipped = append(result.Skipped, Skipped{Path: rel, Reason: reason})
		case changed:
			logger.DebugKV(ctx, "Updated file", "path", rel)
			result.Changed = append(result.Changed, rel)
		}

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	return result, writeErrs
}

// isExcludedDir reports whether a directory name is pruned from the walk.
func (s *settings) isExcludedDir(name string) bool {
	_, ok := s.excludeDirs[name]

	return ok
}

// eligible reports whether a relative path has an allowed extension and no excluded component.
func (s *settings) eligible(rel string) bool {
	if _, ok := s.extensions[filepath.Ext(rel)]; !ok {
		return false
	}

	for _, part := range strings.Split(rel, "/") {
		if s.isExcludedDir(part) {
			return false
		}
	}

	return true
}

// regularFile resolves the entry's file info, following symlinks to files.
func regularFile(path string, d fs.DirEntry) (fs.FileInfo, bool) {
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil, false
		}

		return info, true
	}

	if !d.Type().IsRegular() {
		return nil, false
	}

	info, err := d.Info()
	if err != nil {
		return nil, false
	}

	return info, true
}

// rewrite replaces the markers of one file.
// A non-empty reason means the file was skipped. The error is set only when writing failed.
func rewrite(path string, perm fs.FileMode, replacement []byte) (bool, string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return false, readReason(err), nil
	}

	if _, _, err = transform.Bytes(encoding.UTF8Validator, contents); err != nil {
		return false, ReasonNotUTF8, nil
	}

	if !markerPattern.Match(contents) {
		return false, "", nil
	}

	updated := markerPattern.ReplaceAllLiteral(contents, replacement)
	if bytes.Equal(updated, contents) {
		return false, "", nil
	}

	if err = os.WriteFile(path, updated, perm); err != nil {
		return false, "", err
	}

	return true, "", nil
}

// readReason shortens a read error to its cause.
func readReason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return "read failed: " + pathErr.Err.Error()
	}

	return "read failed: " + err.Error()
}
