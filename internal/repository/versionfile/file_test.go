package versionfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/bump-version/internal/domain/version"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.txt"))
	v, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, v)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns the same version.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "tools", "version.txt")
	repo := NewFileRepository(file)

	require.NoError(t, repo.Save(context.Background(), domain.Version(38)))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.Version(38), got)

	contents, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "38\n", string(contents))
}

// TestFileRepository_BadContent rejects non-integer and non-positive values.
func TestFileRepository_BadContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cases := []struct {
		contents string
		want     error
	}{
		{"garbage\n", domain.ErrNotInteger},
		{"0\n", domain.ErrNotPositive},
		{"-4\n", domain.ErrNotPositive},
		{"", domain.ErrNotInteger},
	}
	for i, tc := range cases {
		file := filepath.Join(dir, fmt.Sprintf("version-%d.txt", i))
		require.NoError(t, os.WriteFile(file, []byte(tc.contents), FilePermissions))

		_, err := NewFileRepository(file).Load(context.Background())
		require.ErrorIs(t, err, tc.want, "contents %q", tc.contents)
	}
}
