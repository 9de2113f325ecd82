package version

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Version is a positive cache-bust counter.
type Version int

var (
	// ErrNotInteger is returned when the text is not a decimal integer.
	ErrNotInteger = errors.New("version must be an integer")
	// ErrNotPositive is returned for zero or negative versions.
	ErrNotPositive = errors.New("version must be positive")
	// ErrOverflow is returned when a version cannot be incremented further.
	ErrOverflow = errors.New("version is too large to increment")
)

// New validates n and returns it as a Version.
func New(n int) (Version, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%d: %w", n, ErrNotPositive)
	}

	return Version(n), nil
}

// Parse reads a version from decimal text, ignoring surrounding whitespace.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotInteger)
	}

	return New(n)
}

// Next returns the version that follows v.
func (v Version) Next() (Version, error) {
	if v >= math.MaxInt {
		return 0, fmt.Errorf("%d: %w", int(v), ErrOverflow)
	}

	return v + 1, nil
}

// String renders v as plain decimal text.
func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// Loader reads the stored version.
type Loader interface {
	Load(ctx context.Context) (Version, error)
}

// Request describes what the user asked for.
type Request struct {
	// Explicit is the version to set, nil when none was given.
	Explicit *int
	// Increment bumps the stored version by one. It wins over Explicit.
	Increment bool
}

// Decision is the outcome of Resolve.
type Decision struct {
	// Target is the version to stamp into asset files.
	Target Version
	// Persist is true when Target must be written to the version file.
	Persist bool
}

// Resolve picks the target version for a run.
// The stored version is only read when the request needs it.
func Resolve(ctx context.Context, stored Loader, req Request) (Decision, error) {
	var explicit Version

	if req.Explicit != nil {
		v, err := New(*req.Explicit)
		if err != nil {
			return Decision{}, err
		}

		explicit = v
	}

	switch {
	case req.Increment:
		current, err := stored.Load(ctx)
		if err != nil {
			return Decision{}, err
		}

		next, err := current.Next()
		if err != nil {
			return Decision{}, err
		}

		return Decision{Target: next, Persist: true}, nil
	case req.Explicit != nil:
		return Decision{Target: explicit, Persist: true}, nil
	default:
		current, err := stored.Load(ctx)
		if err != nil {
			return Decision{}, err
		}

		return Decision{Target: current}, nil
	}
}
