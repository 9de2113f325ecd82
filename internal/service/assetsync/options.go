package assetsync

import "github.com/oshokin/bump-version/internal/config"

// settings holds the file selection rules of a run.
type settings struct {
	// extensions is the set of eligible file suffixes.
	extensions map[string]struct{}
	// excludeDirs is the set of directory names pruned from the walk.
	excludeDirs map[string]struct{}
}

// Option configures file selection.
type Option func(*settings)

// WithExtensions replaces the eligible file suffixes, e.g. ".js".
func WithExtensions(exts ...string) Option {
	return func(s *settings) {
		s.extensions = toSet(exts)
	}
}

// WithExcludedDirs replaces the directory names skipped anywhere in the tree.
func WithExcludedDirs(names ...string) Option {
	return func(s *settings) {
		s.excludeDirs = toSet(names)
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		extensions:  toSet(config.DefaultExtensions()),
		excludeDirs: toSet(config.DefaultExcludeDirs()),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
