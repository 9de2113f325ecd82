// Package version exposes build metadata of the bump-version binary.
//
// Version, Commit and BuildTime are injected via Go ldflags. It is unrelated
// to the cache-bust counter handled by the domain/version package.
package version
