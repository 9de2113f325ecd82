// Package version models the cache-bust counter stamped into asset files.
//
// A Version is always positive. Resolve decides which version a run targets
// from the stored counter and the user's request, and whether the counter
// must be written back.
package version
