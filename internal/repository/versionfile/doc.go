// Package versionfile persists the cache-bust counter.
//
// The FileRepository stores the version as decimal text followed by a newline
// and satisfies the Loader interface the version resolver depends on.
package versionfile
