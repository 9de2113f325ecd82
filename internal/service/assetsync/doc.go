// Package assetsync stamps a version into the cache-bust markers of a tree.
//
// Sync walks a project root, picks the script, markup and stylesheet files
// outside excluded directories, and rewrites every ?v=<digits> marker to the
// target version. Files whose content would not change are left untouched.
package assetsync
