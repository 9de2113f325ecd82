// Package config defines run settings and provides helpers to load and
// validate them from YAML.
//
// The Config type holds the project root, the version file location, the
// asset extensions and the excluded directory names. A missing settings file
// is not an error: every field has a default.
package config
