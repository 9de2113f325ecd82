// Package bumper is the bump-version workflow.
//
// It loads settings, resolves the target version against the version file,
// persists it when asked to, stamps it into the asset tree and prints a
// short report of the rewritten files.
package bumper
