// Package setup wires the xa linter into a package manifest.
//
// Update reads the manifest once, makes the test script run the linter,
// lists the linter as a development dependency and, when asked to, replaces
// the linter config block. The result is written back once.
package setup
