// Package linter describes the xa linter as seen from a package manifest:
// the command token placed in the test script, the typed configuration
// block stored under the same key and the command-line flags that build it.
package linter
