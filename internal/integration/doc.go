// Package integration holds end-to-end tests that run the manifest updater
// against real files in a temporary working directory.
package integration
