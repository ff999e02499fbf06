// Package manifest contains the in-memory package manifest.
//
// Object is a JSON object that remembers the order of its keys and keeps
// values it never touched as raw JSON, so rewriting a manifest only changes
// the fields the caller set. Manifest adds typed accessors for the scripts,
// devDependencies and linter sections.
package manifest
