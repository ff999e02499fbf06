// Package manifest persists package manifests on disk.
//
// FileRepository reads a manifest, checks it against an embedded JSON schema
// and writes it back with two-space indentation and a trailing newline.
package manifest
