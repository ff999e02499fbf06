// Package config defines the optional xa-init settings file and provides
// helpers to load, validate and save it in YAML format.
package config
