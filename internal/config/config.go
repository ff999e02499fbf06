package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/xa-init/internal/logger"
)

// Config holds the settings shared by every xa-init run.
type Config struct {
	// LogLevel is the minimum level of emitted log entries.
	LogLevel string `yaml:"log_level"`
	// ManifestFilename is the manifest name looked up inside the working directory.
	ManifestFilename string `yaml:"manifest_filename"`
	// DevDependencyRange is the version range written to devDependencies
	// when the linter is not listed there yet.
	DevDependencyRange string `yaml:"dev_dependency_range"`
}

const (
	// DefaultConfigFilename is the default filename for xa-init settings.
	DefaultConfigFilename = ".xa-init.yaml"

	// DefaultManifestFilename is the package manifest name.
	DefaultManifestFilename = "package.json"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultDevDependencyRange accepts any published linter version.
	DefaultDevDependencyRange = "*"

	// DefaultFilePermissions is the permission for newly created files.
	DefaultFilePermissions = 0o644
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned for a log level zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
	// errManifestFilename is returned when the manifest name points outside the working directory.
	errManifestFilename = errors.New("manifest filename must be a plain file name")
)

// Default returns settings with every field set to its default.
func Default() *Config {
	return &Config{
		LogLevel:           DefaultLogLevel,
		ManifestFilename:   DefaultManifestFilename,
		DevDependencyRange: DefaultDevDependencyRange,
	}
}

// Load reads settings from path and validates them.
// An empty path means DefaultConfigFilename, which may be absent:
// defaults are returned in that case. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults for empty fields and checks the rest.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	if settings.ManifestFilename == "" {
		settings.ManifestFilename = DefaultManifestFilename
	}

	if filepath.Base(settings.ManifestFilename) != settings.ManifestFilename {
		return fmt.Errorf("%w: %q", errManifestFilename, settings.ManifestFilename)
	}

	if settings.DevDependencyRange == "" {
		settings.DevDependencyRange = DefaultDevDependencyRange
	}

	return validateRange(settings.DevDependencyRange)
}

// validateRange accepts npm dist-tags and anything semver can parse as a constraint.
func validateRange(r string) error {
	if r == "latest" || r == "next" {
		return nil
	}

	if _, err := semver.NewConstraint(r); err != nil {
		return fmt.Errorf("invalid dev dependency range %q: %w", r, err)
	}

	return nil
}
