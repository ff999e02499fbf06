package setup

import (
	"context"
	"fmt"

	"github.com/oshokin/xa-init/internal/config"
	"github.com/oshokin/xa-init/internal/domain/linter"
	domain "github.com/oshokin/xa-init/internal/domain/manifest"
	"github.com/oshokin/xa-init/internal/logger"
	repository "github.com/oshokin/xa-init/internal/repository/manifest"
)

// Options contains inputs for the Update entry point.
type Options struct {
	// Dir is the directory holding the manifest. Empty means the current directory.
	Dir string
	// Flags are the parsed command-line options. Nil means no flags.
	Flags *linter.Flags
	// Settings are the loaded settings. Nil means defaults.
	Settings *config.Config
}

// updater applies the linter setup to one manifest.
type updater struct {
	// repo loads and saves the manifest.
	repo repository.Repository
	// flags drive the optional config replacement.
	flags *linter.Flags
	// devDependencyRange is written when the linter is not a dev dependency yet.
	devDependencyRange string
}

// Update applies the linter setup to the manifest in opts.Dir.
// Nothing is written if loading or transforming the manifest fails.
func Update(ctx context.Context, opts *Options) error {
	if opts == nil {
		opts = new(Options)
	}

	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}

	if err := config.Validate(settings); err != nil {
		return err
	}

	repo := repository.NewFileRepository(opts.Dir, settings.ManifestFilename)
	ctx = logger.WithKV(logger.WithName(ctx, "setup"), "manifest", repo.Path())

	u := &updater{
		repo:               repo,
		flags:              opts.Flags,
		devDependencyRange: settings.DevDependencyRange,
	}

	return u.Run(ctx)
}

// Run loads, transforms and saves the manifest.
func (u *updater) Run(ctx context.Context) error {
	m, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}

	if err = u.apply(ctx, m); err != nil {
		return err
	}

	if err = u.repo.Save(ctx, m); err != nil {
		return err
	}

	logger.Info(ctx, "Manifest updated")

	return nil
}

// apply performs every transformation in memory.
func (u *updater) apply(ctx context.Context, m *domain.Manifest) error {
	if err := m.EnsureScripts(); err != nil {
		return fmt.Errorf("prepare scripts: %w", err)
	}

	if err := u.updateTestScript(ctx, m); err != nil {
		return err
	}

	if err := u.ensureDevDependency(ctx, m); err != nil {
		return err
	}

	return u.replaceConfig(ctx, m)
}

func (u *updater) updateTestScript(ctx context.Context, m *domain.Manifest) error {
	current, ok, err := m.TestScript()
	if err != nil {
		return fmt.Errorf("read test script: %w", err)
	}

	script := linter.TestScript(current, ok)
	if ok && script == current {
		logger.DebugKV(ctx, "Test script already runs the linter", "test", current)

		return nil
	}

	logger.DebugKV(ctx, "Rewriting test script", "from", current, "to", script)

	if err = m.SetTestScript(script); err != nil {
		return fmt.Errorf("write test script: %w", err)
	}

	return nil
}

func (u *updater) ensureDevDependency(ctx context.Context, m *domain.Manifest) error {
	version, ok, err := m.DevDependency(linter.Name)
	if err != nil {
		return fmt.Errorf("read dev dependency: %w", err)
	}

	if ok {
		logger.DebugKV(ctx, "Linter already listed in dev dependencies", "version", version)

		return nil
	}

	logger.DebugKV(ctx, "Adding linter to dev dependencies", "version", u.devDependencyRange)

	if err = m.SetDevDependency(linter.Name, u.devDependencyRange); err != nil {
		return fmt.Errorf("write dev dependency: %w", err)
	}

	return nil
}

// replaceConfig overwrites the linter config only when --init was given.
func (u *updater) replaceConfig(ctx context.Context, m *domain.Manifest) error {
	cfg := u.flags.Config()
	if cfg == nil {
		return nil
	}

	logger.DebugKV(ctx, "Replacing linter config", "empty", cfg.IsEmpty())

	if err := m.ReplaceLinterConfig(cfg); err != nil {
		return fmt.Errorf("write linter config: %w", err)
	}

	return nil
}
