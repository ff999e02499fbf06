package manifest

import (
	"fmt"

	"github.com/oshokin/xa-init/internal/domain/linter"
)

const (
	// ScriptsKey is the field holding npm scripts.
	ScriptsKey = "scripts"
	// TestScriptKey is the script run by `npm test`.
	TestScriptKey = "test"
	// DevDependenciesKey is the field holding development dependencies.
	DevDependenciesKey = "devDependencies"
)

// Manifest is a package manifest document.
type Manifest struct {
	Object
}

// New returns an empty manifest.
func New() *Manifest {
	return new(Manifest)
}

// EnsureScripts adds an empty scripts section when the manifest has none.
func (m *Manifest) EnsureScripts() error {
	if m.Has(ScriptsKey) {
		return nil
	}

	return m.Set(ScriptsKey, NewObject())
}

// TestScript returns the test script and whether it exists.
func (m *Manifest) TestScript() (string, bool, error) {
	scripts, err := m.section(ScriptsKey)
	if err != nil {
		return "", false, err
	}

	var script string

	ok, err := scripts.Decode(TestScriptKey, &script)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", ScriptsKey, err)
	}

	return script, ok, nil
}

// SetTestScript stores the test script, keeping the order of other scripts.
func (m *Manifest) SetTestScript(script string) error {
	return m.setInSection(ScriptsKey, TestScriptKey, script)
}

// DevDependency returns the version range of a development dependency.
func (m *Manifest) DevDependency(name string) (string, bool, error) {
	deps, err := m.section(DevDependenciesKey)
	if err != nil {
		return "", false, err
	}

	var version string

	ok, err := deps.Decode(name, &version)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", DevDependenciesKey, err)
	}

	return version, ok, nil
}

// SetDevDependency stores the version range of a development dependency.
func (m *Manifest) SetDevDependency(name, version string) error {
	return m.setInSection(DevDependenciesKey, name, version)
}

// LinterConfig returns the linter config block and whether it exists.
func (m *Manifest) LinterConfig() (*linter.Config, bool, error) {
	cfg := new(linter.Config)

	ok, err := m.Decode(linter.Name, cfg)
	if err != nil || !ok {
		return nil, ok, err
	}

	return cfg, true, nil
}

// ReplaceLinterConfig overwrites the linter config block with cfg.
// An empty config removes the block.
func (m *Manifest) ReplaceLinterConfig(cfg *linter.Config) error {
	if cfg.IsEmpty() {
		m.Delete(linter.Name)

		return nil
	}

	return m.Set(linter.Name, cfg)
}

// section returns a nested object, or an empty one when the field is missing.
func (m *Manifest) section(key string) (*Object, error) {
	obj := NewObject()

	if _, err := m.Decode(key, obj); err != nil {
		return nil, err
	}

	return obj, nil
}

func (m *Manifest) setInSection(section, key string, value any) error {
	obj, err := m.section(section)
	if err != nil {
		return err
	}

	if err = obj.Set(key, value); err != nil {
		return fmt.Errorf("%s: %w", section, err)
	}

	return m.Set(section, obj)
}
