package linter

const (
	// Name is the linter command token and the manifest key of its configuration.
	Name = "xa"

	// DefaultTestScript is the placeholder test script written by `npm init`.
	DefaultTestScript = `echo "Error: no test specified" && exit 1`

	// scriptSeparator chains the linter in front of an existing command.
	scriptSeparator = " && "
)

// TestScript returns the test script that runs the linter given the current
// one. ok reports whether the manifest had a test script at all.
func TestScript(current string, ok bool) string {
	switch {
	case !ok, current == DefaultTestScript:
		return Name
	case current == Name:
		return current
	default:
		return Name + scriptSeparator + current
	}
}

// Config is the linter configuration block stored in the manifest.
// Only fields that were explicitly set are written.
type Config struct {
	// Space enables space indentation instead of tabs.
	Space *bool `json:"space,omitempty"`
	// ESNext enables rules for the latest language features.
	ESNext *bool `json:"esnext,omitempty"`
	// Semicolon requires semicolons when true and forbids them when false.
	Semicolon *bool `json:"semicolon,omitempty"`
	// Envs lists predefined global environments.
	Envs []string `json:"envs,omitempty"`
	// Globals lists additional global variables.
	Globals []string `json:"globals,omitempty"`
	// Ignores lists glob patterns excluded from linting.
	Ignores []string `json:"ignores,omitempty"`
}

// IsEmpty reports whether no field of the config is set.
func (c *Config) IsEmpty() bool {
	return c == nil ||
		c.Space == nil &&
			c.ESNext == nil &&
			c.Semicolon == nil &&
			len(c.Envs) == 0 &&
			len(c.Globals) == 0 &&
			len(c.Ignores) == 0
}
