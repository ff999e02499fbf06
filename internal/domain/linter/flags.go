package linter

import (
	"io"

	"github.com/spf13/pflag"
)

// Flags are the command-line options that drive a single run.
type Flags struct {
	// Init gates every config flag: without it the config block is left alone.
	Init bool
	// Space maps to Config.Space.
	Space bool
	// ESNext maps to Config.ESNext.
	ESNext bool
	// NoSemicolon maps to Config.Semicolon = false.
	NoSemicolon bool
	// Envs maps to Config.Envs.
	Envs []string
	// Globals maps to Config.Globals.
	Globals []string
	// Ignores maps to Config.Ignores.
	Ignores []string
}

// BindFlags registers the linter flags on fs and stores their values in f.
func BindFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVar(&f.Init, "init", false, "replace the "+Name+" config in the manifest with the flags below")
	fs.BoolVar(&f.Space, "space", false, "use space indentation")
	fs.BoolVar(&f.ESNext, "esnext", false, "enable latest language features")
	fs.BoolVar(&f.NoSemicolon, "no-semicolon", false, "forbid semicolons")
	// StringArray keeps commas inside values, unlike StringSlice.
	fs.StringArrayVar(&f.Envs, "env", nil, "environment to enable (repeatable)")
	fs.StringArrayVar(&f.Globals, "global", nil, "global variable to allow (repeatable)")
	fs.StringArrayVar(&f.Ignores, "ignore", nil, "glob pattern to ignore (repeatable)")
}

// ParseFlags parses an argument vector into Flags.
// Unknown flags are ignored so the vector may carry options for other tools.
func ParseFlags(args []string) (*Flags, error) {
	f := new(Flags)

	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	BindFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// Config builds the linter config from the flags that were set.
// It returns nil when Init is not set.
func (f *Flags) Config() *Config {
	if f == nil || !f.Init {
		return nil
	}

	cfg := new(Config)

	if f.Space {
		cfg.Space = boolPtr(true)
	}

	if f.ESNext {
		cfg.ESNext = boolPtr(true)
	}

	if f.NoSemicolon {
		cfg.Semicolon = boolPtr(false)
	}

	cfg.Envs = cloneStrings(f.Envs)
	cfg.Globals = cloneStrings(f.Globals)
	cfg.Ignores = cloneStrings(f.Ignores)

	return cfg
}

func boolPtr(v bool) *bool {
	return &v
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return append([]string(nil), s...)
}
