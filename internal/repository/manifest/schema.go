package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.schema.json
var schemaBytes []byte

const schemaURL = "package.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	errCompile     error
	printer        = message.NewPrinter(language.English)
)

// ErrInvalid is returned when a manifest does not have the expected shape.
var ErrInvalid = errors.New("invalid manifest")

// Issue is a single schema violation.
type Issue struct {
	// Path is the JSON pointer of the offending value, e.g. "/scripts/test".
	Path string
	// Message is a human-readable description.
	Message string
}

// String formats the issue for error messages.
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}

	return i.Path + ": " + i.Message
}

// ValidationError lists every schema violation of a manifest.
type ValidationError struct {
	Issues []Issue
}

// Error implements error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}

	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalid) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// getSchema compiles the embedded schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			errCompile = fmt.Errorf("unmarshal schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err = c.AddResource(schemaURL, doc); err != nil {
			errCompile = fmt.Errorf("add schema resource: %w", err)
			return
		}

		compiledSchema, errCompile = c.Compile(schemaURL)
		if errCompile != nil {
			errCompile = fmt.Errorf("compile schema: %w", errCompile)
		}
	})

	return compiledSchema, errCompile
}

// validate checks raw manifest JSON against the schema.
// It returns a *ValidationError for schema violations.
func validate(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("prepare manifest for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate manifest: %w", err)
	}

	var issues []Issue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		issues = append(issues, Issue{Message: ve.Error()})
	}

	return &ValidationError{Issues: issues}
}

// collectIssues walks the error tree and keeps the leaves.
func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}

		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	msg := ve.Error()
	if ve.ErrorKind != nil {
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	*issues = append(*issues, Issue{
		Path:    path,
		Message: msg,
	})
}
