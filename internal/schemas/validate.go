// Package schemas provides JSON Schema validation for article documents and
// vehicle profiles.
package schemas

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Embedded schema names accepted by ValidateDocument.
const (
	ArticleDocument = "article_document"
	VehicleProfile  = "vehicle_profile"
)

//go:embed *.schema.json
var schemaFiles embed.FS

var (
	compiledMu sync.Mutex
	compiled   = map[string]*gojsonschema.Schema{}
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Fields returns the failing field paths in order.
func (ve *ValidationError) Fields() []string {
	fields := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

// embeddedSchema compiles an embedded schema once and caches it.
func embeddedSchema(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	file := name + ".schema.json"
	data, err := schemaFiles.ReadFile(file)
	if err != nil {
		return nil, &SchemaLoadError{Path: file, Message: "unknown schema", Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: file, Message: "invalid schema", Cause: err}
	}
	compiled[name] = s
	return s, nil
}

// IsEmbedded reports whether name is one of the embedded schemas.
func IsEmbedded(name string) bool {
	return name == ArticleDocument || name == VehicleProfile
}

// ValidateDocument validates JSON content against one of the embedded
// schemas (ArticleDocument or VehicleProfile).
func ValidateDocument(schemaName string, data []byte) error {
	schema, err := embeddedSchema(schemaName)
	if err != nil {
		return err
	}
	return validateBytes(schema, data)
}

// ValidateValue marshals v and validates it against an embedded schema.
func ValidateValue(schemaName string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return ValidateDocument(schemaName, data)
}

// ValidateFile validates the JSON file at path. schema is the name of an
// embedded schema or the path of a schema file; relative $refs in a schema
// file resolve against its directory.
func ValidateFile(schema, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("JSON file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if IsEmbedded(schema) {
		return ValidateDocument(schema, data)
	}
	compiledSchema, err := fileSchema(schema)
	if err != nil {
		return err
	}
	return validateBytes(compiledSchema, data)
}

func fileSchema(path string) (*gojsonschema.Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "bad path", Cause: err}
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, &SchemaLoadError{Path: abs, Message: "schema file not found", Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs)))
	if err != nil {
		return nil, &SchemaLoadError{Path: abs, Message: "invalid schema", Cause: err}
	}
	return s, nil
}

func validateBytes(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return resultError(result)
}

// resultError converts a failed result into a *ValidationError.
func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		// Required errors are reported on the parent; point at the property.
		if desc.Type() == "required" {
			if prop, ok := desc.Details()["property"].(string); ok {
				if field == "(root)" {
					field = prop
				} else {
					field = field + "." + prop
				}
			}
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
