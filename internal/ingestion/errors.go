// Package ingestion loads vehicle master data from CSV files and normalizes
// each row into a types.VehicleProfile.
package ingestion

import "fmt"

// LoadError is returned when a vehicle file cannot be read or parsed.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("load error: %s (%s)", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError reports malformed CSV content. Line is 1-based; 0 means the
// problem is not tied to a line.
type ParseError struct {
	Line    int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", msg)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
