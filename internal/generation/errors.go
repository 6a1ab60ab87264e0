// Package generation assembles the nine article body sections for a vehicle,
// isolating provider failures per section.
package generation

import (
	"fmt"
	"strings"

	"github.com/jonathan/review-schedule/internal/types"
)

// ValidationError is returned when a profile lacks the fields generation needs.
type ValidationError struct {
	Fields  []string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Fields, ", "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// SectionError wraps a provider failure for a single section.
type SectionError struct {
	Section  types.SectionName
	Provider string
	Cause    error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s failed in %s provider: %v", e.Section, e.Provider, e.Cause)
}

func (e *SectionError) Unwrap() error {
	return e.Cause
}
