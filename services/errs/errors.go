// Package errs defines the error taxonomy shared by the submission and query
// services: validation failures, uniqueness conflicts and record store failures.
package errs

import (
	"errors"
	"fmt"
	"strings"

	"branchaudit/utils/dates"
)

// ErrNotFound is returned when a lookup by id or key matches nothing.
var ErrNotFound = errors.New("record not found")

// ValidationError lists every problem found in a submission before any I/O.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Validation collects messages and returns nil when there are none.
type Validation struct {
	messages []string
}

// Add records a problem.
func (v *Validation) Add(format string, args ...any) {
	v.messages = append(v.messages, fmt.Sprintf(format, args...))
}

// Require records "<field> is required" when value is blank.
func (v *Validation) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add("%s is required", field)
	}
}

// Date records a problem when value is not a calendar date.
func (v *Validation) Date(field, value string) {
	if !dates.Valid(value) {
		v.Add("%s is missing or invalid", field)
	}
}

// Range checks optional bounds; blank bounds are open.
func (v *Validation) Range(from, to string) {
	lo, hasLo := dates.Parse(from)
	hi, hasHi := dates.Parse(to)
	if strings.TrimSpace(from) != "" && !hasLo {
		v.Add("from date is invalid")
	}
	if strings.TrimSpace(to) != "" && !hasHi {
		v.Add("to date is invalid")
	}
	if hasLo && hasHi && lo.After(hi) {
		v.Add("from date must not be after to date")
	}
}

// Err returns a *ValidationError or nil.
func (v *Validation) Err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: v.messages}
}

// ConflictError means a record already exists for the uniqueness key.
type ConflictError struct {
	Kind string // "unit audit" or "staff evaluation"
	Key  string // branch or employee code/name
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a %s for %s on %s already exists", e.Kind, e.Key, e.Date)
}

// StoreError wraps a record store failure. It is never retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a *StoreError unless it is nil, already one, or ErrNotFound.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) || errors.Is(err, ErrNotFound) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
