// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// ErrNotFound indicates a reference to an entity ID that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateCategory indicates a category name collision.
	ErrDuplicateCategory = errors.New("category already exists")
	// ErrLastCategory indicates an attempt to remove the only remaining category.
	ErrLastCategory = errors.New("cannot remove the last category")
	// ErrIndexOutOfRange indicates an out-of-range expense index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ValidationError describes malformed or missing required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single input field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CategoryInUseError describes an attempt to remove a category that is still
// referenced by fixed expenses. Owners lists the blocking account and card IDs.
type CategoryInUseError struct {
	Category string
	Owners   []string
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %q is in use by %s", e.Category, strings.Join(e.Owners, ", "))
}

// PersistenceError wraps an I/O failure during save or load.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
