// Package schemacheck validates user-entered schema strings against a remote
// validation query before a form is allowed to submit.
package schemacheck

import (
	"context"
	"errors"
)

// Messages surfaced to the form layer. These are the only two texts a caller
// ever sees besides a remote semantic message; everything else collapses.
const (
	MsgSchemaRequired = "Schema is required"
	MsgInvalidSchema  = "Invalid schema"
)

// Checker is the remote schema-validation capability. Acceptance is a nil
// return, a semantic rejection is a *SemanticError, and anything else is a
// transport-level failure.
type Checker interface {
	CheckSchema(ctx context.Context, schema string) error
}

// SemanticError is a rejection produced by the remote validator itself, as
// opposed to a failure reaching it.
type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string {
	return e.Message
}

// Failure is a validation failure with the message the form layer shows.
// The underlying cause, when there is one, is preserved for logs but never
// surfaced: raw transport errors are not for end users.
type Failure struct {
	Message string
	cause   error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.cause }

// Validator is the form-field predicate.
type Validator struct {
	checker Checker
}

// NewValidator creates a validator over the given remote checker.
func NewValidator(checker Checker) *Validator {
	return &Validator{checker: checker}
}

// Validate checks one schema string. Empty input fails immediately without a
// remote call. A remote semantic rejection surfaces its own message; every
// other failure — transport errors, and semantic errors whose message cannot
// be extracted — collapses to the generic "Invalid schema". Each invocation
// is independent: no retries, no debouncing.
func (v *Validator) Validate(ctx context.Context, value string) error {
	if value == "" {
		RecordValidation("empty")
		return &Failure{Message: MsgSchemaRequired}
	}

	err := v.checker.CheckSchema(ctx, value)
	if err == nil {
		RecordValidation("ok")
		return nil
	}

	var semantic *SemanticError
	if errors.As(err, &semantic) && semantic.Message != "" {
		RecordValidation("rejected")
		return &Failure{Message: semantic.Message, cause: err}
	}

	RecordValidation("error")
	return &Failure{Message: MsgInvalidSchema, cause: err}
}
