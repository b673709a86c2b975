package schemacheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChecker implements Checker for testing.
type mockChecker struct {
	err   error
	calls int
}

func (m *mockChecker) CheckSchema(_ context.Context, _ string) error {
	m.calls++
	return m.err
}

func TestValidate_EmptyInputFailsWithoutRemoteCall(t *testing.T) {
	checker := &mockChecker{}
	v := NewValidator(checker)

	err := v.Validate(context.Background(), "")

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Schema is required", failure.Message)
	assert.Zero(t, checker.calls, "empty input must not reach the remote")
	assert.Nil(t, failure.Unwrap())
}

func TestValidate_RemoteAccepts(t *testing.T) {
	checker := &mockChecker{}
	v := NewValidator(checker)

	err := v.Validate(context.Background(), `{"type":"object"}`)

	require.NoError(t, err)
	assert.Equal(t, 1, checker.calls)
}

func TestValidate_SemanticRejectionSurfacesRemoteMessage(t *testing.T) {
	checker := &mockChecker{err: &SemanticError{Message: "unknown field 'foo'"}}
	v := NewValidator(checker)

	err := v.Validate(context.Background(), "schema")

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "unknown field 'foo'", failure.Message)

	// The original cause stays reachable for logging.
	var semantic *SemanticError
	assert.ErrorAs(t, failure.Unwrap(), &semantic)
}

func TestValidate_TransportErrorCollapsesToGenericMessage(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	checker := &mockChecker{err: cause}
	v := NewValidator(checker)

	err := v.Validate(context.Background(), "schema")

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Invalid schema", failure.Message, "transport detail must never surface")
	assert.ErrorIs(t, failure.Unwrap(), cause)
}

// A semantic error whose message cannot be extracted collapses exactly like a
// transport failure: "Invalid schema", nothing else.
func TestValidate_EmptySemanticMessageCollapses(t *testing.T) {
	checker := &mockChecker{err: &SemanticError{}}
	v := NewValidator(checker)

	err := v.Validate(context.Background(), "schema")

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Invalid schema", failure.Message)
}

func TestValidate_EachInvocationIndependent(t *testing.T) {
	checker := &mockChecker{err: errors.New("boom")}
	v := NewValidator(checker)

	require.Error(t, v.Validate(context.Background(), "schema"))

	checker.err = nil
	require.NoError(t, v.Validate(context.Background(), "schema"))
	assert.Equal(t, 2, checker.calls)
}
