package errors

import (
	stdErrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToErrorDetail_Nil(t *testing.T) {
	assert.Nil(t, ToErrorDetail(nil))
}

func TestToErrorDetail_Generic(t *testing.T) {
	detail := ToErrorDetail(stdErrors.New("boom"))
	require.NotNil(t, detail)
	assert.Equal(t, "boom", detail.Message)
	assert.Equal(t, "internal", detail.Type)
}

func TestToErrorDetail_Wrapped(t *testing.T) {
	inner := &IOError{Path: "/tmp/missing.js", Err: os.ErrNotExist}
	wrapped := fmt.Errorf("loading failed: %w", inner)

	detail := ToErrorDetail(wrapped)
	require.NotNil(t, detail)
	assert.Equal(t, "io", detail.Type)
	assert.Equal(t, "read", detail.Code)
	assert.Contains(t, detail.Message, "/tmp/missing.js")
}

func TestArgumentError(t *testing.T) {
	err := &ArgumentError{Op: "include", Reason: "requires a non-empty filename argument"}

	assert.Contains(t, err.Error(), "include")
	detail := err.ToErrorDetail()
	assert.Equal(t, "argument", detail.Type)
	assert.Equal(t, "include", detail.Code)
}

func TestIOError_Unwrap(t *testing.T) {
	err := &IOError{Path: "a.js", Err: os.ErrPermission}
	assert.True(t, stdErrors.Is(err, os.ErrPermission))
}

func TestScriptError_Unwrap(t *testing.T) {
	thrown := stdErrors.New("TypeError: x is not a function")
	err := &ScriptError{Path: "b.js", Err: thrown}

	assert.True(t, stdErrors.Is(err, thrown))
	assert.Contains(t, err.Error(), "b.js")
	assert.Equal(t, "script", err.ToErrorDetail().Type)
}

func TestSequenceError(t *testing.T) {
	err := &SequenceError{Index: 2}
	assert.Contains(t, err.Error(), "element 2")
	assert.Equal(t, "element_2", err.ToErrorDetail().Code)
}

func TestManifestError(t *testing.T) {
	inner := stdErrors.New("yaml: line 3")
	err := &ManifestError{Stage: "parse", Err: inner}

	assert.True(t, stdErrors.Is(err, inner))
	detail := err.ToErrorDetail()
	assert.Equal(t, "manifest", detail.Type)
	assert.Equal(t, "parse", detail.Code)
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	var seq *SequenceError
	wrapped := fmt.Errorf("compose: %w", &SequenceError{Index: 0})
	require.True(t, stdErrors.As(wrapped, &seq))
	assert.Equal(t, 0, seq.Index)
}
