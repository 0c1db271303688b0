// Package errors provides domain-specific error types for the SDK.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/scripthost-dev/scripthost-sdk/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is implemented by error types that can convert
// themselves to a structured ErrorDetail. New error types only need to
// implement this interface without modifying ToErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to a structured ErrorDetail.
// Recognized custom error types categorize themselves; anything else is
// reported as "internal".
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// ArgumentError represents a rejected call at the host boundary: wrong
// arity or a wrong argument type. It is raised before any file I/O or
// script execution takes place.
type ArgumentError struct {
	Op     string // boundary operation, e.g. "include" or "require"
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return e.Reason
}

// ToErrorDetail implements DetailedError.
func (e *ArgumentError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "argument", Code: e.Op}
}

// IOError represents an unreadable script source.
type IOError struct {
	Err  error
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read script %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *IOError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "io", Code: "read"}
}

// ScriptError represents an exception thrown while a script was
// executing. The engine exception is preserved for unwrapping so
// callers can reach the thrown value.
type ScriptError struct {
	Err  error
	Path string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %q threw: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ScriptError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "script", Code: "throw"}
}

// SequenceError represents a non-string entry inside a composition's
// file list. Entries preceding the offending one have already executed
// and their effects stand.
type SequenceError struct {
	Index int
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("all elements of the file list must be strings (element %d is not)", e.Index)
}

// ToErrorDetail implements DetailedError.
func (e *SequenceError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "sequence", Code: fmt.Sprintf("element_%d", e.Index)}
}

// ManifestError represents a bundle manifest that failed to render,
// parse or validate.
type ManifestError struct {
	Err   error
	Stage string // "render", "parse" or "validate"
}

func (e *ManifestError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("manifest %s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("manifest error: %v", e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ManifestError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "manifest", Code: e.Stage}
}
