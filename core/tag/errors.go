package tag

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types for tag processing
var (
	ErrTargetMustBePointer = errors.New("tag: target must be a pointer")
	ErrTargetIsNil         = errors.New("tag: target is nil")
	ErrUnsupportedType     = errors.New("tag: unsupported type")
	ErrMaxDepthExceeded    = errors.New("tag: max recursion depth exceeded")
	ErrInvalidTagValue     = errors.New("tag: invalid tag value")
)

// FieldError wraps an error with field path context
type FieldError struct {
	Path  string
	Kind  reflect.Kind
	Value string
	Err   error
}

// Error implements error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("tag: field %q (type: %s, value: %q): %v",
		e.Path, e.Kind, e.Value, e.Err)
}

// Unwrap returns the wrapped error
func (e *FieldError) Unwrap() error {
	return e.Err
}

// newFieldError creates a new field error with context
func newFieldError(path string, kind reflect.Kind, value string, err error) error {
	return &FieldError{
		Path:  path,
		Kind:  kind,
		Value: value,
		Err:   err,
	}
}
