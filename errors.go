package fromenv

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors, one per taxonomy member. Every rich error type below
// also implements Is(target error) bool against its matching sentinel, so
// callers can write errors.Is(err, fromenv.ErrAmbiguousVar) without caring
// about the concrete type, the same contract gandaldf-sqlr offers around
// ErrFieldAmbiguous and friends.
var (
	ErrMissingRequiredVar    = errors.New("fromenv: missing required variable")
	ErrAmbiguousVar          = errors.New("fromenv: ambiguous variable binding")
	ErrInvalidVariableFormat = errors.New("fromenv: invalid variable format")
	ErrUnsupportedValueType  = errors.New("fromenv: unsupported value type")
	ErrUnionLoading          = errors.New("fromenv: no union alternative could be loaded")
	ErrSchema                = errors.New("fromenv: invalid schema")
)

// MissingRequiredVarError is returned when a required position's key is not
// present in the input at all.
type MissingRequiredVarError struct {
	Key           string
	QualifiedName string
}

func (e *MissingRequiredVarError) Error() string {
	return fmt.Sprintf("fromenv: variable %q not found (required for %s)", e.Key, e.QualifiedName)
}

func (e *MissingRequiredVarError) Is(target error) bool { return target == ErrMissingRequiredVar }

// AmbiguousVarError is returned when a key has already been bound to one
// schema position and a second, distinct position tries to bind it too.
type AmbiguousVarError struct {
	Key                 string
	FirstQualifiedName  string
	SecondQualifiedName string
}

func (e *AmbiguousVarError) Error() string {
	return fmt.Sprintf("fromenv: variable %q is ambiguous between %s and %s", e.Key, e.FirstQualifiedName, e.SecondQualifiedName)
}

func (e *AmbiguousVarError) Is(target error) bool { return target == ErrAmbiguousVar }

// InvalidVariableFormatError is returned when a present, bindable value
// fails to parse as its scalar/custom/boolean type.
type InvalidVariableFormatError struct {
	Key           string
	QualifiedName string
	Cause         error
}

func (e *InvalidVariableFormatError) Error() string {
	return fmt.Sprintf("fromenv: variable %q (%s) has invalid format: %v", e.Key, e.QualifiedName, e.Cause)
}

func (e *InvalidVariableFormatError) Unwrap() error { return e.Cause }

func (e *InvalidVariableFormatError) Is(target error) bool {
	return target == ErrInvalidVariableFormat
}

// UnsupportedValueTypeError is returned when no handler in the dispatch
// list claims a position's type.
type UnsupportedValueTypeError struct {
	QualifiedName string
	Type          reflect.Type
}

func (e *UnsupportedValueTypeError) Error() string {
	return fmt.Sprintf("fromenv: %s has unsupported type %s", e.QualifiedName, e.Type)
}

func (e *UnsupportedValueTypeError) Is(target error) bool { return target == ErrUnsupportedValueType }

// UnionLoadingError is returned when none of a union's alternatives report
// themselves present.
type UnionLoadingError struct {
	QualifiedName string
	Type          reflect.Type
}

func (e *UnionLoadingError) Error() string {
	return fmt.Sprintf("fromenv: no alternative of %s could be loaded for %s", e.Type, e.QualifiedName)
}

func (e *UnionLoadingError) Is(target error) bool { return target == ErrUnionLoading }

// SchemaError is returned for problems with the schema itself rather than
// the input: a non-record root type, or a malformed default literal.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string { return e.Message }

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
