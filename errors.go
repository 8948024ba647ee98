package recordkit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every construction failure caused by the supplied
	// values: errors.Is(err, ErrValidation) holds for ArgumentMismatchError,
	// TypeMismatchError and PreconditionError.
	ErrValidation = errors.New("record validation failed")

	// ErrDeclaration matches declaration-time failures:
	// errors.Is(err, ErrDeclaration) holds for SchemaDeclarationError.
	ErrDeclaration = errors.New("invalid record type declaration")
)

// ArgumentMismatchError indicates a construction call whose argument-name set
// does not equal the record type's field set. Missing and Extra are sorted
// so the message is stable across calls.
type ArgumentMismatchError struct {
	TypeName string
	Missing  []string
	Extra    []string
}

func (e *ArgumentMismatchError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected fields: "+strings.Join(e.Extra, ", "))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("record type '%s': argument set does not match field set", e.TypeName)
	}
	return fmt.Sprintf("record type '%s': %s", e.TypeName, strings.Join(parts, "; "))
}

func (e *ArgumentMismatchError) Is(target error) bool { return target == ErrValidation }

func NewArgumentMismatchError(typeName string, missing, extra []string) *ArgumentMismatchError {
	return &ArgumentMismatchError{
		TypeName: typeName,
		Missing:  missing,
		Extra:    extra,
	}
}

// TypeMismatchError indicates a supplied value whose runtime type is not
// compatible with the field's declared type.
type TypeMismatchError struct {
	Field    string
	Declared string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field '%s' expects %s, got %s", e.Field, e.Declared, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrValidation }

func NewTypeMismatchError(field, declared, actual string) *TypeMismatchError {
	return &TypeMismatchError{
		Field:    field,
		Declared: declared,
		Actual:   actual,
	}
}

// PreconditionError indicates a supplied value that failed its field's
// precondition predicate.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("field '%s' failed its precondition", e.Field)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrValidation }

func NewPreconditionError(field string) *PreconditionError {
	return &PreconditionError{Field: field}
}

// ReadOnlyFieldError indicates a write attempt on a field of a constructed
// record. Every such attempt fails; records are immutable.
type ReadOnlyFieldError struct {
	Field string
}

func (e *ReadOnlyFieldError) Error() string {
	return fmt.Sprintf("field '%s' is read-only", e.Field)
}

func NewReadOnlyFieldError(field string) *ReadOnlyFieldError {
	return &ReadOnlyFieldError{Field: field}
}

// SchemaDeclarationError indicates an invalid record-type declaration: a
// field without a declared type, a duplicate name, or a registration
// conflict. Field is empty when the problem concerns the type as a whole.
type SchemaDeclarationError struct {
	Field    string
	TypeName string
	Reason   string
}

func (e *SchemaDeclarationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record type '%s': %s", e.TypeName, e.Reason)
	}
	return fmt.Sprintf("record type '%s': field '%s': %s", e.TypeName, e.Field, e.Reason)
}

func (e *SchemaDeclarationError) Is(target error) bool { return target == ErrDeclaration }

func NewSchemaDeclarationError(field, typeName, reason string) *SchemaDeclarationError {
	return &SchemaDeclarationError{
		Field:    field,
		TypeName: typeName,
		Reason:   reason,
	}
}

// UninitializedFieldError indicates a field read on a record that was never
// constructed through its schema. Construction is all-or-nothing, so this is
// unreachable for records returned by New.
type UninitializedFieldError struct {
	Field string
}

func (e *UninitializedFieldError) Error() string {
	return fmt.Sprintf("field '%s' read before construction completed", e.Field)
}

func NewUninitializedFieldError(field string) *UninitializedFieldError {
	return &UninitializedFieldError{Field: field}
}

// UnknownFieldError indicates access to a field name the record type does
// not declare.
type UnknownFieldError struct {
	Field    string
	TypeName string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("record type '%s' has no field '%s'", e.TypeName, e.Field)
}

func NewUnknownFieldError(field, typeName string) *UnknownFieldError {
	return &UnknownFieldError{
		Field:    field,
		TypeName: typeName,
	}
}

// UnknownTypeError indicates a construction request for a record type name
// that is not present in the registry.
type UnknownTypeError struct {
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("record type '%s' is not registered", e.TypeName)
}

func NewUnknownTypeError(typeName string) *UnknownTypeError {
	return &UnknownTypeError{TypeName: typeName}
}

func IsArgumentMismatchError(err error) bool {
	var e *ArgumentMismatchError
	return errors.As(err, &e)
}

func IsTypeMismatchError(err error) bool {
	var e *TypeMismatchError
	return errors.As(err, &e)
}

func IsPreconditionError(err error) bool {
	var e *PreconditionError
	return errors.As(err, &e)
}

func IsReadOnlyFieldError(err error) bool {
	var e *ReadOnlyFieldError
	return errors.As(err, &e)
}

func IsSchemaDeclarationError(err error) bool {
	var e *SchemaDeclarationError
	return errors.As(err, &e)
}

func IsUninitializedFieldError(err error) bool {
	var e *UninitializedFieldError
	return errors.As(err, &e)
}

func IsUnknownFieldError(err error) bool {
	var e *UnknownFieldError
	return errors.As(err, &e)
}

func IsUnknownTypeError(err error) bool {
	var e *UnknownTypeError
	return errors.As(err, &e)
}
