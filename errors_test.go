package recordkit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit"
)

func TestErrorMessages(t *testing.T) {
	t.Run("argument mismatch lists missing and extra fields", func(t *testing.T) {
		err := recordkit.NewArgumentMismatchError("Person", []string{"age", "income"}, nil)
		assert.Equal(t, "record type 'Person': missing fields: age, income", err.Error())

		err = recordkit.NewArgumentMismatchError("Person", nil, []string{"wealth"})
		assert.Equal(t, "record type 'Person': unexpected fields: wealth", err.Error())

		err = recordkit.NewArgumentMismatchError("Person", []string{"income"}, []string{"wealth"})
		assert.Equal(t, "record type 'Person': missing fields: income; unexpected fields: wealth", err.Error())
	})

	t.Run("type mismatch names field and both types", func(t *testing.T) {
		err := recordkit.NewTypeMismatchError("age", "int", "string")
		assert.Equal(t, "field 'age' expects int, got string", err.Error())
	})

	t.Run("precondition names the field", func(t *testing.T) {
		err := recordkit.NewPreconditionError("age")
		assert.Equal(t, "field 'age' failed its precondition", err.Error())
	})

	t.Run("read-only names the field", func(t *testing.T) {
		err := recordkit.NewReadOnlyFieldError("age")
		assert.Equal(t, "field 'age' is read-only", err.Error())
	})

	t.Run("schema declaration names field and type", func(t *testing.T) {
		err := recordkit.NewSchemaDeclarationError("ghost", "Broken", "field has no declared type")
		assert.Equal(t, "record type 'Broken': field 'ghost': field has no declared type", err.Error())

		err = recordkit.NewSchemaDeclarationError("", "Broken", "record type already registered")
		assert.Equal(t, "record type 'Broken': record type already registered", err.Error())
	})

	t.Run("unknown field names field and type", func(t *testing.T) {
		err := recordkit.NewUnknownFieldError("wealth", "Person")
		assert.Equal(t, "record type 'Person' has no field 'wealth'", err.Error())
	})

	t.Run("unknown type names the type", func(t *testing.T) {
		err := recordkit.NewUnknownTypeError("Ghost")
		assert.Equal(t, "record type 'Ghost' is not registered", err.Error())
	})

	t.Run("uninitialized field names the field", func(t *testing.T) {
		err := recordkit.NewUninitializedFieldError("age")
		assert.Equal(t, "field 'age' read before construction completed", err.Error())
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Run("match their own kind only", func(t *testing.T) {
		cases := []struct {
			err   error
			match func(error) bool
		}{
			{recordkit.NewArgumentMismatchError("T", []string{"a"}, nil), recordkit.IsArgumentMismatchError},
			{recordkit.NewTypeMismatchError("f", "int", "string"), recordkit.IsTypeMismatchError},
			{recordkit.NewPreconditionError("f"), recordkit.IsPreconditionError},
			{recordkit.NewReadOnlyFieldError("f"), recordkit.IsReadOnlyFieldError},
			{recordkit.NewSchemaDeclarationError("f", "T", "reason"), recordkit.IsSchemaDeclarationError},
			{recordkit.NewUninitializedFieldError("f"), recordkit.IsUninitializedFieldError},
			{recordkit.NewUnknownFieldError("f", "T"), recordkit.IsUnknownFieldError},
			{recordkit.NewUnknownTypeError("T"), recordkit.IsUnknownTypeError},
		}

		for i, c := range cases {
			assert.True(t, c.match(c.err), "case %d: predicate rejected its own error", i)
			for j, other := range cases {
				if i == j {
					continue
				}
				assert.False(t, other.match(c.err), "case %d matched predicate %d", i, j)
			}
		}
	})

	t.Run("see through wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("constructing person: %w", recordkit.NewPreconditionError("age"))
		assert.True(t, recordkit.IsPreconditionError(err))

		var precondErr *recordkit.PreconditionError
		assert.True(t, errors.As(err, &precondErr))
		assert.Equal(t, "age", precondErr.Field)
	})

	t.Run("reject nil and unrelated errors", func(t *testing.T) {
		assert.False(t, recordkit.IsPreconditionError(nil))
		assert.False(t, recordkit.IsPreconditionError(errors.New("boom")))
		assert.False(t, recordkit.IsTypeMismatchError(nil))
	})
}

func TestErrorClasses(t *testing.T) {
	t.Run("construction failures match ErrValidation", func(t *testing.T) {
		for _, err := range []error{
			recordkit.NewArgumentMismatchError("Person", []string{"age"}, nil),
			recordkit.NewTypeMismatchError("age", "int", "string"),
			recordkit.NewPreconditionError("age"),
		} {
			assert.ErrorIs(t, err, recordkit.ErrValidation)
			assert.NotErrorIs(t, err, recordkit.ErrDeclaration)
		}
	})

	t.Run("declaration failures match ErrDeclaration", func(t *testing.T) {
		err := recordkit.NewSchemaDeclarationError("ghost", "Broken", "field has no declared type")
		assert.ErrorIs(t, err, recordkit.ErrDeclaration)
		assert.NotErrorIs(t, err, recordkit.ErrValidation)
	})

	t.Run("class matching survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("constructing person: %w", recordkit.NewPreconditionError("age"))
		assert.ErrorIs(t, err, recordkit.ErrValidation)
	})

	t.Run("access errors match neither class", func(t *testing.T) {
		assert.NotErrorIs(t, recordkit.NewReadOnlyFieldError("age"), recordkit.ErrValidation)
		assert.NotErrorIs(t, recordkit.NewUnknownFieldError("wealth", "Person"), recordkit.ErrValidation)
		assert.NotErrorIs(t, recordkit.NewUnknownTypeError("Ghost"), recordkit.ErrDeclaration)
	})
}
