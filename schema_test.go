package recordkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("builds fields in declaration order", func(t *testing.T) {
		t.Parallel()

		person, err := recordkit.Define("Person").
			Field(recordkit.F[string]("name", "The name")).
			Field(recordkit.F[int]("age", "The person's age")).
			Field(recordkit.F[float64]("income", "The person's income")).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "Person", person.Name())
		assert.Nil(t, person.Base())
		assert.Equal(t, []string{"name", "age", "income"}, person.FieldNames())
		assert.Equal(t, 3, person.NumFields())
	})

	t.Run("extends places inherited fields first", func(t *testing.T) {
		t.Parallel()

		dog := dogSchema(t)

		assert.Equal(t, []string{"name", "habitat", "weight", "bark"}, dog.FieldNames())
		assert.Equal(t, "Animal", dog.Base().Name())
		assert.Equal(t, "Named", dog.Base().Base().Name())
	})

	t.Run("inherits fields transitively", func(t *testing.T) {
		t.Parallel()

		dog := dogSchema(t)

		for _, name := range []string{"name", "habitat", "weight", "bark"} {
			assert.True(t, dog.Has(name), "expected field %q", name)
		}
		assert.False(t, dog.Has("income"))
	})

	t.Run("redeclared field wins and keeps the inherited position", func(t *testing.T) {
		t.Parallel()

		base := recordkit.Define("Named").
			Field(recordkit.F[string]("name", "The name")).
			Field(recordkit.F[int]("rank", "The rank")).
			MustBuild()

		derived, err := recordkit.Define("Codename").
			Extends(base).
			Field(recordkit.F[string]("rank", "The codename rank", func(v string) bool { return v != "" })).
			Field(recordkit.F[string]("alias", "The alias")).
			Build()
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "rank", "alias"}, derived.FieldNames())

		rank, ok := derived.Field("rank")
		require.True(t, ok)
		assert.Equal(t, "The codename rank", rank.Label())
		assert.Equal(t, "string", rank.Type().Name())
		assert.True(t, rank.HasPrecondition())

		// The redeclared type and precondition govern construction.
		_, err = derived.New(map[string]any{"name": "x", "rank": 1, "alias": "y"})
		assert.True(t, recordkit.IsTypeMismatchError(err))

		_, err = derived.New(map[string]any{"name": "x", "rank": "", "alias": "y"})
		assert.True(t, recordkit.IsPreconditionError(err))

		_, err = derived.New(map[string]any{"name": "x", "rank": "captain", "alias": "y"})
		assert.NoError(t, err)
	})

	t.Run("building a subtype does not change the base", func(t *testing.T) {
		t.Parallel()

		base := recordkit.Define("Named").
			Field(recordkit.F[string]("name", "The name")).
			MustBuild()

		_, err := recordkit.Define("Renamed").
			Extends(base).
			Field(recordkit.F[int]("name", "The numeric name")).
			Build()
		require.NoError(t, err)

		name, ok := base.Field("name")
		require.True(t, ok)
		assert.Equal(t, "The name", name.Label())
		assert.Equal(t, "string", name.Type().Name())
	})

	t.Run("fails on empty type name", func(t *testing.T) {
		t.Parallel()

		_, err := recordkit.Define("").
			Field(recordkit.F[string]("name", "The name")).
			Build()
		require.Error(t, err)
		assert.True(t, recordkit.IsSchemaDeclarationError(err))
	})

	t.Run("fails on empty field name", func(t *testing.T) {
		t.Parallel()

		_, err := recordkit.Define("Broken").
			Field(recordkit.F[string]("", "The nameless")).
			Build()
		require.Error(t, err)

		var decl *recordkit.SchemaDeclarationError
		require.ErrorAs(t, err, &decl)
		assert.Equal(t, "Broken", decl.TypeName)
	})

	t.Run("fails on duplicate field name in one declaration", func(t *testing.T) {
		t.Parallel()

		_, err := recordkit.Define("Broken").
			Field(recordkit.F[string]("name", "The name")).
			Field(recordkit.F[int]("name", "The name again")).
			Build()
		require.Error(t, err)

		var decl *recordkit.SchemaDeclarationError
		require.ErrorAs(t, err, &decl)
		assert.Equal(t, "name", decl.Field)
		assert.Equal(t, "Broken", decl.TypeName)
	})

	t.Run("fails on a field without a declared type", func(t *testing.T) {
		t.Parallel()

		_, err := recordkit.Define("Broken").
			Field(recordkit.NewField("ghost", "The untyped field", recordkit.Type{})).
			Build()
		require.Error(t, err)

		var decl *recordkit.SchemaDeclarationError
		require.ErrorAs(t, err, &decl)
		assert.Equal(t, "ghost", decl.Field)
		assert.Equal(t, "Broken", decl.TypeName)
		assert.Contains(t, decl.Reason, "no declared type")
	})

	t.Run("fields adds several declarations at once", func(t *testing.T) {
		t.Parallel()

		point, err := recordkit.Define("Point").
			Fields(
				recordkit.F[float64]("x", "The x coordinate"),
				recordkit.F[float64]("y", "The y coordinate"),
			).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, point.FieldNames())
	})
}

func TestBuilder_MustBuild(t *testing.T) {
	t.Parallel()

	t.Run("returns the schema on success", func(t *testing.T) {
		t.Parallel()

		s := recordkit.Define("Ok").
			Field(recordkit.F[string]("name", "The name")).
			MustBuild()
		require.NotNil(t, s)
	})

	t.Run("panics on a declaration error", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			recordkit.Define("").MustBuild()
		})
	})
}

func TestSchema_Accessors(t *testing.T) {
	t.Parallel()

	t.Run("fields returns a copy", func(t *testing.T) {
		t.Parallel()

		person := personSchema(t)

		fields := person.Fields()
		require.Len(t, fields, 3)
		fields[0] = fields[2]

		assert.Equal(t, []string{"name", "age", "income"}, person.FieldNames())
	})

	t.Run("field lookup reports declared metadata", func(t *testing.T) {
		t.Parallel()

		person := personSchema(t)

		age, ok := person.Field("age")
		require.True(t, ok)
		assert.Equal(t, "age", age.Name())
		assert.Equal(t, "The person's age", age.Label())
		assert.Equal(t, "int", age.Type().Name())
		assert.True(t, age.HasPrecondition())

		name, ok := person.Field("name")
		require.True(t, ok)
		assert.False(t, name.HasPrecondition())

		_, ok = person.Field("wealth")
		assert.False(t, ok)
	})
}

func TestFieldSpec_Accessors(t *testing.T) {
	t.Parallel()

	t.Run("reports the declared name, label and type", func(t *testing.T) {
		t.Parallel()

		spec := recordkit.F[int]("age", "The person's age")

		assert.Equal(t, "age", spec.Name())
		assert.Equal(t, "The person's age", spec.Label())
		assert.Equal(t, "int", spec.Type().Name())
	})

	t.Run("dynamic declaration carries the given type", func(t *testing.T) {
		t.Parallel()

		spec := recordkit.NewField("weight", "The weight", recordkit.Float64)

		assert.Equal(t, "float64", spec.Type().Name())
		assert.False(t, spec.Type().IsZero())
	})
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	t.Run("accepts assignable values", func(t *testing.T) {
		t.Parallel()

		assert.True(t, recordkit.String.Accepts("x"))
		assert.True(t, recordkit.Int.Accepts(42))
		assert.True(t, recordkit.Float64.Accepts(3.14))
		assert.True(t, recordkit.Bool.Accepts(true))
	})

	t.Run("rejects values of a different type", func(t *testing.T) {
		t.Parallel()

		assert.False(t, recordkit.Int.Accepts("42"))
		assert.False(t, recordkit.Int.Accepts(int64(42)))
		assert.False(t, recordkit.Float64.Accepts(42))
		assert.False(t, recordkit.String.Accepts([]byte("x")))
	})

	t.Run("only the empty interface accepts nil", func(t *testing.T) {
		t.Parallel()

		assert.True(t, recordkit.Any.Accepts(nil))
		assert.False(t, recordkit.String.Accepts(nil))
		assert.False(t, recordkit.Int.Accepts(nil))
		assert.False(t, recordkit.TypeOf[error]().Accepts(nil))
	})

	t.Run("zero type accepts nothing", func(t *testing.T) {
		t.Parallel()

		var zero recordkit.Type
		assert.True(t, zero.IsZero())
		assert.False(t, zero.Accepts("x"))
		assert.False(t, zero.Accepts(nil))
	})

	t.Run("names follow the runtime type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "string", recordkit.String.Name())
		assert.Equal(t, "time.Time", recordkit.Time.Name())
		assert.Equal(t, "uuid.UUID", recordkit.UUID.Name())
	})
}
