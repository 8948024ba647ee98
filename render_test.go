package recordkit_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit"
)

func TestRecord_String(t *testing.T) {
	t.Run("renders the exact labeled block format", func(t *testing.T) {
		person := personSchema(t)
		james := person.MustNew(map[string]any{
			"name":   "JAMES",
			"age":    34,
			"income": 24000.0,
		})

		expected := "Person(\n" +
			"  # The name\n" +
			"  name=\"JAMES\"\n" +
			"  # The person's age\n" +
			"  age=34\n" +
			"  # The person's income\n" +
			"  income=24000.0\n" +
			")"
		assert.Equal(t, expected, james.String())
	})

	t.Run("renders inherited fields first", func(t *testing.T) {
		dog := dogSchema(t)
		mike := dog.MustNew(map[string]any{
			"name":    "mike",
			"habitat": "land",
			"weight":  50.0,
			"bark":    "ARF",
		})

		expected := "Dog(\n" +
			"  # The name\n" +
			"  name=\"mike\"\n" +
			"  # The habitat\n" +
			"  habitat=\"land\"\n" +
			"  # The animals weight (kg)\n" +
			"  weight=50.0\n" +
			"  # Sound of bark\n" +
			"  bark=\"ARF\"\n" +
			")"
		assert.Equal(t, expected, mike.String())
	})

	t.Run("is deterministic across calls", func(t *testing.T) {
		person := personSchema(t)
		james := person.MustNew(map[string]any{
			"name":   "JAMES",
			"age":    34,
			"income": 24000.0,
		})

		first := james.String()
		for range 5 {
			assert.Equal(t, first, james.String())
		}
	})

	t.Run("keeps float-typed values visibly floats", func(t *testing.T) {
		measurement := recordkit.Define("Measurement").
			Field(recordkit.F[float64]("value", "The measured value")).
			MustBuild()

		for value, want := range map[float64]string{
			50.0:    "value=50.0",
			0.5:     "value=0.5",
			-2.25:   "value=-2.25",
			1e21:    "value=1e+21",
			24000.0: "value=24000.0",
		} {
			r := measurement.MustNew(map[string]any{"value": value})
			assert.Contains(t, r.String(), want)
		}
	})

	t.Run("quotes strings as Go literals", func(t *testing.T) {
		note := recordkit.Define("Note").
			Field(recordkit.F[string]("text", "The text")).
			MustBuild()

		r := note.MustNew(map[string]any{"text": "he said \"hi\"\nbye"})
		assert.Contains(t, r.String(), `text="he said \"hi\"\nbye"`)
	})

	t.Run("renders nil and boolean values", func(t *testing.T) {
		flag := recordkit.Define("Flag").
			Field(recordkit.F[any]("payload", "Arbitrary payload")).
			Field(recordkit.F[bool]("enabled", "Whether the flag is on")).
			MustBuild()

		r := flag.MustNew(map[string]any{"payload": nil, "enabled": true})
		out := r.String()
		assert.Contains(t, out, "payload=nil")
		assert.Contains(t, out, "enabled=true")
	})

	t.Run("falls back to default formatting for other types", func(t *testing.T) {
		event := recordkit.Define("Event").
			Field(recordkit.F[time.Duration]("elapsed", "Time since start")).
			MustBuild()

		r := event.MustNew(map[string]any{"elapsed": time.Second})
		assert.Contains(t, r.String(), "elapsed=1s")
	})

	t.Run("zero record renders a placeholder", func(t *testing.T) {
		var r recordkit.Record
		assert.Equal(t, "Record()", r.String())
	})

	t.Run("render order matches field names", func(t *testing.T) {
		dog := dogSchema(t)
		mike := dog.MustNew(map[string]any{
			"name":    "mike",
			"habitat": "land",
			"weight":  50.0,
			"bark":    "ARF",
		})

		out := mike.String()
		require.NotEmpty(t, out)

		last := -1
		for _, name := range dog.FieldNames() {
			idx := strings.Index(out, "  "+name+"=")
			require.GreaterOrEqual(t, idx, 0, "field %q missing from rendering", name)
			assert.Greater(t, idx, last, "field %q out of order", name)
			last = idx
		}
	})
}
