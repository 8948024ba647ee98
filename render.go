package recordkit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String renders the record in its stable display form: the type name
// followed by one block per field in table order, each block holding the
// field's label as a comment line and the value as a Go literal.
//
//	Person(
//	  # Name of the person.
//	  name="JAMES"
//	  # Age of the person.
//	  age=34
//	  # Monthly income.
//	  income=24000.0
//	)
//
// The output is deterministic: repeated calls on the same record yield the
// same string.
func (r *Record) String() string {
	if r == nil || r.schema == nil {
		return "Record()"
	}
	var b strings.Builder
	b.WriteString(r.schema.name)
	b.WriteString("(\n")
	for _, f := range r.schema.fields {
		b.WriteString("  # ")
		b.WriteString(f.label)
		b.WriteString("\n  ")
		b.WriteString(f.name)
		b.WriteByte('=')
		if f.slot < len(r.values) {
			b.WriteString(formatValue(r.values[f.slot]))
		} else {
			b.WriteString("<uninitialized>")
		}
		b.WriteByte('\n')
	}
	b.WriteByte(')')
	return b.String()
}

// formatValue renders v as a Go literal where one exists, falling back to
// fmt's default formatting.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int8, int16, int32:
		return fmt.Sprintf("%d", x)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return fmt.Sprintf("%d", x)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatFloat keeps float-typed values visibly floats: shortest 'g' form,
// with a decimal point forced when the form has neither point nor exponent,
// so 24000.0 renders as "24000.0" rather than "24000".
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}
