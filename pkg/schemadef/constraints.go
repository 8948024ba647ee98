package schemadef

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/pkg/precond"
)

// buildConstraints maps a field's constraint block to erased preconditions.
// Keys are validated against the field's declared type; an unknown or
// inapplicable key fails the load. Keys are processed in sorted order so a
// document with several bad constraints reports the same one every time.
func buildConstraints(typeName string, def fieldDef) ([]func(any) bool, error) {
	if len(def.Constraints) == 0 {
		return nil, nil
	}

	var preds []func(any) bool
	for _, key := range slices.Sorted(maps.Keys(def.Constraints)) {
		pred, err := buildConstraint(typeName, def, key, def.Constraints[key])
		if err != nil {
			return nil, err
		}
		if pred != nil {
			preds = append(preds, pred)
		}
	}
	return preds, nil
}

func buildConstraint(typeName string, def fieldDef, key string, raw any) (func(any) bool, error) {
	switch def.Type {
	case "int":
		return numericConstraint[int](typeName, def, key, raw)
	case "int64":
		return numericConstraint[int64](typeName, def, key, raw)
	case "float64":
		return numericConstraint[float64](typeName, def, key, raw)
	case "string":
		return stringConstraint(typeName, def, key, raw)
	case "time":
		return timeConstraint(typeName, def, key, raw)
	case "uuid":
		return uuidConstraint(typeName, def, key, raw)
	default:
		return nil, badConstraint(typeName, def, key, "not applicable to "+def.Type+" fields")
	}
}

func numericConstraint[T int | int64 | float64](typeName string, def fieldDef, key string, raw any) (func(any) bool, error) {
	switch key {
	case "min":
		n, ok := numberAs[T](raw)
		if !ok {
			return nil, badConstraint(typeName, def, key, def.Type+" value required")
		}
		return erase(precond.Min(n)), nil
	case "max":
		n, ok := numberAs[T](raw)
		if !ok {
			return nil, badConstraint(typeName, def, key, def.Type+" value required")
		}
		return erase(precond.Max(n)), nil
	case "positive":
		return flagConstraint(typeName, def, key, raw, precond.Positive[T]())
	case "non_negative":
		return flagConstraint(typeName, def, key, raw, precond.NonNegative[T]())
	default:
		return nil, badConstraint(typeName, def, key, "not applicable to "+def.Type+" fields")
	}
}

func stringConstraint(typeName string, def fieldDef, key string, raw any) (func(any) bool, error) {
	switch key {
	case "min_len":
		n, ok := numberAs[int](raw)
		if !ok || n < 0 {
			return nil, badConstraint(typeName, def, key, "non-negative integer required")
		}
		return erase(precond.MinLen(n)), nil
	case "max_len":
		n, ok := numberAs[int](raw)
		if !ok || n < 0 {
			return nil, badConstraint(typeName, def, key, "non-negative integer required")
		}
		return erase(precond.MaxLen(n)), nil
	case "non_empty":
		return flagConstraint(typeName, def, key, raw, precond.NonEmpty())
	case "pattern":
		expr, ok := raw.(string)
		if !ok {
			return nil, badConstraint(typeName, def, key, "string value required")
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, badConstraint(typeName, def, key, fmt.Sprintf("invalid expression: %v", err))
		}
		return erase(precond.Matches(re)), nil
	case "one_of":
		items, ok := raw.([]any)
		if !ok {
			return nil, badConstraint(typeName, def, key, "list of strings required")
		}
		choices := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, badConstraint(typeName, def, key, "list of strings required")
			}
			choices = append(choices, s)
		}
		if len(choices) == 0 {
			return nil, badConstraint(typeName, def, key, "at least one choice required")
		}
		return erase(precond.OneOf(choices...)), nil
	default:
		return nil, badConstraint(typeName, def, key, "not applicable to string fields")
	}
}

func timeConstraint(typeName string, def fieldDef, key string, raw any) (func(any) bool, error) {
	switch key {
	case "not_zero":
		return flagConstraint(typeName, def, key, raw, precond.NotZeroTime())
	case "past":
		return flagConstraint(typeName, def, key, raw, precond.Past())
	case "future":
		return flagConstraint(typeName, def, key, raw, precond.Future())
	default:
		return nil, badConstraint(typeName, def, key, "not applicable to time fields")
	}
}

func uuidConstraint(typeName string, def fieldDef, key string, raw any) (func(any) bool, error) {
	switch key {
	case "non_nil":
		return flagConstraint(typeName, def, key, raw, precond.NonNilUUID())
	default:
		return nil, badConstraint(typeName, def, key, "not applicable to uuid fields")
	}
}

// flagConstraint handles boolean-valued constraint keys. A false value
// disables the constraint, which lets generated documents keep the key
// present unconditionally.
func flagConstraint[T any](typeName string, def fieldDef, key string, raw any, pred precond.Predicate[T]) (func(any) bool, error) {
	on, ok := raw.(bool)
	if !ok {
		return nil, badConstraint(typeName, def, key, "boolean value required")
	}
	if !on {
		return nil, nil
	}
	return erase(pred), nil
}

// erase adapts a typed predicate to the erased signature NewField expects.
// The engine runs the declared-type check first, so the assertion cannot
// fail for values that reach the predicate.
func erase[T any](pred precond.Predicate[T]) func(any) bool {
	return func(v any) bool {
		tv, ok := v.(T)
		return ok && pred(tv)
	}
}

// numberAs converts a YAML scalar to the field's numeric type. Fractional
// values are rejected for integer targets rather than truncated.
func numberAs[T int | int64 | float64](raw any) (T, bool) {
	switch n := raw.(type) {
	case int:
		return T(n), true
	case int64:
		return T(n), true
	case float64:
		t := T(n)
		if float64(t) != n {
			return t, false
		}
		return t, true
	default:
		var zero T
		return zero, false
	}
}

func badConstraint(typeName string, def fieldDef, key, detail string) error {
	return recordkit.NewSchemaDeclarationError(def.Name, typeName,
		fmt.Sprintf("constraint '%s': %s", key, detail))
}
