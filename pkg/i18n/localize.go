package i18n

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/recordkit"
)

// Translation keys for record validation errors. Catalogs provide a message
// per key using %{param} placeholders; the parameters each key receives are
// listed next to it. KeyArgumentMismatch is a key prefix: LocalizeError
// selects the ".missing", ".extra", or ".both" variant depending on which
// argument lists are populated, mirroring how plural variants work in N.
const (
	// Variants: .missing, .extra, .both. Parameters: type, missing, extra.
	KeyArgumentMismatch = "record.argument_mismatch"
	// Parameters: field, declared, actual.
	KeyTypeMismatch = "record.type_mismatch"
	// Parameters: field.
	KeyPrecondition = "record.precondition"
	// Parameters: field.
	KeyReadOnlyField = "record.read_only"
	// Parameters: type, field (may be empty), reason.
	KeySchemaDeclaration = "record.schema_declaration"
	// Parameters: field.
	KeyUninitializedField = "record.uninitialized"
	// Parameters: type, field.
	KeyUnknownField = "record.unknown_field"
	// Parameters: type.
	KeyUnknownType = "record.unknown_type"
)

// LocalizeError renders a record validation error in the given language.
// When the requested language has no message for the error, the default
// language is tried; errors that did not originate from record validation,
// or keys absent from every catalog, fall back to the error's own text. A
// nil error yields an empty string.
func (t *Translator) LocalizeError(lang string, err error) string {
	if err == nil {
		return ""
	}

	var (
		argErr    *recordkit.ArgumentMismatchError
		typeErr   *recordkit.TypeMismatchError
		preErr    *recordkit.PreconditionError
		roErr     *recordkit.ReadOnlyFieldError
		schemaErr *recordkit.SchemaDeclarationError
		uninitErr *recordkit.UninitializedFieldError
		ufErr     *recordkit.UnknownFieldError
		utErr     *recordkit.UnknownTypeError
	)

	switch {
	case errors.As(err, &argErr):
		key := KeyArgumentMismatch + ".both"
		switch {
		case len(argErr.Extra) == 0:
			key = KeyArgumentMismatch + ".missing"
		case len(argErr.Missing) == 0:
			key = KeyArgumentMismatch + ".extra"
		}
		return t.localize(lang, key, err,
			"type", argErr.TypeName,
			"missing", strings.Join(argErr.Missing, ", "),
			"extra", strings.Join(argErr.Extra, ", "),
		)
	case errors.As(err, &typeErr):
		return t.localize(lang, KeyTypeMismatch, err,
			"field", typeErr.Field,
			"declared", typeErr.Declared,
			"actual", typeErr.Actual,
		)
	case errors.As(err, &preErr):
		return t.localize(lang, KeyPrecondition, err, "field", preErr.Field)
	case errors.As(err, &roErr):
		return t.localize(lang, KeyReadOnlyField, err, "field", roErr.Field)
	case errors.As(err, &schemaErr):
		return t.localize(lang, KeySchemaDeclaration, err,
			"type", schemaErr.TypeName,
			"field", schemaErr.Field,
			"reason", schemaErr.Reason,
		)
	case errors.As(err, &uninitErr):
		return t.localize(lang, KeyUninitializedField, err, "field", uninitErr.Field)
	case errors.As(err, &ufErr):
		return t.localize(lang, KeyUnknownField, err,
			"type", ufErr.TypeName,
			"field", ufErr.Field,
		)
	case errors.As(err, &utErr):
		return t.localize(lang, KeyUnknownType, err, "type", utErr.TypeName)
	default:
		return err.Error()
	}
}

// localize resolves a message in the requested language, then the default
// language, then the error's own text.
func (t *Translator) localize(lang, key string, err error, args ...string) string {
	switch {
	case t.HasTranslation(lang, key):
		return t.T(lang, key, args...)
	case t.HasTranslation(t.defaultLang, key):
		return t.T(t.defaultLang, key, args...)
	default:
		return err.Error()
	}
}

// EnglishMessages returns the built-in English catalog covering every record
// validation error key. Pass it to a MapAdapter as-is, or merge it with
// application catalogs loaded from files.
func EnglishMessages() map[string]map[string]any {
	return map[string]map[string]any{
		"en": {
			"record": map[string]any{
				"argument_mismatch": map[string]any{
					"missing": "cannot create '%{type}': missing fields: %{missing}",
					"extra":   "cannot create '%{type}': unexpected fields: %{extra}",
					"both":    "cannot create '%{type}': missing fields: %{missing}; unexpected fields: %{extra}",
				},
				"type_mismatch":      "field '%{field}' expects %{declared}, got %{actual}",
				"precondition":       "field '%{field}' has an invalid value",
				"read_only":          "field '%{field}' cannot be changed",
				"schema_declaration": "record type '%{type}' is declared incorrectly: %{reason}",
				"uninitialized":      "field '%{field}' is not available yet",
				"unknown_field":      "record type '%{type}' has no field '%{field}'",
				"unknown_type":       "record type '%{type}' is not registered",
			},
		},
	}
}
