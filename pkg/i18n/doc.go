// Package i18n localizes record validation errors and other user-facing
// messages. It keeps the validation engine's error values intact for
// programmatic handling while producing translated, parameterized text for
// display.
//
// The package allows you to:
//
//   - Load message catalogs from in-memory maps, single YAML files, or whole
//     directories, or from any custom storage by implementing the
//     TranslationAdapter interface.
//   - Translate strings with variable substitution using named placeholders
//     (`%{key}`) and count-aware pluralisation helpers.
//   - Turn any validation error produced by the record engine into a
//     localized message with LocalizeError, without switching on error types
//     at the call site.
//   - Negotiate the display language from an Accept-Language header via
//     ParseAcceptLanguage or from an explicit preference list via Match,
//     built on golang.org/x/text/language matching.
//
// # Architecture
//
// The Translator type holds an immutable catalog loaded once through a
// TranslationAdapter. Adapters return the full set of translations keyed by
// language code; parsing of file-based catalogs is delegated to the Parser
// interface, with a YAML implementation included. Lookup keys use dot
// notation to traverse nested catalog maps ("record.read_only").
//
// # Usage
//
// Basic set-up with the built-in English catalog:
//
//	translator, err := i18n.NewTranslator(context.Background(),
//		&i18n.MapAdapter{Data: i18n.EnglishMessages()},
//	)
//	if err != nil {
//		log.Fatalf("failed to init translator: %v", err)
//	}
//
//	_, err = schema.New(map[string]any{"name": "James"})
//	if err != nil {
//		msg := translator.LocalizeError("en", err)
//		// msg == "cannot create 'Person': missing fields: age, income"
//	}
//
// Catalogs for additional languages live in YAML files:
//
//	adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), "./translations")
//	translator, err := i18n.NewTranslator(ctx, adapter,
//		i18n.WithDefaultLanguage("en"),
//	)
//
// # Error Handling
//
// Catalog loading failures are joined with sentinel errors such as
// ErrFailedToParseYAML, so callers can match the failure class with
// errors.Is while keeping the underlying detail. Missing translations never
// fail: by default the key itself is returned, which keeps partially
// translated catalogs usable.
//
// # Concurrency
//
// A Translator is safe for concurrent use. The catalog is never mutated
// after NewTranslator returns.
package i18n
