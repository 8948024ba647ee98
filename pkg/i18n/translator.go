package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured explicitly.
const DefaultLanguage = "en"

// Translator renders message keys as localized strings. Catalogs are loaded
// once through an adapter at construction time; afterwards the translator is
// read-only and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a Translator with catalogs loaded from the adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is nil")
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

// DefaultLang returns the configured default language.
func (t *Translator) DefaultLang() string {
	return t.defaultLang
}

// SupportedLanguages returns the language codes with loaded catalogs, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether a translation exists for the language and
// dot-separated key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookupKey(langMap, key)
	return ok
}

// lookupKey traverses a nested catalog using dot-separated keys, so
// "record.type_mismatch" visits m["record"]["type_mismatch"].
func lookupKey(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		switch nested := next.(type) {
		case map[string]any:
			current = nested
		case map[any]any:
			// Older YAML decoders produce map[any]any for nested blocks.
			converted := make(map[string]any, len(nested))
			for k, v := range nested {
				if ks, ok := k.(string); ok {
					converted[ks] = v
				}
			}
			current = converted
		default:
			return nil, false
		}
	}

	return nil, false
}

// T translates a key for the given language. Placeholder arguments are
// key-value pairs substituted into "%{name}" markers:
//
//	// with "record.read_only": "%{field} cannot be changed after creation"
//	msg := translator.T("en", "record.read_only", "field", "age")
//
// A missing translation returns the key itself when fallback-to-key is on
// (the default), otherwise an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return t.missing(lang, key, args)
	}

	val, ok := lookupKey(langMap, key)
	if !ok {
		return t.missing(lang, key, args)
	}

	s, ok := val.(string)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
		}
		if t.fallbackToKey {
			return interpolate(key, args)
		}
		return ""
	}
	return interpolate(s, args)
}

// N translates a key with pluralization: n selects between the key's
// ".zero", ".one" and ".other" forms, then the bare key. The count is made
// available to templates as %{count} unless the caller already supplied one.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return t.missing(lang, key, args)
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{key + ".zero", key + ".other"}
	case 1:
		forms = []string{key + ".one"}
	default:
		forms = []string{key + ".other"}
	}
	forms = append(forms, key)

	var val any
	found := false
	for _, form := range forms {
		if val, found = lookupKey(langMap, form); found {
			break
		}
	}
	if !found {
		return t.missing(lang, key, args)
	}

	s, ok := val.(string)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("plural translation is not a string", "lang", lang, "key", key, "n", n)
		}
		if t.fallbackToKey {
			return interpolate(key, args)
		}
		return ""
	}

	if !hasParam(args, "count") {
		args = append(append(make([]string, 0, len(args)+2), args...), "count", strconv.Itoa(n))
	}
	return interpolate(s, args)
}

// Td translates a key with an explicit default used when the translation is
// missing, instead of falling back to the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return interpolate(defaultValue, args)
	}

	val, ok := lookupKey(langMap, key)
	if !ok {
		return interpolate(defaultValue, args)
	}

	s, ok := val.(string)
	if !ok {
		return interpolate(defaultValue, args)
	}
	return interpolate(s, args)
}

func (t *Translator) missing(lang, key string, args []string) string {
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	if t.fallbackToKey {
		return interpolate(key, args)
	}
	return ""
}

func hasParam(args []string, name string) bool {
	for i := 0; i < len(args)-1; i += 2 {
		if args[i] == name {
			return true
		}
	}
	return false
}

// paramRegex finds named placeholders of the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes %{name} placeholders from key-value argument
// pairs. Unknown placeholders are left intact; an odd trailing argument is
// ignored.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
