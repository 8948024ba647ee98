package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps header size before parsing. RFC 7231 sets no
// limit, but 4KB covers legitimate headers while bounding work on malicious
// ones.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage negotiates the best supported language for an
// Accept-Language header value. Matching follows BCP 47 semantics, so a
// preference for "en-US" selects a supported "en" when no exact variant is
// available. Returns defaultLang when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return defaultLang
	}
	return matchSupported(supportedLangs, defaultLang, prefs)
}

// PreferredLanguage negotiates the best catalog language for an
// Accept-Language header against the languages this translator holds.
func (t *Translator) PreferredLanguage(header string) string {
	return ParseAcceptLanguage(header, t.SupportedLanguages(), t.defaultLang)
}

// Match returns the best catalog language for an ordered list of preferred
// language codes, such as "fr-CA" or "en". Codes that do not parse as
// BCP 47 tags are skipped. Returns the default language when nothing
// matches.
func (t *Translator) Match(preferred ...string) string {
	supported := t.SupportedLanguages()
	if len(preferred) == 0 || len(supported) == 0 {
		return t.defaultLang
	}

	prefs := make([]language.Tag, 0, len(preferred))
	for _, code := range preferred {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		prefs = append(prefs, tag)
	}
	if len(prefs) == 0 {
		return t.defaultLang
	}
	return matchSupported(supported, t.defaultLang, prefs)
}

// matchSupported picks the supported code closest to the preference order.
// The default goes first so the matcher falls back to it.
func matchSupported(supportedLangs []string, defaultLang string, prefs []language.Tag) string {
	tags := make([]language.Tag, 0, len(supportedLangs)+1)
	index := make(map[language.Tag]string, len(supportedLangs)+1)

	def, err := language.Parse(defaultLang)
	if err != nil {
		def = language.English
	}
	tags = append(tags, def)
	index[def] = defaultLang

	for _, code := range supportedLangs {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		if _, seen := index[tag]; seen {
			continue
		}
		tags = append(tags, tag)
		index[tag] = code
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return defaultLang
	}
	return index[tags[idx]]
}
