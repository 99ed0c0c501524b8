package model

// Localized holds one text per language.
type Localized map[Language]string

// Pick returns the text for lang, falling back to English, then the supported
// languages in order, then any non-empty text.
func (m Localized) Pick(lang Language) string {
	if msg := m[lang]; msg != "" {
		return msg
	}
	if msg := m[LanguageEnglish]; msg != "" {
		return msg
	}
	for _, l := range SupportedLanguages {
		if msg := m[l]; msg != "" {
			return msg
		}
	}
	for _, msg := range m {
		if msg != "" {
			return msg
		}
	}
	return ""
}
