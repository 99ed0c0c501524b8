package matcher

import (
	"unicode"

	"pelangi-assistant/internal/model"
	"pelangi-assistant/pkg/textnorm"
)

var malayMarkers = map[string]bool{
	"saya": true, "aku": true, "awak": true, "anda": true, "boleh": true, "tak": true,
	"tidak": true, "nak": true, "mahu": true, "ada": true, "bila": true, "berapa": true,
	"apa": true, "mana": true, "terima": true, "kasih": true, "bilik": true, "tolong": true,
	"dah": true, "sudah": true, "belum": true, "ini": true, "itu": true, "yang": true,
	"dengan": true, "untuk": true, "macam": true, "pukul": true, "harga": true, "bayar": true,
	"tandas": true, "katil": true, "kunci": true, "rosak": true, "sini": true, "sana": true,
	"encik": true, "cik": true, "kak": true, "abang": true, "ke": true, "di": true, "pun": true,
	"lagi": true, "sikit": true, "jam": true, "malam": true, "pagi": true, "esok": true,
}

var englishMarkers = map[string]bool{
	"the": true, "is": true, "are": true, "what": true, "where": true, "when": true,
	"how": true, "can": true, "could": true, "would": true, "i": true, "you": true,
	"my": true, "your": true, "please": true, "thanks": true, "thank": true, "room": true,
	"do": true, "does": true, "have": true, "has": true, "there": true, "time": true,
	"want": true, "need": true, "broken": true, "not": true, "to": true, "of": true,
	"in": true, "on": true, "for": true, "with": true, "this": true, "that": true,
	"tomorrow": true, "tonight": true, "morning": true, "bed": true, "key": true,
}

// DetectLanguage makes a best-effort guess among the supported languages.
// It returns model.LanguageUnknown when the evidence is absent or tied.
func DetectLanguage(text string) model.Language {
	var han, letters int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.Is(unicode.Han, r) {
				han++
			}
		}
	}
	if letters == 0 {
		return model.LanguageUnknown
	}
	if han*2 >= letters {
		return model.LanguageChinese
	}

	var ms, en int
	for _, tok := range textnorm.Tokens(text) {
		if malayMarkers[tok] {
			ms++
		}
		if englishMarkers[tok] {
			en++
		}
	}
	switch {
	case ms > en:
		return model.LanguageMalay
	case en > ms:
		return model.LanguageEnglish
	default:
		return model.LanguageUnknown
	}
}
