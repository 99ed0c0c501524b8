package model

import "testing"

func TestLocalizedPick(t *testing.T) {
	tests := []struct {
		name string
		m    Localized
		lang Language
		want string
	}{
		{"exact", Localized{"ms": "Terima kasih", "en": "Thanks"}, LanguageMalay, "Terima kasih"},
		{"english fallback", Localized{"en": "Thanks", "zh": "谢谢"}, LanguageMalay, "Thanks"},
		{"supported order", Localized{"zh": "谢谢"}, LanguageUnknown, "谢谢"},
		{"other language", Localized{"ta": "nandri"}, LanguageEnglish, "nandri"},
		{"empty", Localized{}, LanguageEnglish, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Pick(tt.lang); got != tt.want {
				t.Errorf("Pick(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestActionValid(t *testing.T) {
	for _, a := range []Action{ActionStaticReply, ActionLLMReply, ActionWorkflow} {
		if !a.Valid() {
			t.Errorf("%s should be valid", a)
		}
	}
	if Action("escalate").Valid() {
		t.Error("unknown action should be invalid")
	}
	if LoadPriority("sometimes").Valid() {
		t.Error("unknown priority should be invalid")
	}
}

func TestAssistantEventUnmatched(t *testing.T) {
	if !(AssistantEvent{Source: SourceLLM, Category: CategoryGeneral}).Unmatched() {
		t.Error("llm general should be unmatched")
	}
	if (AssistantEvent{Source: SourceFuzzy, Category: CategoryGeneral}).Unmatched() {
		t.Error("fuzzy hit is matched")
	}
	if (AssistantEvent{Source: SourceLLM, Category: "payment"}).Unmatched() {
		t.Error("llm picked a category")
	}
}
