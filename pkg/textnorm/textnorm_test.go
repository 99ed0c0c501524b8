package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"WiFi Password??", "wifi password"},
		{"  Café   crème ", "cafe creme"},
		{"check-in @ 2pm!", "check in 2pm"},
		{"无线网密码", "无线网密码"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		text, phrase string
		want         bool
	}{
		{"What is the wifi password?", "wifi", true},
		{"What is the wifi password?", "WiFi Password", true},
		{"wifipassword", "wifi", false},
		{"请问无线网密码是什么", "无线网", true},
		{"anything", "", false},
	}
	for _, tt := range tests {
		if got := ContainsPhrase(tt.text, tt.phrase); got != tt.want {
			t.Errorf("ContainsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
		}
	}
}
