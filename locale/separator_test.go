package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestListSeparator(t *testing.T) {
	tests := []struct {
		locale   string
		expected rune
	}{
		{"en", ','},
		{"en-US", ','},
		{"en-GB", ','},
		{"ja-JP", ','},
		{"zh-Hans", ','},
		{"ko", ','},
		{"hi-IN", ','},
		{"th", ','},
		{"de", ';'},
		{"de-AT", ';'},
		{"de-CH", ';'},
		{"fr-FR", ';'},
		{"fr-CA", ';'},
		{"nl", ';'},
		{"pt-BR", ';'},
		{"ru-RU", ';'},
		{"sv", ';'},
		{"tr", ';'},
		{"uk", ';'},
		{"vi", ';'},
		{"fa-IR", '؛'},
		{"ar-SA", '؛'},
	}

	for _, tt := range tests {
		tag := language.MustParse(tt.locale)
		if got := ListSeparator(tag); got != tt.expected {
			t.Errorf("for %s: expected %q, got %q", tt.locale, tt.expected, got)
		}
	}
}

// Latin American Spanish keeps the comma even though European Spanish
// separates with semicolons.
func TestListSeparatorSpanishRegions(t *testing.T) {
	if got := ListSeparator(language.MustParse("es-ES")); got != ';' {
		t.Errorf("for es-ES: expected ';', got %q", got)
	}
	if got := ListSeparator(language.MustParse("es-MX")); got != ',' {
		t.Errorf("for es-MX: expected ',', got %q", got)
	}
}

func TestListSeparatorUnknown(t *testing.T) {
	if got := ListSeparator(language.Und); got != ',' {
		t.Errorf("for und: expected ',', got %q", got)
	}
	if got := ListSeparator(language.MustParse("zu")); got != ',' {
		t.Errorf("for zu: expected ',', got %q", got)
	}
}
