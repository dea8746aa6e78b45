package markup

import "testing"

func TestTokenIsIgnored(t *testing.T) {
	// "Berlin ." with the period butted against the word
	word := &Token{ID: 0, Start: 0, Length: 6, End: 5, Text: "Berlin"}
	period := &Token{ID: 1, Start: 6, Length: 1, End: 6, Text: "."}
	far := &Token{ID: 2, Start: 10, Length: 1, End: 10, Text: ","}
	linkTokens([]*Token{word, period, far})

	if word.IsIgnored() {
		t.Error("multi-character token reported as ignored")
	}
	if !period.IsIgnored() {
		t.Error("adjacent single-character token not ignored")
	}
	if far.IsIgnored() {
		t.Error("detached single-character token reported as ignored")
	}
}

func TestTokenIsPunctuation(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{".", true},
		{"!?", true},
		{"«", true},
		{"word", false},
		{"A1", false},
		{"№1", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tok := &Token{Text: tt.text}
			if got := tok.IsPunctuation(); got != tt.want {
				t.Errorf("IsPunctuation(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
