package markup

import (
	"fmt"
	"unicode"
)

// Token is a raw token from the .tokens layer. Prev and Next link tokens
// in text order, across sentence breaks.
type Token struct {
	ID     int
	Start  int
	Length int
	End    int // inclusive
	Text   string

	Prev *Token
	Next *Token
}

// IsIgnored reports whether the token should be ignored during
// comparison: a single-character token butted directly against one of
// its neighbors, which is presumed punctuation.
func (t *Token) IsIgnored() bool {
	if t.Length != 1 {
		return false
	}
	if t.Prev != nil && t.Start-t.Prev.End == 1 {
		return true
	}
	return t.Next != nil && t.Next.Start-t.End == 1
}

// IsPunctuation reports whether the token text contains no letters or
// digits.
func (t *Token) IsPunctuation() bool {
	for _, r := range t.Text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (t *Token) String() string {
	return fmt.Sprintf("%s[%d-%d, #%d]", t.Text, t.Start, t.End, t.ID)
}

// linkTokens fills the Prev/Next pointers of a token sequence.
func linkTokens(tokens []*Token) {
	for i := range tokens {
		if i > 0 {
			tokens[i].Prev = tokens[i-1]
		}
		if i < len(tokens)-1 {
			tokens[i].Next = tokens[i+1]
		}
	}
}
