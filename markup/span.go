package markup

import "fmt"

// Span is a raw span from the .spans layer: a typed run of tokens inside
// a mention, such as a surname or an organization descriptor.
type Span struct {
	ID   int
	Type string

	Start int
	End   int // exclusive, in characters

	TokenStart int // id of the first covered token
	NTokens    int

	Tokens []*Token
	Text   string
}

func (s *Span) String() string {
	return fmt.Sprintf("%s[%s #%d], ntokens=%d", s.Text, s.Type, s.ID, s.NTokens)
}

// Weight returns the evaluation weight of the span type. Every currently
// defined type carries full weight; the table exists so individual span
// types can be discounted.
func (s *Span) Weight() float64 {
	return 1
}
