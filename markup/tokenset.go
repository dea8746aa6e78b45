package markup

import (
	"sort"
	"strings"

	nereval "github.com/entext/go-nereval"
)

// TokenSet is the set of tokens a mention covers. It is the object the
// matcher operates on: Tag and ID satisfy the nereval.Object contract.
type TokenSet struct {
	tag nereval.Tag
	id  int

	tokens map[*Token]struct{}
	marks  map[*Token]float64

	parents []*TokenSet
}

// NewTokenSet creates a token set for a mention with the given tag and id.
func NewTokenSet(tag nereval.Tag, id int, tokens []*Token) *TokenSet {
	ts := &TokenSet{
		tag:    tag,
		id:     id,
		tokens: make(map[*Token]struct{}, len(tokens)),
		marks:  make(map[*Token]float64, len(tokens)),
	}
	for _, t := range tokens {
		ts.tokens[t] = struct{}{}
		ts.marks[t] = 0
	}
	return ts
}

// Tag returns the entity type of the mention.
func (ts *TokenSet) Tag() nereval.Tag {
	return ts.tag
}

// ID returns the mention id, used for deterministic ordering.
func (ts *TokenSet) ID() int {
	return ts.id
}

// Len returns the number of covered tokens.
func (ts *TokenSet) Len() int {
	return len(ts.tokens)
}

// Contains reports whether the token belongs to the set.
func (ts *TokenSet) Contains(t *Token) bool {
	_, ok := ts.tokens[t]
	return ok
}

// Mark returns the span weight recorded for the token, or 0 for tokens
// outside the set.
func (ts *TokenSet) Mark(t *Token) float64 {
	return ts.marks[t]
}

// SetMark raises the token's recorded span weight. Lower values never
// overwrite higher ones, so a token covered by several spans keeps the
// heaviest.
func (ts *TokenSet) SetMark(t *Token, mark float64) {
	if ts.marks[t] < mark {
		ts.marks[t] = mark
	}
}

// SortedTokens returns the tokens ordered by starting position.
func (ts *TokenSet) SortedTokens() []*Token {
	res := make([]*Token, 0, len(ts.tokens))
	for t := range ts.tokens {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	return res
}

// Intersection returns the tokens shared with the other set.
func (ts *TokenSet) Intersection(other *TokenSet) []*Token {
	var res []*Token
	for t := range ts.tokens {
		if other.Contains(t) {
			res = append(res, t)
		}
	}
	return res
}

// Difference returns the tokens not present in the other set.
func (ts *TokenSet) Difference(other *TokenSet) []*Token {
	var res []*Token
	for t := range ts.tokens {
		if !other.Contains(t) {
			res = append(res, t)
		}
	}
	return res
}

// Intersects reports whether the two sets share any token.
func (ts *TokenSet) Intersects(other *TokenSet) bool {
	for t := range ts.tokens {
		if other.Contains(t) {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every token of the set belongs to other.
func (ts *TokenSet) IsSubsetOf(other *TokenSet) bool {
	for t := range ts.tokens {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// ToInterval converts the set to a character interval, extending over
// adjacent ignored tokens so quotes and trailing punctuation stay inside.
func (ts *TokenSet) ToInterval() Interval {
	tokens := ts.SortedTokens()
	start := tokens[0]
	end := tokens[len(tokens)-1]

	for start.Prev != nil && start.Prev.IsIgnored() {
		start = start.Prev
	}
	for end.Next != nil && end.Next.IsIgnored() {
		end = end.Next
	}

	return NewInterval(start.Start, end.End-start.Start+1)
}

// FindParents records the sets the mention is embedded in: every other
// set whose tokens are a superset of this one's.
func (ts *TokenSet) FindParents(all []*TokenSet) {
	ts.parents = nil
	for _, other := range all {
		if other == ts {
			continue
		}
		if ts.IsSubsetOf(other) {
			ts.parents = append(ts.parents, other)
		}
	}
}

// IsEmbedded reports whether the mention lies inside another mention.
func (ts *TokenSet) IsEmbedded() bool {
	return len(ts.parents) > 0
}

// Parents returns the mentions this one is embedded in.
func (ts *TokenSet) Parents() []*TokenSet {
	return ts.parents
}

func (ts *TokenSet) String() string {
	parts := make([]string, 0, len(ts.tokens))
	for _, t := range ts.SortedTokens() {
		parts = append(parts, t.String())
	}
	return "<" + strings.Join(parts, " ") + ">"
}
