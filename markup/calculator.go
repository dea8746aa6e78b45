package markup

import (
	nereval "github.com/entext/go-nereval"
)

// Calculator scores token-set pairs for the matcher. Priority gates
// matchability on raw token overlap; Quality weighs the overlap by the
// standard side's span marks. Tag adjacency lives entirely here: the
// matcher forwards the mode and otherwise knows nothing about tags
// matching across types.
type Calculator struct {
	mode nereval.Mode
}

// NewCalculator creates a calculator for the given mode. Under
// ModeRegular locorg mentions may match locations and organizations;
// under ModeSimple only identical tags match.
func NewCalculator(mode nereval.Mode) *Calculator {
	return &Calculator{mode: mode}
}

// tagMultiplier is the adjacency gate: 1 for admissible tag pairs,
// 0 otherwise.
func (c *Calculator) tagMultiplier(s, t *TokenSet) float64 {
	if s.Tag() == t.Tag() {
		return 1
	}
	if c.mode != nereval.ModeRegular {
		return 0
	}

	adjacent := func(a, b nereval.Tag) bool {
		return a == nereval.TagLocOrg &&
			(b == nereval.TagLocation || b == nereval.TagOrganization)
	}
	if adjacent(s.Tag(), t.Tag()) || adjacent(t.Tag(), s.Tag()) {
		return 1
	}
	return 0
}

// Priority returns the matchability of the pair: the tag multiplier
// scaled by token-set overlap (shared tokens over the union). 1 only for
// admissible pairs covering exactly the same tokens.
func (c *Calculator) Priority(s, t *TokenSet) float64 {
	multiplier := c.tagMultiplier(s, t)
	if multiplier == 0 {
		return 0
	}

	tp := len(s.Intersection(t))
	fn := len(s.Difference(t))
	fp := len(t.Difference(s))

	sum := tp + fn + fp
	if sum == 0 {
		return 0
	}
	return multiplier * float64(tp) / float64(sum)
}

// Quality returns the true-positive credit of a confirmed pair. Shared
// and missed tokens are weighed by the standard mention's span marks;
// punctuation that slipped into the standard markup is not charged as a
// miss. Spurious test tokens count fully.
func (c *Calculator) Quality(s, t *TokenSet) float64 {
	multiplier := c.tagMultiplier(s, t)
	if multiplier == 0 {
		return 0
	}

	tp := 0.0
	for _, token := range s.Intersection(t) {
		tp += s.Mark(token)
	}

	fn := 0.0
	for _, token := range s.Difference(t) {
		if !token.IsPunctuation() {
			fn += s.Mark(token)
		}
	}

	fp := float64(len(t.Difference(s)))

	sum := tp + fn + fp
	if sum == 0 {
		// the mention has no weighted spans at all; fall back to the
		// unweighted comparison
		return c.Priority(s, t)
	}
	return multiplier * tp / sum
}
