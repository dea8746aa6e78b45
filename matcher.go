package nereval

import (
	"fmt"
	"log/slog"
)

// Object is the contract annotated mentions must satisfy to be matched.
// The id is used solely for deterministic ordering and need not be unique.
type Object interface {
	Tag() Tag
	ID() int
}

// Calculator scores a standard/test object pair. Priority is the
// matchability gate in [0, 1]: 0 means the pair is impossible, 1 means a
// perfect match that must be kept. Quality is the true-positive credit a
// confirmed pair contributes; a pair can be eligible yet earn only
// partial credit.
type Calculator[T any] interface {
	Priority(std, test T) float64
	Quality(std, test T) float64
}

// Mode selects the tag-adjacency policy a Calculator applies: under
// ModeRegular locorg mentions may match locations and organizations,
// under ModeSimple they may not. The matcher validates the mode and
// passes it through; adjacency itself is the calculator's concern.
type Mode string

const (
	ModeRegular Mode = "regular"
	ModeSimple  Mode = "simple"
)

func (m Mode) validate() error {
	switch m {
	case ModeRegular, ModeSimple:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
	}
}

// Pair links a standard index to a test index. Indices refer to the
// matcher's reordered collections, not the caller's original ordering.
type Pair struct {
	Std  int
	Test int
}

// OverallKey is the Metrics map key for the whole-document result.
const OverallKey = "overall"

// Matcher finds the matching between standard and test mentions that
// maximizes the overall F1 of the document.
type Matcher[T Object] struct {
	std  *partition[T]
	test *partition[T]

	scores  *scoreMatrix
	calc    Calculator[T]
	mode    Mode
	metrics map[string]Metrics
	logger  *slog.Logger
}

// NewMatcher partitions both collections, builds the full priority
// matrix and returns a matcher ready to search. The calculator is
// invoked exactly len(std)×len(test) times, counting only objects with
// recognized tags; objects with other tags are dropped from both pools.
func NewMatcher[T Object](std, test []T, calc Calculator[T], mode Mode, opts ...Option) (*Matcher[T], error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Matcher[T]{
		std:     newPartition(std),
		test:    newPartition(test),
		calc:    calc,
		mode:    mode,
		metrics: make(map[string]Metrics),
		logger:  cfg.logger,
	}
	m.scores = newScoreMatrix(m.std.objects, m.test.objects, calc)

	return m, nil
}

// Standard returns the reordered standard collection the result indices
// refer to.
func (m *Matcher[T]) Standard() []T {
	return m.std.objects
}

// Test returns the reordered test collection the result indices refer to.
func (m *Matcher[T]) Test() []T {
	return m.test.objects
}

// Mode returns the validated matching mode.
func (m *Matcher[T]) Mode() Mode {
	return m.mode
}

// Metrics returns the per-tag and overall results. It is populated by
// FindOptimalMatching and empty before the first call.
func (m *Matcher[T]) Metrics() map[string]Metrics {
	return m.metrics
}

// StandardRange returns the half-open index range the tag occupies in the
// reordered standard collection.
func (m *Matcher[T]) StandardRange(tag Tag) (start, end int) {
	return m.std.start(tag), m.std.end(tag)
}

// TestRange returns the half-open index range the tag occupies in the
// reordered test collection.
func (m *Matcher[T]) TestRange(tag Tag) (start, end int) {
	return m.test.start(tag), m.test.end(tag)
}

// FindOptimalMatching runs the recursive search and returns the best
// matching found. It also fills the metrics map, keyed by OverallKey and
// by each recognized tag.
func (m *Matcher[T]) FindOptimalMatching() []Pair {
	stdIdx := make([]int, m.std.len())
	for i := range stdIdx {
		stdIdx[i] = i
	}
	testIdx := make([]int, m.test.len())
	for j := range testIdx {
		testIdx[j] = j
	}

	f1, pairs := m.search(stdIdx, testIdx, nil)

	m.metrics[OverallKey] = m.evaluate(pairs, TagUnknown)
	for _, tag := range Tags() {
		m.metrics[tag.String()] = m.evaluate(pairs, tag)
	}

	m.logger.Debug("matching complete",
		"n_std", m.std.len(),
		"n_test", m.test.len(),
		"pairs", len(pairs),
		"f1", f1)

	return pairs
}

// search explores candidate pairings for the head of the remaining
// standard pool depth-first and keeps the branch with the greatest
// overall F1. std and test are the remaining index pools; pairs is the
// matching committed so far. Each branch gets its own copies of the
// pools so siblings cannot corrupt one another; the score matrix is
// shared read-only.
func (m *Matcher[T]) search(std, test []int, pairs []Pair) (float64, []Pair) {
	if len(std) == 0 || len(test) == 0 {
		return m.evaluate(pairs, TagUnknown).F1, pairs
	}

	curr := std[0]

	bestF1 := 0.0
	var bestPairs []Pair
	found := false

	possiblePairs := 0
	maxAlternatives := 0

	for _, t := range m.findMatches(curr, test) {
		possiblePairs++

		// A test object perfectly matchable by some other remaining
		// standard object is reserved for that partner: pairing it
		// imperfectly here can never be optimal.
		reserved := false
		for _, k := range std {
			if m.scores.at(k, t) == 1 && m.scores.at(curr, t) < 1 {
				reserved = true
				break
			}
		}

		if alt := m.countAlternatives(t, std); alt > maxAlternatives {
			maxAlternatives = alt
		}
		if reserved {
			continue
		}

		f1, res := m.search(std[1:], without(test, t), appendPair(pairs, Pair{Std: curr, Test: t}))
		if !found || f1 > bestF1 {
			found = true
			bestF1 = f1
			bestPairs = res
		}
	}

	// Leaving curr unmatched is only worth exploring when it could change
	// the optimum: no surviving candidate at all, or a single ambiguous
	// one whose target has other suitors in the standard pool. The found
	// check also covers the case where every candidate was reserved.
	if possiblePairs == 0 || (possiblePairs == 1 && maxAlternatives > 1) || !found {
		f1, res := m.search(std[1:], test, pairs)
		if !found || f1 > bestF1 {
			found = true
			bestF1 = f1
			bestPairs = res
		}
	}

	return bestF1, bestPairs
}

// findMatches returns the candidate test indices for the given standard
// index. Perfectly fitting objects must be matched, so when any candidate
// has priority exactly 1 only those are returned.
func (m *Matcher[T]) findMatches(stdIdx int, test []int) []int {
	var perfect, matches []int
	for _, t := range test {
		switch p := m.scores.at(stdIdx, t); {
		case p == 1:
			perfect = append(perfect, t)
		case p != 0:
			matches = append(matches, t)
		}
	}

	if len(perfect) > 0 {
		return perfect
	}
	return matches
}

// countAlternatives counts remaining standard objects with nonzero
// priority against the test index.
func (m *Matcher[T]) countAlternatives(t int, std []int) int {
	count := 0
	for _, k := range std {
		if m.scores.at(k, t) != 0 {
			count++
		}
	}
	return count
}

// evaluate turns a matching into metrics, optionally restricted to one
// tag. With a recognized tag the pairs are filtered by the tag's standard
// range and the tag's block sizes become the denominators.
func (m *Matcher[T]) evaluate(pairs []Pair, filter Tag) Metrics {
	subset := pairs
	nStd := m.std.len()
	nTest := m.test.len()

	if filter.Recognized() {
		start, end := m.std.start(filter), m.std.end(filter)
		subset = nil
		for _, p := range pairs {
			if p.Std >= start && p.Std < end {
				subset = append(subset, p)
			}
		}
		nStd = m.std.size(filter)
		nTest = m.test.size(filter)
	}

	tp := 0.0
	for _, p := range subset {
		tp += m.calc.Quality(m.std.objects[p.Std], m.test.objects[p.Test])
	}

	return NewMetrics(tp, nStd, nTest)
}

// without returns a copy of pool with the given value removed.
func without(pool []int, value int) []int {
	res := make([]int, 0, len(pool)-1)
	for _, v := range pool {
		if v != value {
			res = append(res, v)
		}
	}
	return res
}

// appendPair returns a fresh slice so sibling branches never share pairs.
func appendPair(pairs []Pair, p Pair) []Pair {
	res := make([]Pair, len(pairs), len(pairs)+1)
	copy(res, pairs)
	return append(res, p)
}
