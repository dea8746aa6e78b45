// Package nereval scores entity-mention annotations against a gold
// standard, producing precision/recall/F1 overall and per entity type.
//
// # Quick Start
//
//	m, err := nereval.NewMatcher(std, test, calc, nereval.ModeRegular)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pairs := m.FindOptimalMatching()
//	fmt.Printf("F1: %.4f\n", m.Metrics()["overall"].F1)
//
// The matcher pairs standard and test objects so that the overall F1 of
// the resulting matching is maximal, using a pruned exhaustive recursive
// search. Pairings with priority exactly 1 are mandatory: a perfect pair
// is never sacrificed in favor of an imperfect one.
//
// # Indices
//
// The matcher reorders both collections internally: objects are grouped
// by tag in the fixed order per, loc, org, locorg and sorted by id within
// each group. The pairs returned by FindOptimalMatching refer to these
// reordered collections, exposed via Standard and Test.
//
// # Thread Safety
//
// A Matcher is not safe for concurrent use. The search is synchronous and
// single-threaded; worst-case runtime is exponential, which is accepted
// for realistic per-document mention counts.
package nereval
