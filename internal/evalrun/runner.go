// Package evalrun drives corpus-level evaluation: it pairs standard and
// response documents by name, runs the optimal matcher on each pair and
// aggregates per-tag metrics over the whole corpus.
package evalrun

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	nereval "github.com/entext/go-nereval"
	"github.com/entext/go-nereval/markup"
)

// Runner holds the settings for one evaluation run.
type Runner struct {
	Mode       nereval.Mode
	LocOrg     bool // when false, locorg mentions are evaluated as locations
	ReportsDir string
	Logger     *slog.Logger
}

// NewRunner creates a runner with the given mode and locorg policy.
func NewRunner(mode nereval.Mode, locorg bool) *Runner {
	return &Runner{
		Mode:   mode,
		LocOrg: locorg,
		Logger: slog.Default(),
	}
}

// DocumentResult holds the outcome for one document.
type DocumentResult struct {
	Name    string
	Metrics map[string]nereval.Metrics
	Report  string
}

// Perfect reports whether the document scored a full match.
func (d *DocumentResult) Perfect() bool {
	return d.Metrics[nereval.OverallKey].F1 == 1.0
}

// CorpusResult holds the outcome for a whole corpus.
type CorpusResult struct {
	Documents []*DocumentResult
	Totals    map[string]nereval.Metrics
}

// Tags returns the entity types evaluated under the runner's settings,
// in report order.
func (r *Runner) Tags() []nereval.Tag {
	tags := []nereval.Tag{nereval.TagPerson, nereval.TagLocation, nereval.TagOrganization}
	if r.LocOrg {
		tags = append(tags, nereval.TagLocOrg)
	}
	return tags
}

// EvaluateDocument matches one response against one standard document.
func (r *Runner) EvaluateDocument(std *markup.Document, resp *markup.Response) (*DocumentResult, error) {
	s := std.MakeTokenSets(r.LocOrg)
	t := resp.MakeTokenSets(std, r.LocOrg)

	m, err := nereval.NewMatcher(s, t, markup.NewCalculator(r.Mode), r.Mode,
		nereval.WithLogger(r.Logger))
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", std.Name, err)
	}

	pairs := m.FindOptimalMatching()

	metrics := make(map[string]nereval.Metrics, len(m.Metrics()))
	for k, v := range m.Metrics() {
		metrics[k] = v
	}

	res := &DocumentResult{
		Name:    std.Name,
		Metrics: metrics,
	}
	res.Report = r.buildReport(m, pairs, metrics)

	return res, nil
}

// EvaluateCorpus evaluates every document present in both directories.
// Documents present on only one side are reported and skipped.
func (r *Runner) EvaluateCorpus(stdDir, testDir string) (*CorpusResult, error) {
	stdNames, err := namesWithExt(stdDir, ".objects")
	if err != nil {
		return nil, fmt.Errorf("scanning standard dir: %w", err)
	}
	testNames, err := namesWithExt(testDir, ".task1")
	if err != nil {
		return nil, fmt.Errorf("scanning test dir: %w", err)
	}

	names := r.commonNames(stdNames, testNames)
	if len(names) == 0 {
		return nil, fmt.Errorf("no document names shared between %s and %s", stdDir, testDir)
	}

	result := &CorpusResult{
		Totals: make(map[string]nereval.Metrics),
	}

	for _, name := range names {
		std, err := markup.LoadDocument(stdDir, name)
		if err != nil {
			return nil, err
		}
		resp, err := markup.LoadResponse(testDir, name)
		if err != nil {
			return nil, err
		}

		doc, err := r.EvaluateDocument(std, resp)
		if err != nil {
			return nil, err
		}
		result.Documents = append(result.Documents, doc)

		for key, m := range doc.Metrics {
			total := result.Totals[key]
			total.Add(m)
			result.Totals[key] = total
		}

		if r.ReportsDir != "" {
			if err := r.writeReport(doc); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// commonNames intersects the two name sets and logs the names present on
// one side only.
func (r *Runner) commonNames(stdNames, testNames []string) []string {
	stdSet := toSet(stdNames)
	testSet := toSet(testNames)

	var missing []string
	for name := range stdSet {
		if !testSet[name] {
			missing = append(missing, name)
		}
	}
	for name := range testSet {
		if !stdSet[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		r.Logger.Warn("documents present on one side only",
			"count", len(missing),
			"names", strings.Join(missing, ", "))
	}

	var names []string
	for name := range stdSet {
		if testSet[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (r *Runner) writeReport(doc *DocumentResult) error {
	if err := os.MkdirAll(r.ReportsDir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	// imperfect documents get a '_' prefix so they sort first
	filename := doc.Name + ".report.txt"
	if !doc.Perfect() {
		filename = "_" + filename
	}

	path := filepath.Join(r.ReportsDir, filename)
	if err := os.WriteFile(path, []byte(doc.Report), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// namesWithExt lists document names in a directory carrying the given
// file extension.
func namesWithExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	return names, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
