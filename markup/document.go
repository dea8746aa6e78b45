// Package markup loads the layered entity-mention annotation format:
// standard documents consisting of .tokens, .spans and .objects files,
// and test responses consisting of .task1 interval files. It also
// provides the token-overlap Calculator the matcher scores pairs with.
package markup

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	nereval "github.com/entext/go-nereval"
)

const (
	tokenLineFields = 4
	commentSep      = "#"
)

// Document is a standard-markup document: raw tokens, typed spans over
// them and entities grouping the spans into mentions.
type Document struct {
	Name     string
	Tokens   []*Token
	Spans    map[int]*Span
	Entities []*Entity

	tokenByID map[int]*Token
}

// LoadDocument reads <name>.tokens, <name>.spans and <name>.objects from
// the directory.
func LoadDocument(dir, name string) (*Document, error) {
	doc := &Document{
		Name:      name,
		Spans:     make(map[int]*Span),
		tokenByID: make(map[int]*Token),
	}

	if err := doc.loadTokens(filepath.Join(dir, name+".tokens")); err != nil {
		return nil, fmt.Errorf("loading %s.tokens: %w", name, err)
	}
	if err := doc.loadSpans(filepath.Join(dir, name+".spans")); err != nil {
		return nil, fmt.Errorf("loading %s.spans: %w", name, err)
	}
	if err := doc.loadEntities(filepath.Join(dir, name+".objects")); err != nil {
		return nil, fmt.Errorf("loading %s.objects: %w", name, err)
	}

	return doc, nil
}

// TokenByID resolves a token id from the .tokens layer.
func (d *Document) TokenByID(id int) (*Token, bool) {
	t, ok := d.tokenByID[id]
	return t, ok
}

// TokensIn returns the non-ignored tokens lying fully inside the
// character interval.
func (d *Document) TokensIn(iv Interval) []*Token {
	var res []*Token
	for _, t := range d.Tokens {
		if t.Start >= iv.Start && t.End <= iv.End && !t.IsIgnored() {
			res = append(res, t)
		}
	}
	return res
}

// MakeTokenSets builds one token set per entity, with per-token span
// weights recorded for quality scoring and parent links filled. When
// locorgEnabled is false, locorg entities are treated as locations.
func (d *Document) MakeTokenSets(locorgEnabled bool) []*TokenSet {
	sets := make([]*TokenSet, 0, len(d.Entities))
	for _, e := range d.Entities {
		tag := e.Tag
		if !locorgEnabled && tag == nereval.TagLocOrg {
			tag = nereval.TagLocation
		}

		var tokens []*Token
		seen := make(map[*Token]struct{})
		for _, span := range e.Spans {
			for _, t := range span.Tokens {
				if _, ok := seen[t]; ok {
					continue
				}
				seen[t] = struct{}{}
				tokens = append(tokens, t)
			}
		}

		ts := NewTokenSet(tag, e.ID, tokens)
		for _, span := range e.Spans {
			for _, t := range span.Tokens {
				ts.SetMark(t, span.Weight())
			}
		}
		sets = append(sets, ts)
	}

	for _, ts := range sets {
		ts.FindParents(sets)
	}

	return sets
}

func (d *Document) loadTokens(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	for _, line := range lines {
		// blank lines separate sentences
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != tokenLineFields {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		nums, err := atoiAll(fields[:3])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		t := &Token{
			ID:     nums[0],
			Start:  nums[1],
			Length: nums[2],
			End:    nums[1] + nums[2] - 1,
			Text:   fields[3],
		}
		d.Tokens = append(d.Tokens, t)
		d.tokenByID[t.ID] = t
	}

	linkTokens(d.Tokens)
	return nil
}

func (d *Document) loadSpans(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	for _, line := range lines {
		line = stripComment(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 6 {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		nums, err := atoiAll(fields[2:])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		span := &Span{
			ID:         id,
			Type:       fields[1],
			Start:      nums[0],
			End:        nums[0] + nums[1],
			TokenStart: nums[2],
			NTokens:    nums[3],
		}
		if err := d.resolveSpanTokens(span); err != nil {
			return err
		}
		d.Spans[span.ID] = span
	}

	return nil
}

// resolveSpanTokens walks the token chain from the span's first token id.
func (d *Document) resolveSpanTokens(span *Span) error {
	t, ok := d.tokenByID[span.TokenStart]
	if !ok {
		return fmt.Errorf("span %d starts at unknown token %d", span.ID, span.TokenStart)
	}

	var texts []string
	for i := 0; i < span.NTokens; i++ {
		if t == nil {
			return fmt.Errorf("span %d runs past the last token", span.ID)
		}
		span.Tokens = append(span.Tokens, t)
		texts = append(texts, t.Text)
		t = t.Next
	}
	span.Text = strings.Join(texts, " ")

	return nil
}

func (d *Document) loadEntities(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	for _, line := range lines {
		line = stripComment(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		spanIDs, err := atoiAll(fields[2:])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		entity, err := newEntity(id, fields[1], spanIDs, d.Spans)
		if err != nil {
			return err
		}
		d.Entities = append(d.Entities, entity)
	}

	return nil
}

// readLines reads a whole file as lines, tolerating a UTF-8 BOM.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}

	return lines, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, commentSep); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func atoiAll(fields []string) ([]int, error) {
	res := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
