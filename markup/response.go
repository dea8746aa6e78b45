package markup

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	nereval "github.com/entext/go-nereval"
)

// ResponseEntry is one line of a .task1 response: a typed character
// interval claimed as a mention.
type ResponseEntry struct {
	Tag      nereval.Tag
	RawTag   string
	Interval Interval
}

// Response is a test markup document: the intervals an extraction system
// reported for one source text.
type Response struct {
	Name    string
	Entries []ResponseEntry
}

// LoadResponse reads <name>.task1 from the directory. Lines hold a tag,
// a start offset and a length. Entries with unrecognized tags are kept
// here and silently dropped by the matcher's partitioning.
func LoadResponse(dir, name string) (*Response, error) {
	lines, err := readLines(filepath.Join(dir, name+".task1"))
	if err != nil {
		return nil, fmt.Errorf("loading %s.task1: %w", name, err)
	}

	resp := &Response{Name: name}
	for _, line := range lines {
		line = stripComment(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		nums, err := atoiAll(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		resp.Entries = append(resp.Entries, ResponseEntry{
			Tag:      nereval.ParseTag(fields[0]),
			RawTag:   fields[0],
			Interval: NewInterval(nums[0], nums[1]),
		})
	}

	return resp, nil
}

// MakeTokenSets projects the response intervals onto the standard
// document's tokens. Entry order provides the ids. When locorgEnabled is
// false, locorg entries are treated as locations.
func (r *Response) MakeTokenSets(std *Document, locorgEnabled bool) []*TokenSet {
	sets := make([]*TokenSet, 0, len(r.Entries))
	for i, entry := range r.Entries {
		tag := entry.Tag
		if !locorgEnabled && tag == nereval.TagLocOrg {
			tag = nereval.TagLocation
		}
		sets = append(sets, NewTokenSet(tag, i, std.TokensIn(entry.Interval)))
	}
	return sets
}

// FormatResponse renders token sets as .task1 lines, grouped by tag in
// the fixed tag order and sorted by id within each group. Used by the
// response generator.
func FormatResponse(sets []*TokenSet) string {
	ordered := make([]*TokenSet, len(sets))
	copy(ordered, sets)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Tag() != ordered[j].Tag() {
			return ordered[i].Tag() < ordered[j].Tag()
		}
		return ordered[i].ID() < ordered[j].ID()
	})

	var b strings.Builder
	for _, ts := range ordered {
		if !ts.Tag().Recognized() || ts.Len() == 0 {
			continue
		}
		iv := ts.ToInterval()
		fmt.Fprintf(&b, "%s %d %d\n", ts.Tag(), iv.Start, iv.Length)
	}
	return b.String()
}
