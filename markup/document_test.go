package markup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	nereval "github.com/entext/go-nereval"
)

// writeFixture lays out a small standard document:
//
//	Angela Merkel visited Berlin.
//
// with a person mention over "Angela Merkel" and a location mention over
// "Berlin". The trailing period butts against "Berlin" and is ignored.
func writeFixture(t *testing.T, dir, name string) {
	t.Helper()

	files := map[string]string{
		name + ".tokens": "0 0 6 Angela\n" +
			"1 7 6 Merkel\n" +
			"2 14 7 visited\n" +
			"3 22 6 Berlin\n" +
			"4 28 1 .\n",
		name + ".spans": "1 name 0 6 0 1\n" +
			"2 surname 7 6 1 1\n" +
			"3 loc_name 22 6 3 1  # Berlin\n",
		name + ".objects": "10 Person 1 2 # Angela Merkel\n" +
			"11 Location 3 # Berlin\n",
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", file, err)
		}
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	doc, err := LoadDocument(dir, "book_1")
	if err != nil {
		t.Fatalf("LoadDocument() failed: %v", err)
	}

	if len(doc.Tokens) != 5 {
		t.Errorf("len(Tokens) = %d, want 5", len(doc.Tokens))
	}
	if len(doc.Spans) != 3 {
		t.Errorf("len(Spans) = %d, want 3", len(doc.Spans))
	}
	if len(doc.Entities) != 2 {
		t.Fatalf("len(Entities) = %d, want 2", len(doc.Entities))
	}

	if got := doc.Spans[2].Text; got != "Merkel" {
		t.Errorf("span 2 text = %q, want %q", got, "Merkel")
	}
	if got := doc.Entities[0].Tag; got != nereval.TagPerson {
		t.Errorf("entity 10 tag = %v, want per", got)
	}
	if got := doc.Entities[1].Tag; got != nereval.TagLocation {
		t.Errorf("entity 11 tag = %v, want loc", got)
	}

	tok, ok := doc.TokenByID(3)
	if !ok || tok.Text != "Berlin" {
		t.Errorf("TokenByID(3) = %v, %v", tok, ok)
	}
}

func TestLoadDocument_UnknownEntityType(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	objects := filepath.Join(dir, "book_1.objects")
	if err := os.WriteFile(objects, []byte("10 Widget 1\n"), 0o644); err != nil {
		t.Fatalf("rewriting objects: %v", err)
	}

	_, err := LoadDocument(dir, "book_1")
	if err == nil {
		t.Fatal("expected error for unknown entity type")
	}
	if !errors.Is(err, ErrUnknownEntityType) {
		t.Errorf("expected ErrUnknownEntityType, got: %v", err)
	}
}

func TestLoadDocument_MalformedTokens(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	tokens := filepath.Join(dir, "book_1.tokens")
	if err := os.WriteFile(tokens, []byte("0 zero 6 Angela\n"), 0o644); err != nil {
		t.Fatalf("rewriting tokens: %v", err)
	}

	_, err := LoadDocument(dir, "book_1")
	if !errors.Is(err, ErrMalformedLine) {
		t.Errorf("expected ErrMalformedLine, got: %v", err)
	}
}

func TestLoadDocument_BOM(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	tokens := filepath.Join(dir, "book_1.tokens")
	data, err := os.ReadFile(tokens)
	if err != nil {
		t.Fatalf("reading tokens: %v", err)
	}
	if err := os.WriteFile(tokens, append([]byte("\xef\xbb\xbf"), data...), 0o644); err != nil {
		t.Fatalf("rewriting tokens: %v", err)
	}

	doc, err := LoadDocument(dir, "book_1")
	if err != nil {
		t.Fatalf("LoadDocument() with BOM failed: %v", err)
	}
	if doc.Tokens[0].ID != 0 {
		t.Errorf("first token id = %d, want 0", doc.Tokens[0].ID)
	}
}

func TestMakeTokenSets(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	doc, err := LoadDocument(dir, "book_1")
	if err != nil {
		t.Fatalf("LoadDocument() failed: %v", err)
	}

	sets := doc.MakeTokenSets(true)
	if len(sets) != 2 {
		t.Fatalf("len(sets) = %d, want 2", len(sets))
	}

	person := sets[0]
	if person.Tag() != nereval.TagPerson || person.Len() != 2 {
		t.Errorf("person set = %v tag %v, want 2 tokens tagged per", person, person.Tag())
	}
	for _, tok := range person.SortedTokens() {
		if person.Mark(tok) != 1 {
			t.Errorf("mark of %v = %v, want 1", tok, person.Mark(tok))
		}
	}

	loc := sets[1]
	if loc.Tag() != nereval.TagLocation || loc.Len() != 1 {
		t.Errorf("location set = %v tag %v, want 1 token tagged loc", loc, loc.Tag())
	}
	if person.Intersects(loc) {
		t.Error("person and location sets should not intersect")
	}
}

func TestMakeTokenSets_LocorgDisabled(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	doc, err := LoadDocument(dir, "book_1")
	if err != nil {
		t.Fatalf("LoadDocument() failed: %v", err)
	}
	// retype the location mention as locorg
	doc.Entities[1].Tag = nereval.TagLocOrg

	sets := doc.MakeTokenSets(false)
	if got := sets[1].Tag(); got != nereval.TagLocation {
		t.Errorf("locorg mention evaluated as %v, want loc when locorg is disabled", got)
	}

	sets = doc.MakeTokenSets(true)
	if got := sets[1].Tag(); got != nereval.TagLocOrg {
		t.Errorf("locorg mention evaluated as %v, want locorg when enabled", got)
	}
}

func TestTokenSet_ToInterval(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	doc, err := LoadDocument(dir, "book_1")
	if err != nil {
		t.Fatalf("LoadDocument() failed: %v", err)
	}
	sets := doc.MakeTokenSets(true)

	// "Berlin" extends over the adjacent ignored period
	iv := sets[1].ToInterval()
	if iv.Start != 22 || iv.Length != 7 {
		t.Errorf("interval = %v, want <22; 28>", iv)
	}

	// "Angela Merkel" has no adjacent ignored tokens
	iv = sets[0].ToInterval()
	if iv.Start != 0 || iv.Length != 13 {
		t.Errorf("interval = %v, want <0; 12>", iv)
	}
}

func TestTokenSet_FindParents(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "book_1")

	doc, err := LoadDocument(dir, "book_1")
	if err != nil {
		t.Fatalf("LoadDocument() failed: %v", err)
	}

	// an organization mention over just "Merkel" is embedded in the person
	doc.Entities = append(doc.Entities, &Entity{
		ID:    12,
		Tag:   nereval.TagOrganization,
		Spans: []*Span{doc.Spans[2]},
	})

	sets := doc.MakeTokenSets(true)
	if !sets[2].IsEmbedded() {
		t.Error("single-token subset mention not reported as embedded")
	}
	if sets[0].IsEmbedded() {
		t.Error("enclosing mention reported as embedded")
	}
	if got := len(sets[2].Parents()); got != 1 {
		t.Errorf("len(Parents) = %d, want 1", got)
	}
}
