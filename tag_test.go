package nereval

import "testing"

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
	}{
		{"per", TagPerson},
		{"Person", TagPerson},
		{"loc", TagLocation},
		{"Location", TagLocation},
		{"org", TagOrganization},
		{"Org", TagOrganization},
		{"Organization", TagOrganization},
		{"locorg", TagLocOrg},
		{"LocOrg", TagLocOrg},
		{"misc", TagUnknown},
		{"", TagUnknown},
		{"PER", TagUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseTag(tt.in); got != tt.want {
				t.Errorf("ParseTag(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTagsOrder(t *testing.T) {
	want := []Tag{TagPerson, TagLocation, TagOrganization, TagLocOrg}
	got := Tags()

	if len(got) != len(want) {
		t.Fatalf("Tags() returned %d tags, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tags()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTagRecognized(t *testing.T) {
	for _, tag := range Tags() {
		if !tag.Recognized() {
			t.Errorf("%v.Recognized() = false, want true", tag)
		}
	}
	if TagUnknown.Recognized() {
		t.Error("TagUnknown.Recognized() = true, want false")
	}
	if Tag(99).Recognized() {
		t.Error("Tag(99).Recognized() = true, want false")
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{TagPerson, "per"},
		{TagLocation, "loc"},
		{TagOrganization, "org"},
		{TagLocOrg, "locorg"},
		{TagUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.tag), got, tt.want)
		}
	}
}
