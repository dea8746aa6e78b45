package nereval

import "testing"

// testMention is a minimal Object for exercising the matcher directly.
type testMention struct {
	tag Tag
	id  int
}

func (m testMention) Tag() Tag { return m.tag }
func (m testMention) ID() int  { return m.id }

func TestPartitionOrdering(t *testing.T) {
	objects := []testMention{
		{TagLocOrg, 2},
		{TagPerson, 5},
		{TagLocation, 1},
		{TagPerson, 3},
		{TagOrganization, 4},
		{TagLocation, 9},
	}

	p := newPartition(objects)

	want := []testMention{
		{TagPerson, 3},
		{TagPerson, 5},
		{TagLocation, 1},
		{TagLocation, 9},
		{TagOrganization, 4},
		{TagLocOrg, 2},
	}
	if p.len() != len(want) {
		t.Fatalf("partition retained %d objects, want %d", p.len(), len(want))
	}
	for i, obj := range p.objects {
		if obj != want[i] {
			t.Errorf("objects[%d] = %+v, want %+v", i, obj, want[i])
		}
	}
}

func TestPartitionCompleteness(t *testing.T) {
	objects := []testMention{
		{TagOrganization, 1},
		{TagPerson, 2},
		{TagPerson, 1},
		{TagLocOrg, 7},
	}

	p := newPartition(objects)

	// concatenated ranges cover the reordered slice exactly, in tag order
	offset := 0
	for _, tag := range Tags() {
		if got := p.start(tag); got != offset {
			t.Errorf("start(%v) = %d, want %d", tag, got, offset)
		}
		offset = p.end(tag)

		for i := p.start(tag); i < p.end(tag); i++ {
			if p.objects[i].Tag() != tag {
				t.Errorf("objects[%d].Tag() = %v, want %v", i, p.objects[i].Tag(), tag)
			}
		}
	}
	if offset != p.len() {
		t.Errorf("ranges end at %d, want %d", offset, p.len())
	}
}

func TestPartitionDropsUnrecognizedTags(t *testing.T) {
	objects := []testMention{
		{TagPerson, 1},
		{TagUnknown, 2},
		{Tag(42), 3},
		{TagLocation, 4},
	}

	p := newPartition(objects)

	if p.len() != 2 {
		t.Fatalf("partition retained %d objects, want 2", p.len())
	}
	for _, obj := range p.objects {
		if !obj.Tag().Recognized() {
			t.Errorf("retained object with unrecognized tag %v", obj.Tag())
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	p := newPartition[testMention](nil)

	if p.len() != 0 {
		t.Fatalf("partition of nil has %d objects", p.len())
	}
	for _, tag := range Tags() {
		if p.start(tag) != 0 || p.end(tag) != 0 {
			t.Errorf("range of %v = [%d, %d), want [0, 0)", tag, p.start(tag), p.end(tag))
		}
	}
}
