package markup

import (
	"fmt"

	nereval "github.com/entext/go-nereval"
)

// Entity is a mention from the .objects layer: a typed group of spans.
type Entity struct {
	ID    int
	Tag   nereval.Tag
	Spans []*Span
}

func newEntity(id int, typeName string, spanIDs []int, spans map[int]*Span) (*Entity, error) {
	tag := nereval.ParseTag(typeName)
	if !tag.Recognized() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, typeName)
	}

	e := &Entity{ID: id, Tag: tag}
	for _, sid := range spanIDs {
		span, ok := spans[sid]
		if !ok {
			return nil, fmt.Errorf("entity %d references unknown span %d", id, sid)
		}
		e.Spans = append(e.Spans, span)
	}

	return e, nil
}

func (e *Entity) String() string {
	res := fmt.Sprintf("%s #%d:", e.Tag, e.ID)
	for _, span := range e.Spans {
		res += fmt.Sprintf("\n\t%s : %s", span.Type, span.Text)
	}
	return res
}
