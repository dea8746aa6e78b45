package nereval

// Tag identifies the entity type of a mention. Exactly four types are
// recognized by the evaluator; everything else is TagUnknown and is
// silently excluded from matching.
type Tag int

const (
	// TagUnknown marks a mention whose type is not recognized.
	TagUnknown Tag = iota - 1

	// TagPerson is a person mention ("per").
	TagPerson

	// TagLocation is a location mention ("loc").
	TagLocation

	// TagOrganization is an organization mention ("org").
	TagOrganization

	// TagLocOrg is an ambiguous location-or-organization mention ("locorg").
	TagLocOrg
)

// tagOrder is the fixed enumeration order used for partitioning and reports.
var tagOrder = [...]Tag{TagPerson, TagLocation, TagOrganization, TagLocOrg}

// Tags returns the recognized tags in their fixed enumeration order.
func Tags() []Tag {
	return tagOrder[:]
}

// Recognized reports whether the tag is one of the four evaluated types.
func (t Tag) Recognized() bool {
	return t >= TagPerson && t <= TagLocOrg
}

// String returns the short form of the tag used in markup files and reports.
func (t Tag) String() string {
	switch t {
	case TagPerson:
		return "per"
	case TagLocation:
		return "loc"
	case TagOrganization:
		return "org"
	case TagLocOrg:
		return "locorg"
	default:
		return "unknown"
	}
}

// ParseTag maps a type name to a Tag. Both the short report forms and the
// long names used by the standard markup are accepted. Unrecognized names
// map to TagUnknown; they are not an error because objects carrying them
// are dropped from evaluation rather than rejected.
func ParseTag(s string) Tag {
	switch s {
	case "per", "Person":
		return TagPerson
	case "loc", "Location":
		return TagLocation
	case "org", "Org", "Organization":
		return TagOrganization
	case "locorg", "LocOrg":
		return TagLocOrg
	default:
		return TagUnknown
	}
}
