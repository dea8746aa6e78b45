package markup

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnknownEntityType indicates a .objects line with a type the
	// standard markup does not define.
	ErrUnknownEntityType = errors.New("markup: unknown entity type")

	// ErrMalformedLine indicates a layer file line with the wrong number
	// of fields or a non-numeric field.
	ErrMalformedLine = errors.New("markup: malformed line")
)
