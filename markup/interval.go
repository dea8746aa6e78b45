package markup

import "fmt"

// Interval is a character range in the source text, used by responses
// and reports.
type Interval struct {
	Start  int
	Length int
	End    int // inclusive
}

// NewInterval creates an interval with the given start and length.
func NewInterval(start, length int) Interval {
	return Interval{
		Start:  start,
		Length: length,
		End:    start + length - 1,
	}
}

func (iv Interval) String() string {
	return fmt.Sprintf("<%d; %d>", iv.Start, iv.End)
}
