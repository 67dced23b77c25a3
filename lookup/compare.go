package lookup

import (
	"github.com/hupe1980/queryset/datefmt"
	"github.com/hupe1980/queryset/record"
)

// Comparator orders values, treating strings that parse under the
// configured date formats as points in time.
type Comparator struct {
	Dates *datefmt.Set
}

// Compare orders a against b. Two strings that both parse as dates compare
// chronologically; anything else falls back to record.Compare. The second
// result is false when a and b have no order relative to each other.
func (c Comparator) Compare(a, b record.Value) (int, bool) {
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			if ta, ok := c.Dates.ParseDate(as); ok {
				if tb, ok := c.Dates.ParseDate(bs); ok {
					return ta.Compare(tb), true
				}
			}
		}
	}
	return record.Compare(a, b)
}

// Less reports whether a orders strictly before b.
func (c Comparator) Less(a, b record.Value) bool {
	n, ok := c.Compare(a, b)
	return ok && n < 0
}
