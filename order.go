package queryset

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/queryset/lookup"
	"github.com/hupe1980/queryset/record"
)

// OrderBy sorts qs in place and returns it.
//
// Each field is a path expression; a leading "-" sorts descending. Fields
// are applied as successive stable sorts in argument order, so the LAST
// field is the primary key and earlier fields only break its ties:
//
//	qs.OrderBy("name", "-age") // by age descending, then by name
//
// Booleans sort true first when ascending. Strings that parse as dates
// sort chronologically. Missing and null values sort last in either
// direction. Calling OrderBy with no fields leaves the order unchanged.
func (qs *QuerySet) OrderBy(fields ...string) *QuerySet {
	if len(fields) == 0 {
		return qs
	}
	start := time.Now()
	e := qs.environment()

	keys := make([]record.Value, len(qs.items))
	for _, f := range fields {
		desc := strings.HasPrefix(f, "-")
		path := e.compile(strings.TrimPrefix(f, "-"))
		for i, v := range qs.items {
			keys[i], _ = lookup.Resolve(v, path.Segments)
		}

		order := make([]int, len(qs.items))
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return e.orderCompare(keys[a], keys[b], desc)
		})

		sorted := make([]record.Value, len(qs.items))
		for i, pos := range order {
			sorted[i] = qs.items[pos]
		}
		qs.items = sorted
	}

	e.metrics.RecordOrder(len(qs.items), time.Since(start))
	e.logger.LogOrder(context.Background(), fields, len(qs.items))
	return qs
}

func (e *env) orderCompare(a, b record.Value, desc bool) int {
	// Nulls last regardless of direction.
	switch an, bn := a.IsNull(), b.IsNull(); {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}

	var n int
	if a.Kind == record.KindBool && b.Kind == record.KindBool {
		// true first.
		n = -cmp.Compare(boolRank(a.B), boolRank(b.B))
	} else if c, ok := e.matcher.Compare(a, b); ok {
		n = c
	} else {
		n = cmp.Compare(kindRank(a), kindRank(b))
	}
	if desc {
		return -n
	}
	return n
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// kindRank orders values of unrelated kinds so that sorting stays
// consistent: numbers, strings, booleans, arrays, records.
func kindRank(v record.Value) int {
	switch v.Kind {
	case record.KindInt, record.KindFloat:
		return 0
	case record.KindString:
		return 1
	case record.KindBool:
		return 2
	case record.KindArray:
		return 3
	default:
		return 4
	}
}
