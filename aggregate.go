package queryset

import (
	"context"
	"time"

	"github.com/hupe1980/queryset/lookup"
	"github.com/hupe1980/queryset/record"
)

// ValuesList extracts every leaf addressed by path into a new flat
// QuerySet.
//
// Arrays are flattened: a terminal array contributes each element, and an
// array in the middle of the path is walked element by element. Values
// appear in depth-first document order.
func (qs *QuerySet) ValuesList(path string) *QuerySet {
	e := qs.environment()
	segs := e.compile(path).Segments

	var out []record.Value
	for _, v := range qs.items {
		out = lookup.Collect(v, segs, out)
	}
	return qs.derive(out)
}

// values returns the aggregation input: the extracted leaves when a path
// is given, otherwise the values themselves.
func (qs *QuerySet) values(path []string) ([]record.Value, string) {
	if len(path) == 0 || path[0] == "" {
		return qs.items, ""
	}
	return qs.ValuesList(path[0]).items, path[0]
}

// Sum adds up the numeric values, coercing numeric strings. Non-numeric
// values are skipped. An empty input sums to 0.
func (qs *QuerySet) Sum(path ...string) float64 {
	start := time.Now()
	values, p := qs.values(path)

	total := sum(values)

	qs.recordAggregate("sum", p, len(values), start)
	return total
}

// Avg returns the sum divided by the number of values, or 0 when there are
// none.
func (qs *QuerySet) Avg(path ...string) float64 {
	start := time.Now()
	values, p := qs.values(path)

	var avg float64
	if len(values) > 0 {
		avg = sum(values) / float64(len(values))
	}

	qs.recordAggregate("avg", p, len(values), start)
	return avg
}

// Min returns the smallest value. Dates compare chronologically. Nulls and
// values that cannot be ordered against the current minimum are skipped.
// The second result is false when there is nothing to compare.
func (qs *QuerySet) Min(path ...string) (record.Value, bool) {
	start := time.Now()
	values, p := qs.values(path)

	v, ok := qs.environment().extreme(values, -1)

	qs.recordAggregate("min", p, len(values), start)
	return v, ok
}

// Max returns the largest value. See Min.
func (qs *QuerySet) Max(path ...string) (record.Value, bool) {
	start := time.Now()
	values, p := qs.values(path)

	v, ok := qs.environment().extreme(values, 1)

	qs.recordAggregate("max", p, len(values), start)
	return v, ok
}

func sum(values []record.Value) float64 {
	var total float64
	for _, v := range values {
		if f, ok := v.Number(); ok {
			total += f
		}
	}
	return total
}

// extreme returns the value v for which Compare(v, other) has the sign of
// dir against every other comparable value.
func (e *env) extreme(values []record.Value, dir int) (record.Value, bool) {
	var (
		best  record.Value
		found bool
	)
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		if n, ok := e.matcher.Compare(v, best); ok && n*dir > 0 {
			best = v
		}
	}
	return best, found
}

func (qs *QuerySet) recordAggregate(op, path string, n int, start time.Time) {
	e := qs.environment()
	e.metrics.RecordAggregate(op, n, time.Since(start))
	e.logger.LogAggregate(context.Background(), op, path, n)
}
