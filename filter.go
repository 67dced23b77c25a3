package queryset

import (
	"context"
	"maps"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/queryset/internal/bitmap"
	"github.com/hupe1980/queryset/lookup"
	"github.com/hupe1980/queryset/record"
)

// Query maps path expressions to target values. Every entry must match
// (AND). Passing several Queries to Filter matches any of them (OR).
//
//	queryset.Query{"profile__active": true, "name__icontains": "adm"}
type Query map[string]any

type clause struct {
	path   lookup.Path
	target record.Value
	valid  bool
}

// compileQuery turns q into clauses. A target with no record equivalent yields
// a clause that never matches.
func (e *env) compileQuery(q Query) []clause {
	keys := slices.Sorted(maps.Keys(q))
	clauses := make([]clause, len(keys))
	for i, k := range keys {
		target, err := record.FromAny(q[k])
		if err != nil {
			e.logger.LogInvalidTarget(context.Background(), k, err)
		}
		clauses[i] = clause{
			path:   e.compile(k),
			target: target,
			valid:  err == nil,
		}
	}
	return clauses
}

func (e *env) matchAll(v record.Value, clauses []clause) bool {
	for _, c := range clauses {
		if !c.valid || !e.matcher.Match(v, c.path, c.target) {
			return false
		}
	}
	return true
}

// parallelThreshold is the smallest QuerySet whose scan is split across
// workers.
const parallelThreshold = 4096

// matching returns the positions matched by any of queries.
func (qs *QuerySet) matching(e *env, queries []Query) *bitmap.Bitmap {
	matched := bitmap.New()
	for _, q := range queries {
		matched.Or(qs.scan(e, e.compileQuery(q), matched))
	}
	return matched
}

// scan returns the positions outside skip that satisfy every clause. skip is
// only read, so workers may share it.
func (qs *QuerySet) scan(e *env, clauses []clause, skip *bitmap.Bitmap) *bitmap.Bitmap {
	n := len(qs.items)
	if e.workers <= 1 || n < parallelThreshold {
		return qs.scanRange(e, clauses, skip, 0, n)
	}

	chunk := (n + e.workers - 1) / e.workers
	parts := make([]*bitmap.Bitmap, (n+chunk-1)/chunk)

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i := range parts {
		lo := i * chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			parts[i] = qs.scanRange(e, clauses, skip, lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	hits := bitmap.New()
	for _, p := range parts {
		hits.Or(p)
	}
	return hits
}

func (qs *QuerySet) scanRange(e *env, clauses []clause, skip *bitmap.Bitmap, lo, hi int) *bitmap.Bitmap {
	hits := bitmap.New()
	for i := lo; i < hi; i++ {
		if skip.Contains(i) {
			continue
		}
		if e.matchAll(qs.items[i], clauses) {
			hits.Add(i)
		}
	}
	return hits
}

func (qs *QuerySet) pick(positions *bitmap.Bitmap) []record.Value {
	out := make([]record.Value, 0, positions.Cardinality())
	for i := range positions.Positions() {
		out = append(out, qs.items[i])
	}
	return out
}

// Filter returns the values matching any of queries, in their original
// order. With no queries it returns a copy.
func (qs *QuerySet) Filter(queries ...Query) *QuerySet {
	if len(queries) == 0 {
		return qs.Clone()
	}
	start := time.Now()
	e := qs.environment()

	out := qs.derive(qs.pick(qs.matching(e, queries)))

	e.metrics.RecordFilter(len(qs.items), len(out.items), time.Since(start))
	e.logger.LogFilter(context.Background(), "filter", len(queries), len(qs.items), len(out.items))
	return out
}

// FilterFunc returns the values for which fn reports true.
func (qs *QuerySet) FilterFunc(fn func(record.Value) bool) *QuerySet {
	start := time.Now()
	e := qs.environment()

	out := make([]record.Value, 0, len(qs.items))
	for _, v := range qs.items {
		if fn(v) {
			out = append(out, v)
		}
	}

	e.metrics.RecordFilter(len(qs.items), len(out), time.Since(start))
	e.logger.LogFilter(context.Background(), "filter func", 0, len(qs.items), len(out))
	return qs.derive(out)
}

// Exclude returns the values matching none of queries. It is the exact
// complement of Filter with the same queries. With no queries it returns a
// copy.
func (qs *QuerySet) Exclude(queries ...Query) *QuerySet {
	if len(queries) == 0 {
		return qs.Clone()
	}
	start := time.Now()
	e := qs.environment()

	kept := qs.matching(e, queries).Complement(len(qs.items))
	out := qs.derive(qs.pick(kept))

	e.metrics.RecordFilter(len(qs.items), len(out.items), time.Since(start))
	e.logger.LogFilter(context.Background(), "exclude", len(queries), len(qs.items), len(out.items))
	return out
}
