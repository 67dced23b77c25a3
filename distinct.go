package queryset

import (
	"context"
	"reflect"
	"time"

	"github.com/hupe1980/queryset/internal/bitmap"
	"github.com/hupe1980/queryset/lookup"
	"github.com/hupe1980/queryset/record"
)

// Distinct removes duplicates, keeping the first occurrence.
//
// Without fields, records and arrays are duplicates only when they are the
// same reference; scalars are duplicates when equal. With fields, a value
// is dropped when some already kept value matches it on every field, using
// the same matching as Filter with the field's resolved value as target.
func (qs *QuerySet) Distinct(fields ...string) *QuerySet {
	start := time.Now()
	e := qs.environment()

	var out []record.Value
	if len(fields) == 0 {
		out = distinctByIdentity(qs.items)
	} else {
		out = qs.distinctByFields(e, fields)
	}

	e.metrics.RecordDistinct(len(qs.items), len(out), time.Since(start))
	e.logger.LogDistinct(context.Background(), fields, len(qs.items), len(out))
	return qs.derive(out)
}

type identityKey struct {
	kind record.Kind
	ptr  uintptr
	n    int
	key  string
}

func identityOf(v record.Value) identityKey {
	switch v.Kind {
	case record.KindObject:
		return identityKey{kind: v.Kind, ptr: reflect.ValueOf(v.O).Pointer()}
	case record.KindArray:
		return identityKey{kind: v.Kind, ptr: reflect.ValueOf(v.A).Pointer(), n: len(v.A)}
	default:
		return identityKey{key: v.Key()}
	}
}

func distinctByIdentity(items []record.Value) []record.Value {
	seen := make(map[identityKey]struct{}, len(items))
	out := make([]record.Value, 0, len(items))
	for _, v := range items {
		k := identityOf(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (qs *QuerySet) distinctByFields(e *env, fields []string) []record.Value {
	paths := make([]lookup.Path, len(fields))
	for i, f := range fields {
		paths[i] = e.compile(f)
	}

	kept := bitmap.NewMask(len(qs.items))
	targets := make([]record.Value, len(paths))
	for i, v := range qs.items {
		for j, p := range paths {
			t, ok := lookup.Resolve(v, p.Segments)
			if !ok {
				t = record.Null()
			}
			targets[j] = t
		}
		if !qs.anyKeptMatches(e, kept, paths, targets) {
			kept.Set(i)
		}
	}

	out := make([]record.Value, 0, kept.Count())
	for i := range kept.Positions() {
		out = append(out, qs.items[i])
	}
	return out
}

func (qs *QuerySet) anyKeptMatches(e *env, kept *bitmap.Mask, paths []lookup.Path, targets []record.Value) bool {
	for k := range kept.Positions() {
		all := true
		for j, p := range paths {
			if !e.matcher.Match(qs.items[k], p, targets[j]) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
