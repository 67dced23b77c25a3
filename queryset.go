package queryset

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/queryset/record"
)

// QuerySet is an ordered collection of values, normally records, with a
// query surface.
//
// Values are held by reference: derived QuerySets share the underlying
// records with the QuerySet they came from. A QuerySet is not safe for
// concurrent mutation; OrderBy and SetConfig modify the receiver.
type QuerySet struct {
	items []record.Value
	env   *env
}

// New creates a QuerySet over values. The slice is copied; the records it
// references are not.
func New(values []record.Value, opts ...Option) *QuerySet {
	return &QuerySet{
		items: slices.Clone(values),
		env:   newEnv(applyOptions(opts)),
	}
}

// FromRecords creates a QuerySet over records.
func FromRecords(records []record.Record, opts ...Option) *QuerySet {
	items := make([]record.Value, len(records))
	for i, r := range records {
		items[i] = record.Object(r)
	}
	return &QuerySet{
		items: items,
		env:   newEnv(applyOptions(opts)),
	}
}

// FromAny creates a QuerySet from plain Go values such as decoded JSON
// (map[string]any, []any, numbers, strings, booleans and nil).
func FromAny(items []any, opts ...Option) (*QuerySet, error) {
	values := make([]record.Value, len(items))
	for i, item := range items {
		v, err := record.FromAny(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		values[i] = v
	}
	return &QuerySet{
		items: values,
		env:   newEnv(applyOptions(opts)),
	}, nil
}

func (qs *QuerySet) environment() *env {
	if qs.env == nil {
		return defaultEnv()
	}
	return qs.env
}

func (qs *QuerySet) derive(items []record.Value) *QuerySet {
	return &QuerySet{items: items, env: qs.environment()}
}

// Clone returns a new QuerySet over the same values.
func (qs *QuerySet) Clone() *QuerySet {
	return qs.derive(slices.Clone(qs.items))
}

// SetConfig replaces the configuration of qs and of every QuerySet derived
// from it afterwards. Unset fields take their defaults; nothing is merged
// with the previous configuration. It returns qs.
func (qs *QuerySet) SetConfig(cfg Config) *QuerySet {
	qs.env = qs.environment().withConfig(cfg)
	return qs
}

// Config returns the active configuration.
func (qs *QuerySet) Config() Config {
	cfg := qs.environment().config
	cfg.DateFormats = slices.Clone(cfg.DateFormats)
	return cfg
}

// Get returns the first value matching q.
//
// q may be a Query (or map[string]any), or an identifier: an integer or a
// string, compared against each record's normalized id/pk.
func (qs *QuerySet) Get(q any) (record.Value, bool) {
	switch t := q.(type) {
	case nil:
		return record.Value{}, false
	case Query:
		return qs.Filter(t).First()
	case map[string]any:
		return qs.Filter(Query(t)).First()
	}

	v, err := record.FromAny(q)
	if err != nil {
		return record.Value{}, false
	}
	id, ok := record.NormalizeIdentity(v)
	if !ok {
		return record.Value{}, false
	}
	for _, item := range qs.items {
		r, ok := item.AsRecord()
		if !ok {
			continue
		}
		if rid, ok := r.Identity(); ok && record.Equal(rid, id) {
			return item, true
		}
	}
	return record.Value{}, false
}

// First returns the first value.
func (qs *QuerySet) First() (record.Value, bool) {
	if len(qs.items) == 0 {
		return record.Value{}, false
	}
	return qs.items[0], true
}

// Last returns the last value.
func (qs *QuerySet) Last() (record.Value, bool) {
	if len(qs.items) == 0 {
		return record.Value{}, false
	}
	return qs.items[len(qs.items)-1], true
}

// At returns the value at position i.
func (qs *QuerySet) At(i int) (record.Value, bool) {
	if i < 0 || i >= len(qs.items) {
		return record.Value{}, false
	}
	return qs.items[i], true
}

// Exists reports whether qs holds at least one value.
func (qs *QuerySet) Exists() bool {
	return len(qs.items) > 0
}

// Count returns the number of values.
func (qs *QuerySet) Count() int {
	return len(qs.items)
}

// Values returns the values in order.
func (qs *QuerySet) Values() []record.Value {
	return slices.Clone(qs.items)
}

// Records returns the record values in order, skipping anything that is
// not a record.
func (qs *QuerySet) Records() []record.Record {
	out := make([]record.Record, 0, len(qs.items))
	for _, v := range qs.items {
		if r, ok := v.AsRecord(); ok {
			out = append(out, r)
		}
	}
	return out
}

// All iterates the values with their positions.
func (qs *QuerySet) All() iter.Seq2[int, record.Value] {
	return func(yield func(int, record.Value) bool) {
		for i, v := range qs.items {
			if !yield(i, v) {
				return
			}
		}
	}
}
