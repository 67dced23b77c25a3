package queryset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/queryset/lookup"
	"github.com/hupe1980/queryset/record"
	"github.com/hupe1980/queryset/testutil"
)

func TestProperty_ExcludeIsComplement(t *testing.T) {
	rng := testutil.NewRNG(4711)
	qs := FromRecords(rng.Records(200))

	for range 100 {
		q := Query(rng.Query())

		filtered := qs.Filter(q)
		excluded := qs.Exclude(q)

		assert.Equal(t, qs.Count(), filtered.Count()+excluded.Count(), q)
		assert.Equal(t, 0, filtered.Exclude(q).Count(), q)
		assert.Equal(t, 0, excluded.Filter(q).Count(), q)
	}
}

func TestProperty_FilterOrIsUnion(t *testing.T) {
	rng := testutil.NewRNG(42)
	qs := FromRecords(rng.Records(150))

	for range 50 {
		a, b := Query(rng.Query()), Query(rng.Query())

		union := qs.Filter(a, b)
		assert.Equal(t, union.Count(), qs.Filter(a).Count()+qs.Filter(b).Exclude(a).Count())
	}
}

func TestProperty_OrderByIsStablePermutation(t *testing.T) {
	rng := testutil.NewRNG(7)
	recs := rng.Records(100)

	for _, field := range []string{"name", "-profile__kudos", "profile__created_at", "-profile__active", "invoices__amount"} {
		qs := FromRecords(recs).OrderBy(field)
		assert.Equal(t, len(recs), qs.Count())
		assert.Equal(t, len(recs), qs.Distinct().Count(), field)

		before := qs.Values()
		qs.OrderBy()
		assert.Equal(t, before, qs.Values())
	}
}

func TestProperty_ValuesListCount(t *testing.T) {
	rng := testutil.NewRNG(99)
	recs := rng.Records(100)
	qs := FromRecords(recs)

	for _, path := range []string{"name", "invoices__amount", "profile__locale", "invoices", "pk"} {
		segs := lookup.Compile(path, lookup.DefaultSeparator).Segments
		want := 0
		for _, r := range recs {
			want += len(lookup.Collect(record.Object(r), segs, nil))
		}
		assert.Equal(t, want, qs.ValuesList(path).Count(), path)
	}
}

func TestProperty_DistinctFieldUnique(t *testing.T) {
	rng := testutil.NewRNG(5)
	qs := FromRecords(rng.Records(120))

	for _, field := range []string{"name", "profile__locale", "profile__active"} {
		d := qs.Distinct(field)
		seen := map[string]bool{}
		for _, v := range d.Values() {
			val, ok := lookup.Resolve(v, lookup.Compile(field, "__").Segments)
			k := "missing"
			if ok {
				k = val.Key()
			}
			assert.False(t, seen[k], "%s duplicated in distinct(%s)", k, field)
			seen[k] = true
		}
	}
}

func TestProperty_ConcurrentScanMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(11)
	recs := rng.Records(3 * parallelThreshold)

	seq := FromRecords(recs)
	par := FromRecords(recs, WithConcurrency(4))

	for range 20 {
		a, b := Query(rng.Query()), Query(rng.Query())

		want := seq.Filter(a, b)
		got := par.Filter(a, b)
		assert.Equal(t, want.Count(), got.Count())
		for i, v := range want.All() {
			w, _ := got.At(i)
			assert.Equal(t, v.Key(), w.Key())
		}

		assert.Equal(t, seq.Exclude(a).Count(), par.Exclude(a).Count())
	}
}
