package queryset_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hupe1980/queryset"
	"github.com/hupe1980/queryset/codec"
	"github.com/hupe1980/queryset/testutil"
)

var benchSizes = []int{1_000, 10_000}

func benchQuerySet(b *testing.B, n int, opts ...queryset.Option) *queryset.QuerySet {
	b.Helper()
	rng := testutil.NewRNG(42)
	return queryset.FromRecords(rng.Records(n), opts...)
}

// BenchmarkFilter measures single and OR-ed queries over nested paths.
func BenchmarkFilter(b *testing.B) {
	for _, n := range benchSizes {
		qs := benchQuerySet(b, n)

		b.Run(fmt.Sprintf("single/n=%d", n), func(b *testing.B) {
			q := queryset.Query{"profile__active": true, "invoices__amount__gte": 100}
			b.ReportAllocs()
			for b.Loop() {
				qs.Filter(q)
			}
		})

		b.Run(fmt.Sprintf("or/n=%d", n), func(b *testing.B) {
			rng := testutil.NewRNG(7)
			queries := make([]queryset.Query, 4)
			for i := range queries {
				queries[i] = rng.Query()
			}
			b.ReportAllocs()
			for b.Loop() {
				qs.Filter(queries...)
			}
		})

		b.Run(fmt.Sprintf("exclude/n=%d", n), func(b *testing.B) {
			q := queryset.Query{"name__icontains": "a"}
			b.ReportAllocs()
			for b.Loop() {
				qs.Exclude(q)
			}
		})
	}
}

// BenchmarkOrderBy measures multi-field stable ordering.
func BenchmarkOrderBy(b *testing.B) {
	for _, n := range benchSizes {
		qs := benchQuerySet(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				qs.Clone().OrderBy("name", "-profile__kudos", "profile__created_at")
			}
		})
	}
}

// BenchmarkDistinct compares identity and field-based distinct.
func BenchmarkDistinct(b *testing.B) {
	qs := benchQuerySet(b, 1_000)

	b.Run("identity", func(b *testing.B) {
		for b.Loop() {
			qs.Distinct()
		}
	})
	b.Run("fields", func(b *testing.B) {
		for b.Loop() {
			qs.Distinct("profile__locale", "profile__active")
		}
	})
}

// BenchmarkAggregate measures extraction plus aggregation over nested arrays.
func BenchmarkAggregate(b *testing.B) {
	qs := benchQuerySet(b, 10_000)

	b.Run("sum", func(b *testing.B) {
		for b.Loop() {
			qs.Sum("invoices__amount")
		}
	})
	b.Run("max-date", func(b *testing.B) {
		for b.Loop() {
			qs.Max("invoices__date")
		}
	})
}

// BenchmarkDump measures serialization per compression.
func BenchmarkDump(b *testing.B) {
	for _, comp := range []codec.Compression{codec.CompressionNone, codec.CompressionZSTD, codec.CompressionLZ4} {
		qs := benchQuerySet(b, 1_000, queryset.WithCompression(comp))
		b.Run(comp.String(), func(b *testing.B) {
			var buf bytes.Buffer
			b.ReportAllocs()
			for b.Loop() {
				buf.Reset()
				if err := qs.Dump(&buf); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(buf.Len()), "bytes")
		})
	}
}
