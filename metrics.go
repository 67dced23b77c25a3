package queryset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFilter is called after each Filter, FilterFunc and Exclude.
	// in and out are the sizes before and after.
	RecordFilter(in, out int, duration time.Duration)

	// RecordOrder is called after each OrderBy.
	RecordOrder(n int, duration time.Duration)

	// RecordAggregate is called after each Sum, Avg, Min and Max.
	// n is the number of values aggregated.
	RecordAggregate(op string, n int, duration time.Duration)

	// RecordDistinct is called after each Distinct.
	RecordDistinct(in, out int, duration time.Duration)

	// RecordLoad is called after each Load. err is nil if successful.
	RecordLoad(n int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFilter(int, int, time.Duration)       {}
func (NoopMetricsCollector) RecordOrder(int, time.Duration)             {}
func (NoopMetricsCollector) RecordAggregate(string, int, time.Duration) {}
func (NoopMetricsCollector) RecordDistinct(int, int, time.Duration)     {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FilterCount      atomic.Int64
	FilterScanned    atomic.Int64
	FilterMatched    atomic.Int64
	FilterTotalNanos atomic.Int64
	OrderCount       atomic.Int64
	OrderTotalNanos  atomic.Int64
	AggregateCount   atomic.Int64
	AggregateValues  atomic.Int64
	DistinctCount    atomic.Int64
	DistinctRemoved  atomic.Int64
	LoadCount        atomic.Int64
	LoadRecords      atomic.Int64
	LoadErrors       atomic.Int64
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(in, out int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterScanned.Add(int64(in))
	b.FilterMatched.Add(int64(out))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// RecordOrder implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOrder(n int, duration time.Duration) {
	b.OrderCount.Add(1)
	b.OrderTotalNanos.Add(duration.Nanoseconds())
}

// RecordAggregate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAggregate(op string, n int, duration time.Duration) {
	b.AggregateCount.Add(1)
	b.AggregateValues.Add(int64(n))
}

// RecordDistinct implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistinct(in, out int, duration time.Duration) {
	b.DistinctCount.Add(1)
	b.DistinctRemoved.Add(int64(in - out))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(n int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRecords.Add(int64(n))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FilterCount:     b.FilterCount.Load(),
		FilterScanned:   b.FilterScanned.Load(),
		FilterMatched:   b.FilterMatched.Load(),
		FilterAvgNanos:  avgNanos(b.FilterTotalNanos.Load(), b.FilterCount.Load()),
		OrderCount:      b.OrderCount.Load(),
		OrderAvgNanos:   avgNanos(b.OrderTotalNanos.Load(), b.OrderCount.Load()),
		AggregateCount:  b.AggregateCount.Load(),
		AggregateValues: b.AggregateValues.Load(),
		DistinctCount:   b.DistinctCount.Load(),
		DistinctRemoved: b.DistinctRemoved.Load(),
		LoadCount:       b.LoadCount.Load(),
		LoadRecords:     b.LoadRecords.Load(),
		LoadErrors:      b.LoadErrors.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FilterCount     int64
	FilterScanned   int64
	FilterMatched   int64
	FilterAvgNanos  int64
	OrderCount      int64
	OrderAvgNanos   int64
	AggregateCount  int64
	AggregateValues int64
	DistinctCount   int64
	DistinctRemoved int64
	LoadCount       int64
	LoadRecords     int64
	LoadErrors      int64
}
