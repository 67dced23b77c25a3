package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/queryset/record"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// SparseFields reports, for n fields, whether each one is present.
// missingRate is the probability that a field is missing (0.3 = 30% missing).
func (r *RNG) SparseFields(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= missingRate
	}

	return present
}

var (
	names   = []string{"John Doe", "Jane Smith", "Admin", "Bob", "alice", " Eve "}
	locales = []string{"en", "de", "fr"}
	dates   = []string{"13/11/2019", "13/09/2019", "13/01/2019", "15/03/2019", "18/05/2019", "01/01/2020"}
)

// Records generates n nested records. Fields are missing at random and
// values are drawn from small pools, so that equality lookups hit.
func (r *RNG) Records(n int) []record.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]record.Record, n)
	for i := range out {
		out[i] = r.recordLocked(i)
	}
	return out
}

func (r *RNG) recordLocked(i int) record.Record {
	rec := record.Record{}

	switch r.rand.Intn(3) {
	case 0:
		rec["id"] = record.Int(int64(i + 1))
	case 1:
		rec["pk"] = record.String(fmt.Sprint(i + 1))
	}
	if r.rand.Float64() < 0.9 {
		rec["name"] = record.String(names[r.zipfLocked(len(names), 1.2)])
	}
	if r.rand.Float64() < 0.8 {
		rec["profile"] = record.Object(record.Record{
			"locale":     record.String(locales[r.rand.Intn(len(locales))]),
			"active":     record.Bool(r.rand.Intn(2) == 0),
			"kudos":      record.Int(int64(r.rand.Intn(5) * 10)),
			"created_at": record.String(dates[r.rand.Intn(len(dates))]),
		})
	}

	switch r.rand.Intn(4) {
	case 0:
		// no invoices
	case 1:
		rec["invoices"] = record.Array(nil)
	default:
		invoices := make([]record.Value, 1+r.rand.Intn(3))
		for j := range invoices {
			invoices[j] = record.Object(record.Record{
				"id":     record.Int(int64(j + 1)),
				"amount": record.Int(int64(100 * (1 + r.rand.Intn(5)))),
				"date":   record.String(dates[r.rand.Intn(len(dates))]),
			})
		}
		rec["invoices"] = record.Array(invoices)
	}

	if r.rand.Intn(5) == 0 {
		rec["deleted"] = record.Null()
	}
	return rec
}

// Query generates a random single-entry query in the "__" path syntax.
func (r *RNG) Query() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.rand.Intn(12) {
	case 0:
		return map[string]any{"name": names[r.rand.Intn(len(names))]}
	case 1:
		return map[string]any{"name__icontains": "j"}
	case 2:
		return map[string]any{"profile__active": r.rand.Intn(2) == 0}
	case 3:
		return map[string]any{"id__in": []any{1, 2, 3, 5, 8}}
	case 4:
		return map[string]any{"invoices__isnull": r.rand.Intn(2) == 0}
	case 5:
		return map[string]any{"invoices__amount__gte": 100 * (1 + r.rand.Intn(5))}
	case 6:
		return map[string]any{"profile__created_at__lt": dates[r.rand.Intn(len(dates))]}
	case 7:
		return map[string]any{"invoices__date__range": []any{"01/03/2019", "01/12/2019"}}
	case 8:
		return map[string]any{"profile__kudos__not": 20}
	case 9:
		return map[string]any{"deleted": nil}
	case 10:
		return map[string]any{"profile__locale__not_in": []any{"en"}}
	default:
		return map[string]any{
			"profile__locale":  locales[r.rand.Intn(len(locales))],
			"name__startswith": "J",
		}
	}
}
