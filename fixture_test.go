package queryset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/queryset/record"
)

func usersFixture(t *testing.T) []record.Record {
	t.Helper()

	raw := []map[string]any{
		{
			"id":    1,
			"name":  "John Doe",
			"group": "users",
			"profile": map[string]any{
				"locale":     "en",
				"created_at": "13/11/2019",
				"active":     true,
				"kudos":      42,
			},
			"invoices": []any{
				map[string]any{
					"id":     1,
					"amount": 100,
					"date":   "13/12/2019",
					"items": []any{
						map[string]any{"id": 1, "amount": 50},
						map[string]any{"id": 2, "amount": 50},
					},
				},
				map[string]any{
					"id":     2,
					"amount": 100,
					"date":   "17/11/2019",
					"items": []any{
						map[string]any{"id": 3, "amount": 50},
						map[string]any{"id": 4, "amount": 50},
					},
				},
			},
		},
		{
			"pk":    2,
			"name":  "Jane Smith",
			"group": "users",
			"profile": map[string]any{
				"locale":     "en",
				"created_at": "13/09/2019",
				"active":     false,
				"kudos":      100,
			},
			"invoices": []any{
				map[string]any{
					"id":     3,
					"amount": 500,
					"date":   "15/03/2019",
					"items": []any{
						map[string]any{"id": 5, "amount": 100},
						map[string]any{"pk": 6, "amount": 400},
					},
				},
				map[string]any{
					"pk":     4,
					"amount": 1000,
					"date":   "18/05/2019",
					"items": []any{
						map[string]any{"id": 7, "amount": 100},
						map[string]any{"id": 8, "amount": 900},
					},
				},
			},
		},
		{
			"name":  "Admin",
			"group": "users",
			"profile": map[string]any{
				"locale":     "en",
				"created_at": "13/01/2019",
				"active":     true,
				"kudos":      1000,
			},
			"pk": 3,
		},
	}

	out := make([]record.Record, len(raw))
	for i, m := range raw {
		r, err := record.RecordFromAny(m)
		require.NoError(t, err)
		out[i] = r
	}
	return out
}

func usersQS(t *testing.T, opts ...Option) *QuerySet {
	t.Helper()
	return FromRecords(usersFixture(t), opts...)
}

// nameOf returns the "name" field of v, or "" when there is none.
func nameOf(v record.Value, ok bool) string {
	if !ok {
		return ""
	}
	n, _ := v.Field("name")
	return n.StringValue()
}

func ints(vals []record.Value) []int64 {
	out := make([]int64, len(vals))
	for i, v := range vals {
		out[i] = v.I64
	}
	return out
}
