package queryset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/queryset/datefmt"
	"github.com/hupe1980/queryset/record"
)

func TestSetConfig_Separator(t *testing.T) {
	qs := usersQS(t)
	qs.SetConfig(Config{Separator: "."})

	assert.Equal(t, 2, qs.Filter(Query{"profile.active": true}).Count())

	got := qs.Filter(Query{"profile.active": true}).Filter(Query{"invoices.pk.in": []int{1, 2}})
	assert.Equal(t, 1, got.Count())

	names := got.ValuesList("name")
	first, ok := names.First()
	require.True(t, ok)
	assert.Equal(t, "John Doe", first.StringValue())
	assert.Equal(t, ".", names.Config().Separator)

	qs.SetConfig(Config{Separator: "__"})
	assert.Equal(t, 2, qs.Filter(Query{"profile__active": true}).Count())
}

func TestSetConfig_ResetsUnsetFields(t *testing.T) {
	qs := usersQS(t, WithDateFormats("YYYY-MM-DD"))
	assert.Equal(t, []string{"YYYY-MM-DD"}, qs.Config().DateFormats)

	qs.SetConfig(Config{Separator: "."})
	assert.Equal(t, datefmt.DefaultFormats, qs.Config().DateFormats)

	qs.SetConfig(Config{})
	assert.Equal(t, "__", qs.Config().Separator)
}

func TestSetConfig_DoesNotAffectEarlierDerived(t *testing.T) {
	qs := usersQS(t)
	derived := qs.Filter(Query{"profile__active": true})

	qs.SetConfig(Config{Separator: "."})
	assert.Equal(t, "__", derived.Config().Separator)
	assert.Equal(t, ".", qs.Filter().Config().Separator)
}

func TestDateFormats(t *testing.T) {
	recs := []record.Record{
		{"name": record.String("a"), "at": record.String("2019-12-13")},
		{"name": record.String("b"), "at": record.String("2019-03-15")},
		{"name": record.String("c"), "at": record.String("2019-11-17")},
	}

	qs := FromRecords(recs, WithDateFormats("YYYY-MM-DD"))
	assert.Equal(t, 2, qs.Filter(Query{"at__gt": "2019-06-01"}).Count())
	assert.Equal(t, "b", nameOf(qs.Clone().OrderBy("at").First()))

	// Day-first strings sort wrongly as plain text and correctly as dates.
	dayFirst := []record.Record{
		{"name": record.String("late"), "at": record.String("01/12/2019")},
		{"name": record.String("early"), "at": record.String("31/01/2019")},
	}
	dated := FromRecords(dayFirst)
	assert.Equal(t, "early", nameOf(dated.OrderBy("at").First()))

	plain := FromRecords(dayFirst, WithDateParser(nil))
	assert.Equal(t, "late", nameOf(plain.OrderBy("at").First()))

	disabled := FromRecords(dayFirst, WithDateFormats())
	assert.Equal(t, "late", nameOf(disabled.OrderBy("at").First()))
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
separator: "."
date_formats:
  - DD/MM/YYYY
  - YYYY-MM-DD
`))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Separator)
	assert.Equal(t, []string{"DD/MM/YYYY", "YYYY-MM-DD"}, cfg.DateFormats)

	cfg, err = ParseConfig([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = ParseConfig([]byte("separator: [unterminated"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWithConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`separator: "/"`))
	require.NoError(t, err)

	qs := usersQS(t, WithConfig(cfg))
	assert.Equal(t, 2, qs.Filter(Query{"profile/active": true}).Count())
}

func TestWithPathCacheSize(t *testing.T) {
	qs := usersQS(t, WithPathCacheSize(0))
	assert.Equal(t, 2, qs.Filter(Query{"profile__active": true}).Count())
	assert.Equal(t, 2, qs.Filter(Query{"profile__active": true}).Count())
}
