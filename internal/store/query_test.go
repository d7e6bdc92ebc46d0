package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDealQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         DealQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: DealQuery{},
			wantDataHas: []string{
				"FROM deals",
				"ORDER BY score DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM deals",
			wantArgs:      nil,
		},
		{
			name: "store filter",
			query: DealQuery{
				Store: ptr("Amazon"),
			},
			wantDataHas: []string{
				"WHERE store = $1",
				"LIMIT 50",
			},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE store = $1",
			wantArgs:     []any{"Amazon"},
		},
		{
			name: "category filter",
			query: DealQuery{
				Category: ptr("electronics"),
			},
			wantDataHas:  []string{"WHERE category = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE category = $1",
			wantArgs:     []any{"electronics"},
		},
		{
			name: "min score filter",
			query: DealQuery{
				MinScore: ptr(70.0),
			},
			wantDataHas:  []string{"WHERE score >= $1"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE score >= $1",
			wantArgs:     []any{70.0},
		},
		{
			name: "active only filter takes no parameter",
			query: DealQuery{
				ActiveOnly: true,
			},
			wantDataHas:  []string{"WHERE offer_ends_at > now()"},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE offer_ends_at > now()",
			wantArgs:     nil,
		},
		{
			name: "combined filters number parameters in order",
			query: DealQuery{
				Store:      ptr("Flipkart"),
				MinScore:   ptr(60.0),
				MaxPrice:   ptr(5000.0),
				ActiveOnly: true,
			},
			wantDataHas: []string{
				"store = $1",
				"score >= $2",
				"verified_price <= $3",
				"offer_ends_at > now()",
			},
			wantArgs: []any{"Flipkart", 60.0, 5000.0},
			wantCountSQL: "SELECT COUNT(*) FROM deals WHERE store = $1 AND " +
				"score >= $2 AND verified_price <= $3 AND offer_ends_at > now()",
		},
		{
			name: "order by price",
			query: DealQuery{
				OrderBy: "price",
			},
			wantDataHas:  []string{"ORDER BY verified_price ASC"},
			wantCountSQL: "SELECT COUNT(*) FROM deals",
			wantArgs:     nil,
		},
		{
			name: "invalid order by falls back to default",
			query: DealQuery{
				OrderBy: "sneaky; DROP TABLE deals",
			},
			wantDataHas:  []string{"ORDER BY score DESC"},
			wantCountSQL: "SELECT COUNT(*) FROM deals",
			wantArgs:     nil,
		},
		{
			name: "limit is clamped to max",
			query: DealQuery{
				Limit: 100000,
			},
			wantDataHas:  []string{"LIMIT 500"},
			wantCountSQL: "SELECT COUNT(*) FROM deals",
			wantArgs:     nil,
		},
		{
			name: "negative offset becomes zero",
			query: DealQuery{
				Offset: -10,
			},
			wantDataHas:  []string{"OFFSET 0"},
			wantCountSQL: "SELECT COUNT(*) FROM deals",
			wantArgs:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, want := range tt.wantDataHas {
				assert.Contains(t, dataSQL, want)
			}
			for _, notWant := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, notWant)
			}

			require.Equal(t, tt.wantCountSQL, countSQL)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
