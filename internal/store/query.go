package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByScore     = "score"
	orderByPrice     = "price"
	orderByCreatedAt = "created_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByScore:     "score DESC",
	orderByPrice:     "verified_price ASC",
	orderByCreatedAt: "created_at DESC",
}

const defaultOrderBy = "score DESC"

const baseDealsSelect = `SELECT id, title, store,
	verified_mrp, verified_price, verified_discount,
	link, rating, COALESCE(category, ''),
	COALESCE(seller_name, ''), seller_rating, fulfilled_by_platform,
	score, grade, confidence_score,
	COALESCE(source_channel, ''), COALESCE(image_url, ''),
	offer_ends_at, created_at, updated_at
FROM deals`

const countDealsSelect = "SELECT COUNT(*) FROM deals"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a catalog
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *DealQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Store != nil {
		conditions = append(conditions, fmt.Sprintf("store = $%d", paramIdx))
		args = append(args, *q.Store)
		paramIdx++
	}

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.MinScore != nil {
		conditions = append(conditions, fmt.Sprintf("score >= $%d", paramIdx))
		args = append(args, *q.MinScore)
		paramIdx++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("verified_price <= $%d", paramIdx))
		args = append(args, *q.MaxPrice)
		paramIdx++
	}

	if q.ActiveOnly {
		conditions = append(conditions, "offer_ends_at > now()")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseDealsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countDealsSelect + whereClause

	return dataSQL, countSQL, args
}
