package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByScore    = "score"
	orderByPrice    = "price"
	orderByMileage  = "mileage"
	orderByYear     = "year"
	orderByLastSeen = "last_seen"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByScore:    "score DESC NULLS LAST",
	orderByPrice:    "price_eur ASC NULLS LAST",
	orderByMileage:  "mileage_km ASC NULLS LAST",
	orderByYear:     "year DESC NULLS LAST",
	orderByLastSeen: "last_seen_at DESC",
}

const defaultOrderBy = "last_seen_at DESC"

const baseListingsSelect = `SELECT ` + listingColumns + `
FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Brand != nil {
		conditions = append(conditions, fmt.Sprintf("lower(brand) = lower($%d)", paramIdx))
		args = append(args, *q.Brand)
		paramIdx++
	}

	if q.Model != nil {
		conditions = append(conditions, fmt.Sprintf("lower(model) = lower($%d)", paramIdx))
		args = append(args, *q.Model)
		paramIdx++
	}

	if q.Year != nil {
		conditions = append(conditions, fmt.Sprintf("year = $%d", paramIdx))
		args = append(args, *q.Year)
		paramIdx++
	}

	if q.FuelType != nil {
		conditions = append(conditions, fmt.Sprintf("fuel_type = $%d", paramIdx))
		args = append(args, *q.FuelType)
		paramIdx++
	}

	if q.Transmission != nil {
		conditions = append(conditions, fmt.Sprintf("transmission = $%d", paramIdx))
		args = append(args, *q.Transmission)
		paramIdx++
	}

	if q.Tier != nil {
		conditions = append(conditions, fmt.Sprintf("score_tier = $%d", paramIdx))
		args = append(args, *q.Tier)
		paramIdx++
	}

	if q.MinScore != nil {
		conditions = append(conditions, fmt.Sprintf("score >= $%d", paramIdx))
		args = append(args, *q.MinScore)
		paramIdx++
	}

	if q.MaxScore != nil {
		conditions = append(conditions, fmt.Sprintf("score <= $%d", paramIdx))
		args = append(args, *q.MaxScore)
		paramIdx++
	}

	if q.MaxPriceEUR != nil {
		conditions = append(conditions, fmt.Sprintf("price_eur <= $%d", paramIdx))
		args = append(args, *q.MaxPriceEUR)
		paramIdx++
	}

	if q.ActiveOnly {
		conditions = append(conditions, "is_active = true")
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
		baseListingsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}
