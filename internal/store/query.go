package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated   = "created_at"
	orderByCosted    = "costed_at"
	orderByReference = "reference"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated:   "created_at DESC",
	orderByCosted:    "costed_at DESC NULLS LAST",
	orderByReference: "reference ASC",
}

const defaultOrderBy = "created_at DESC"

const baseInspectionsSelect = `SELECT id, reference, code_1, code_2, code_3, code_4,
	total_cost, COALESCE(cost_kind, ''), COALESCE(cost_error, ''),
	costed_at, created_at
FROM inspections`

const countInspectionsSelect = "SELECT COUNT(*) FROM inspections"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an inspection
// query. It returns two SQL strings (one for the data query, one for the count
// query) and the positional parameters.
func (q *InspectionQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.CostKind != nil {
		conditions = append(conditions, fmt.Sprintf("cost_kind = $%d", paramIdx))
		args = append(args, string(*q.CostKind))
		paramIdx++
	}

	if q.Costed != nil {
		if *q.Costed {
			conditions = append(conditions, "costed_at IS NOT NULL")
		} else {
			conditions = append(conditions, "costed_at IS NULL")
		}
	}

	if q.Failed != nil {
		if *q.Failed {
			conditions = append(conditions, "cost_error IS NOT NULL")
		} else {
			conditions = append(conditions, "cost_error IS NULL")
		}
	}

	if q.Reference != nil {
		conditions = append(conditions, fmt.Sprintf("reference LIKE $%d", paramIdx))
		args = append(args, escapeLike(*q.Reference)+"%")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

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
		baseInspectionsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countInspectionsSelect + whereClause

	return dataSQL, countSQL, args
}

// escapeLike escapes LIKE wildcards so a reference is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
