package repository

import (
	"strings"

	"dental-care-api/internal/domain/entity"

	"gorm.io/gorm"
)

// typeaheadLimit caps unpaginated search results so a broad query cannot
// pull back the whole table.
const typeaheadLimit = 200

// applySearch adds the entity's search predicate to the query: a disjunction
// of substring matches across the declared fields. An empty search term
// leaves the query untouched, so every row still matches. Column names come
// from static SearchSpec declarations; the search term itself is only ever
// bound as a parameter.
func applySearch(db *gorm.DB, spec entity.SearchSpec, search string) *gorm.DB {
	if search == "" {
		return db
	}

	pattern := "%" + search + "%"
	folded := "%" + strings.ToLower(search) + "%"

	conds := make([]string, 0, len(spec.Fields))
	args := make([]interface{}, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		switch {
		case field.CastText:
			conds = append(conds, "CAST("+field.Column+" AS TEXT) LIKE ?")
			args = append(args, pattern)
		case field.Fold:
			conds = append(conds, "LOWER("+field.Column+") LIKE ?")
			args = append(args, folded)
		default:
			conds = append(conds, field.Column+" LIKE ?")
			args = append(args, pattern)
		}
	}

	return db.Where(strings.Join(conds, " OR "), args...)
}

// applySort orders the query by the requested sort field. Unknown fields
// fall back to the primary key so a listing endpoint never fails on a bad
// sortBy value.
func applySort(db *gorm.DB, columns map[string]string, q entity.PageQuery) *gorm.DB {
	column, ok := columns[q.SortBy]
	if !ok {
		column = "id"
	}
	return db.Order(column + " " + string(q.SortDirection))
}
