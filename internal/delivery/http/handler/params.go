package handler

import (
	"net/http"
	"strconv"

	"dental-care-api/internal/domain/entity"
)

// parsePageQuery maps the standard listing query parameters onto a normalized
// PageQuery. Malformed numbers fall back to the defaults; listing endpoints
// never reject paging input.
func parsePageQuery(r *http.Request, defaultSortBy string) entity.PageQuery {
	query := r.URL.Query()

	page := 0
	if raw := query.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	size := entity.DefaultPageSize
	if raw := query.Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	return entity.NewPageQuery(page, size, sortBy, query.Get("sortDirection"), query.Get("search"))
}
