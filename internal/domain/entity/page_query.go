package entity

import "strings"

// SortDirection is the normalized sort order for listing queries.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	// DefaultPageSize is used when a request does not specify a page size.
	DefaultPageSize = 10
	// MaxPageSize caps the size of a single listing page.
	MaxPageSize = 100
)

// PageQuery is a canonical paging, sorting, and search descriptor.
// Build it with NewPageQuery: every input is clamped or defaulted, never
// rejected, so a listing request cannot fail on bad paging parameters.
type PageQuery struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection SortDirection
	Search        string
}

// NewPageQuery normalizes raw paging input into a PageQuery.
func NewPageQuery(page, size int, sortBy, sortDirection, search string) PageQuery {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if sortBy == "" {
		sortBy = "id"
	}

	direction := SortAsc
	if strings.EqualFold(sortDirection, string(SortDesc)) {
		direction = SortDesc
	}

	return PageQuery{
		Page:          page,
		Size:          size,
		SortBy:        sortBy,
		SortDirection: direction,
		Search:        search,
	}
}

// Offset returns the row offset of the requested page window.
func (q PageQuery) Offset() int {
	return q.Page * q.Size
}
