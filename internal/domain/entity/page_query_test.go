package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageQuery(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		size          int
		sortBy        string
		sortDirection string
		search        string
		expected      PageQuery
	}{
		{
			name: "defaults",
			page: 0, size: DefaultPageSize,
			expected: PageQuery{Page: 0, Size: 10, SortBy: "id", SortDirection: SortAsc, Search: ""},
		},
		{
			name: "negative page clamps to zero",
			page: -5, size: 20,
			expected: PageQuery{Page: 0, Size: 20, SortBy: "id", SortDirection: SortAsc},
		},
		{
			name: "zero size clamps to one",
			page: 2, size: 0,
			expected: PageQuery{Page: 2, Size: 1, SortBy: "id", SortDirection: SortAsc},
		},
		{
			name: "oversized page size clamps to maximum",
			page: 0, size: 5000,
			expected: PageQuery{Page: 0, Size: MaxPageSize, SortBy: "id", SortDirection: SortAsc},
		},
		{
			name: "desc direction is case insensitive",
			page: 0, size: 10, sortDirection: "DESC",
			expected: PageQuery{Page: 0, Size: 10, SortBy: "id", SortDirection: SortDesc},
		},
		{
			name: "invalid direction falls back to asc",
			page: 0, size: 10, sortDirection: "sideways",
			expected: PageQuery{Page: 0, Size: 10, SortBy: "id", SortDirection: SortAsc},
		},
		{
			name: "sort field and search are carried through",
			page: 1, size: 25, sortBy: "lastName", sortDirection: "desc", search: "smith",
			expected: PageQuery{Page: 1, Size: 25, SortBy: "lastName", SortDirection: SortDesc, Search: "smith"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageQuery(tt.page, tt.size, tt.sortBy, tt.sortDirection, tt.search)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPageQueryOffset(t *testing.T) {
	assert.Equal(t, 0, NewPageQuery(0, 10, "", "", "").Offset())
	assert.Equal(t, 20, NewPageQuery(2, 10, "", "", "").Offset())
	assert.Equal(t, 75, NewPageQuery(3, 25, "", "", "").Offset())
}
