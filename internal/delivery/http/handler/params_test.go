package handler

import (
	"net/http/httptest"
	"testing"

	"dental-care-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestParsePageQuery(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		defaultSortBy string
		expected      entity.PageQuery
	}{
		{
			name:          "no parameters uses defaults",
			url:           "/patients",
			defaultSortBy: "id",
			expected:      entity.PageQuery{Page: 0, Size: 10, SortBy: "id", SortDirection: entity.SortAsc},
		},
		{
			name:          "full parameter set",
			url:           "/patients?page=2&size=25&sortBy=lastName&sortDirection=desc&search=smith",
			defaultSortBy: "id",
			expected:      entity.PageQuery{Page: 2, Size: 25, SortBy: "lastName", SortDirection: entity.SortDesc, Search: "smith"},
		},
		{
			name:          "malformed numbers fall back to defaults",
			url:           "/patients?page=abc&size=xyz",
			defaultSortBy: "id",
			expected:      entity.PageQuery{Page: 0, Size: 10, SortBy: "id", SortDirection: entity.SortAsc},
		},
		{
			name:          "out of range values are clamped",
			url:           "/patients?page=-3&size=9999",
			defaultSortBy: "id",
			expected:      entity.PageQuery{Page: 0, Size: entity.MaxPageSize, SortBy: "id", SortDirection: entity.SortAsc},
		},
		{
			name:          "resource specific default sort field",
			url:           "/medicines",
			defaultSortBy: "name",
			expected:      entity.PageQuery{Page: 0, Size: 10, SortBy: "name", SortDirection: entity.SortAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.expected, parsePageQuery(r, tt.defaultSortBy))
		})
	}
}
