package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageResponse(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		page := NewPageResponse([]string{"a", "b"}, 0, 10, 15)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, int64(15), page.TotalElements)
	})

	t.Run("exact multiple needs no extra page", func(t *testing.T) {
		page := NewPageResponse([]string{"a"}, 0, 10, 20)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		page := NewPageResponse([]string{}, 0, 10, 0)
		assert.Equal(t, 0, page.TotalPages)
		assert.Empty(t, page.Content)
	})

	t.Run("nil content serializes as an empty array", func(t *testing.T) {
		page := NewPageResponse[string](nil, 0, 10, 0)

		raw, err := json.Marshal(page)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"content":[]`)
	})
}
