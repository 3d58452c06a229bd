package shared_test

import (
	"salon/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit equals total",
			total:    10,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"r_1", "r_2", "r_3", "r_4", "r_5"}

	tests := []struct {
		name     string
		page     int
		limit    int
		expected []string
	}{
		{name: "first page", page: 1, limit: 2, expected: []string{"r_1", "r_2"}},
		{name: "last partial page", page: 3, limit: 2, expected: []string{"r_5"}},
		{name: "page past the end", page: 4, limit: 2, expected: []string{}},
		{name: "limit larger than items", page: 1, limit: 10, expected: items},
		{name: "zero page", page: 0, limit: 2, expected: []string{}},
		{name: "zero limit", page: 1, limit: 0, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Paginate(items, tt.page, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "view:3f2a:user:1757462400000:family", shared.BuildCacheKey("view", "3f2a", "user", int64(1757462400000), "family"))
	assert.Equal(t, "view", shared.BuildCacheKey("view"))
	assert.Equal(t, "", shared.BuildCacheKey())
}
