package impl

import (
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	cfg := config.PaginationConfig{DefaultLimit: 5, MaxLimit: 100}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 5},
		{"negative page", -3, 10, 1, 10},
		{"limit capped", 1, 500, 1, 100},
		{"passthrough", 4, 20, 4, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePage(tt.page, tt.limit, cfg)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 5))
	assert.Equal(t, 1, totalPages(5, 5))
	assert.Equal(t, 2, totalPages(6, 5))
	assert.Equal(t, 3, totalPages(11, 5))
	assert.Equal(t, 0, totalPages(10, 0))
}
