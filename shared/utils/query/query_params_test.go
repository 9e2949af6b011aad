package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    ListParams
		maxLimit  int
		wantPage  int
		wantLimit int
	}{
		{name: "valid values untouched", params: ListParams{Page: 2, Limit: 20}, maxLimit: 100, wantPage: 2, wantLimit: 20},
		{name: "zero page clamps to 1", params: ListParams{Page: 0, Limit: 10}, maxLimit: 100, wantPage: 1, wantLimit: 10},
		{name: "negative page clamps to 1", params: ListParams{Page: -5, Limit: 10}, maxLimit: 100, wantPage: 1, wantLimit: 10},
		{name: "zero limit clamps to 1", params: ListParams{Page: 1, Limit: 0}, maxLimit: 100, wantPage: 1, wantLimit: 1},
		{name: "oversized limit clamps to max", params: ListParams{Page: 1, Limit: 500}, maxLimit: 100, wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.params.Clamp(tt.maxLimit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		limit int
		want  int64
	}{
		{name: "empty collection has zero pages", total: 0, limit: 10, want: 0},
		{name: "exact fit", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "single item", total: 1, limit: 10, want: 1},
		{name: "limit of one", total: 3, limit: 1, want: 3},
		{name: "invalid limit", total: 10, limit: 0, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestBuildPaginationResponse(t *testing.T) {
	t.Parallel()

	resp := BuildPaginationResponse(2, 10, 21)

	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, int64(21), resp.Total)
	assert.Equal(t, int64(3), resp.TotalPages)
}
