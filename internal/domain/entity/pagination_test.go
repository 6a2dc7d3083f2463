package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
)

func TestPaginationParams_Validate(t *testing.T) {
	cases := []struct {
		name     string
		in       entity.PaginationParams
		sortable []string
		want     entity.PaginationParams
	}{
		{
			name:     "defaults applied",
			in:       entity.PaginationParams{},
			sortable: []string{"created_at", "amount"},
			want:     entity.PaginationParams{Page: 1, Size: 20, SortBy: "created_at", SortDir: "desc"},
		},
		{
			name:     "oversized page clamped",
			in:       entity.PaginationParams{Page: 3, Size: 5000},
			sortable: []string{"created_at"},
			want:     entity.PaginationParams{Page: 3, Size: 100, SortBy: "created_at", SortDir: "desc"},
		},
		{
			name:     "allowed sort column kept",
			in:       entity.PaginationParams{Page: 2, Size: 10, SortBy: "amount", SortDir: "asc"},
			sortable: []string{"created_at", "amount"},
			want:     entity.PaginationParams{Page: 2, Size: 10, SortBy: "amount", SortDir: "asc"},
		},
		{
			name:     "injection attempt falls back to created_at",
			in:       entity.PaginationParams{SortBy: "amount; DROP TABLE donations", SortDir: "ASC"},
			sortable: []string{"created_at", "amount"},
			want:     entity.PaginationParams{Page: 1, Size: 20, SortBy: "created_at", SortDir: "asc"},
		},
		{
			name:     "negative page resets",
			in:       entity.PaginationParams{Page: -4, Size: -1, SortDir: "sideways"},
			sortable: []string{"created_at"},
			want:     entity.PaginationParams{Page: 1, Size: 20, SortBy: "created_at", SortDir: "desc"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Validate(tc.sortable...)
			assert.Equal(t, tc.want, tc.in)
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	p := entity.PaginationParams{Page: 3, Size: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestNewPaginationMeta(t *testing.T) {
	t.Run("partial last page rounds up", func(t *testing.T) {
		meta := entity.NewPaginationMeta(1, 20, 45)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, int64(45), meta.TotalElements)
		assert.Equal(t, 1, meta.CurrentPage)
		assert.Equal(t, 20, meta.Size)
	})

	t.Run("exact fit", func(t *testing.T) {
		meta := entity.NewPaginationMeta(2, 20, 40)
		assert.Equal(t, 2, meta.TotalPages)
	})

	t.Run("empty result", func(t *testing.T) {
		meta := entity.NewPaginationMeta(1, 20, 0)
		assert.Equal(t, 0, meta.TotalPages)
	})
}
