package entity

import "strings"

// PaginationParams represents pagination request parameters
type PaginationParams struct {
	Page    int    `json:"page" query:"page"`
	Size    int    `json:"size" query:"size"`
	SortBy  string `json:"sortBy" query:"sortBy"`
	SortDir string `json:"sortDir" query:"sortDir"`
}

// PaginationMeta represents pagination metadata in responses
type PaginationMeta struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
}

// Pagination constants
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1
	DefaultSortBy   = "created_at"
)

// Validate normalizes pagination parameters in place. Sort fields are checked
// against the allowed column list; anything else falls back to created_at.
func (p *PaginationParams) Validate(sortable ...string) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Size < 1 {
		p.Size = DefaultPageSize
	} else if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	allowed := false
	for _, col := range sortable {
		if p.SortBy == col {
			allowed = true
			break
		}
	}
	if !allowed {
		p.SortBy = DefaultSortBy
	}

	if dir := strings.ToLower(p.SortDir); dir == "asc" || dir == "desc" {
		p.SortDir = dir
	} else {
		p.SortDir = "desc"
	}
}

// Offset calculates the database offset from page and size
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// OrderClause returns the SQL order expression for the validated parameters.
func (p *PaginationParams) OrderClause() string {
	return p.SortBy + " " + p.SortDir
}

// NewPaginationMeta creates pagination metadata from parameters and total count
func NewPaginationMeta(page, size int, total int64) PaginationMeta {
	totalPages := int(total) / size
	if int(total)%size > 0 {
		totalPages++
	}

	return PaginationMeta{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalElements: total,
		Size:          size,
	}
}
