package domain

import "math"

// DefaultPageSize is used when PaginationParams.PageSize is not positive.
const DefaultPageSize = 20

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Limit returns the page size, falling back to DefaultPageSize.
func (p PaginationParams) Limit() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	return p.PageSize
}

// Offset returns the number of events to skip for the current page, (Page-1)*Limit().
// It saturates at math.MaxInt instead of overflowing.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	limit := p.Limit()
	if p.Page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (p.Page - 1) * limit
}
