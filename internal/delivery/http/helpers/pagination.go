package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// Listing query limits. page_size above MaxPageSize is clamped; page above MaxPage is rejected.
const (
	DefaultPageSize = domain.DefaultPageSize
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// ErrInvalidPagination is returned by ParsePagination for malformed or out-of-range query values.
var ErrInvalidPagination = errors.New("invalid pagination")

// ParsePagination reads page and page_size from the query string. Missing values use
// the defaults; anything that is not a positive integer, or a page beyond MaxPage,
// yields ErrInvalidPagination.
func ParsePagination(r *http.Request) (domain.PaginationParams, error) {
	q := r.URL.Query()
	page, err := positiveQueryInt(q.Get("page"), 1, "page")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	if page > MaxPage {
		return domain.PaginationParams{}, fmt.Errorf("%w: page must be at most %d", ErrInvalidPagination, MaxPage)
	}
	size, err := positiveQueryInt(q.Get("page_size"), DefaultPageSize, "page_size")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.PaginationParams{Page: page, PageSize: min(size, MaxPageSize)}, nil
}

func positiveQueryInt(raw string, fallback int, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidPagination, name)
	}
	return v, nil
}

// PaginationMeta is the pagination block of a listing response.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPaginationMeta describes params against total stored items.
func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	size := params.Limit()
	pages := (total + size - 1) / size
	return PaginationMeta{
		Page:       params.Page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
		HasNext:    params.Page < pages,
	}
}
