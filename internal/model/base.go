package model

import (
	"github.com/google/uuid"
)

// Base carries the two identifiers every table has.
//
// PkID is the internal serial key used by foreign keys and never leaves the
// service. ID is the public identifier used in URLs and response bodies.
type Base struct {
	PkID int       `json:"-" db:"pk_id"`
	ID   uuid.UUID `json:"id" db:"id"`
}

const (
	// DefaultPageSize is used when the client does not send ?size=.
	DefaultPageSize = 50
	// MaxPageSize caps ?size= so a single request cannot dump the table.
	MaxPageSize = 100
)

// PageParams is a normalized page request. Page is 1-based.
type PageParams struct {
	Page int
	Size int
}

// NewPageParams applies defaults to raw query values.
// Zero or negative page becomes 1, zero size becomes DefaultPageSize and
// anything above MaxPageSize is clamped.
func NewPageParams(page, size int) PageParams {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageParams{Page: page, Size: size}
}

// Offset returns the number of rows to skip for this page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is the envelope returned by paginated list endpoints.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage wraps one page of items together with the total row count.
func NewPage[T any](items []T, total int64, params PageParams) Page[T] {
	if items == nil {
		items = []T{}
	}

	pages := 0
	if params.Size > 0 {
		pages = int((total + int64(params.Size) - 1) / int64(params.Size))
	}

	return Page[T]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: pages,
	}
}

// MapPage converts the items of a page while keeping its metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[R]{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: p.Pages,
	}
}
