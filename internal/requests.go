package internal

import "strings"

const (
	// DefaultPageSize is used when a listing request names no limit
	DefaultPageSize uint = 50
	// MaxPageSize caps the number of rows a single admin listing may return
	MaxPageSize uint = 200
)

// Pagination selects a window of an admin listing
type Pagination struct {
	// Row to start at
	Offset uint
	// Rows to return. Zero means DefaultPageSize
	Limit uint
}

// Page builds a pagination window, applying the default and maximum page sizes
func Page(offset, limit uint) Pagination {
	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	return Pagination{Offset: offset, Limit: limit}
}

// Search is a listing request filtered by a free-text term (tournament names, menu items)
type Search struct {
	Pagination
	Search string
}

// Term returns the trimmed search term
func (s *Search) Term() string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.Search)
}

// Window returns the normalised pagination of the search
func (s *Search) Window() Pagination {
	if s == nil {
		return Page(0, 0)
	}
	return Page(s.Offset, s.Limit)
}
