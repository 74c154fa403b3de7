package entity

import (
	"strings"

	"github.com/google/uuid"
)

// View selects which records a read may return. Every read path must
// name one explicitly.
type View int

const (
	// DefaultView hides soft deleted records.
	DefaultView View = iota

	// AllView includes soft deleted records, for audit and admin tooling.
	AllView
)

func (v View) String() string {
	if v == AllView {
		return "all"
	}
	return "default"
}

// ParseView maps the "view" query parameter, anything but "all" is DefaultView.
func ParseView(raw string) View {
	if strings.EqualFold(strings.TrimSpace(raw), "all") {
		return AllView
	}
	return DefaultView
}

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Query describes a paged list read.
type Query struct {
	View View

	// OwnerID narrows results to rows controlled by a single user.
	OwnerID *uuid.UUID

	// Where holds exact column matches, keyed by column name.
	Where map[string]any

	Page    int
	PerPage int
}

// Normalize clamps pagination into its accepted range.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// Paged is one page of a list read plus its pagination metadata.
type Paged[E any] struct {
	Items      []E
	Page       int
	PerPage    int
	TotalItems int64
	TotalPages int64
}

// NewPaged computes the page count, rounding up.
func NewPaged[E any](items []E, q Query, total int64) *Paged[E] {
	perPage := int64(q.PerPage)
	pages := int64(0)
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}

	return &Paged[E]{
		Items:      items,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalItems: total,
		TotalPages: pages,
	}
}
