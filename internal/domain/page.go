package domain

import "time"

// PaginationParams carries page/limit values from a front-end to the ledger.
// Page is 1-indexed. Limit is capped at MaxPageLimit.
type PaginationParams struct {
	Page  int
	Limit int
}

// MaxPageLimit bounds how many appointments a single listing may return.
const MaxPageLimit = 100

// MaxPage bounds the page number so Offset cannot overflow.
const MaxPage = 1_000_000

// NewPaginationParams builds PaginationParams from optional query values.
// Nil or non-positive values fall back to page=1, limit=20. Page is capped
// at MaxPage and limit at MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = min(*page, MaxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// AppointmentFilter narrows an appointment listing. Zero values match
// everything.
type AppointmentFilter struct {
	TechnicianName string
	Date           *time.Time
}

// Matches reports whether a satisfies the filter.
func (f AppointmentFilter) Matches(a Appointment) bool {
	if f.TechnicianName != "" && a.TechnicianName != f.TechnicianName {
		return false
	}
	if f.Date != nil && !a.Date.Equal(*f.Date) {
		return false
	}
	return true
}
