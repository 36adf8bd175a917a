// Package repo contains the appointment ledger: the storage behind the
// booking service. The service depends on the AppointmentRepo interface
// so the in-memory ledger and the Postgres one are interchangeable.
// No business logic lives here; overlap and matching rules belong to the
// service layer.
package repo

import (
	"context"
	"time"

	"github.com/pkordes/csr-assistant/internal/domain"
)

// AppointmentRepo defines the persistence operations for appointments.
type AppointmentRepo interface {
	// Create appends a new appointment and returns the stored record.
	// The caller is responsible for the ID and CreatedAt fields.
	Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)

	// ListByTechnicianAndDate returns the technician's appointments on the
	// given date (UTC midnight), ordered by start time.
	ListByTechnicianAndDate(ctx context.Context, technician string, date time.Time) ([]domain.Appointment, error)

	// List returns one page of appointments matching f, ordered by date,
	// start time and creation, plus the total number of matches.
	List(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error)
}
