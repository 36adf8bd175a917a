package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/pkordes/csr-assistant/internal/domain"
)

// memoryAppointmentRepo is the session-only ledger. Appointments live for
// the lifetime of the process and are lost on exit.
type memoryAppointmentRepo struct {
	mu    sync.RWMutex
	appts []domain.Appointment
}

// NewMemoryAppointmentRepo returns an empty in-memory AppointmentRepo.
// It is safe for concurrent use.
func NewMemoryAppointmentRepo() AppointmentRepo {
	return &memoryAppointmentRepo{}
}

func (r *memoryAppointmentRepo) Create(_ context.Context, appt domain.Appointment) (domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts = append(r.appts, appt)
	return appt, nil
}

func (r *memoryAppointmentRepo) ListByTechnicianAndDate(_ context.Context, technician string, date time.Time) ([]domain.Appointment, error) {
	f := domain.AppointmentFilter{TechnicianName: technician, Date: &date}

	r.mu.RLock()
	out := r.filter(f)
	r.mu.RUnlock()

	sortAppointments(out)
	return out, nil
}

func (r *memoryAppointmentRepo) List(_ context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	r.mu.RLock()
	matched := r.filter(f)
	r.mu.RUnlock()

	sortAppointments(matched)
	total := int64(len(matched))

	start := min(max(p.Offset(), 0), len(matched))
	end := min(start+max(p.Limit, 0), len(matched))
	return matched[start:end], total, nil
}

// filter must be called with r.mu held.
func (r *memoryAppointmentRepo) filter(f domain.AppointmentFilter) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range r.appts {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

func sortAppointments(appts []domain.Appointment) {
	slices.SortStableFunc(appts, func(a, b domain.Appointment) int {
		return cmp.Or(
			a.Date.Compare(b.Date),
			cmp.Compare(a.StartTime, b.StartTime),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
}
