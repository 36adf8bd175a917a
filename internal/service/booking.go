// Package service contains the business logic of the CSR assistant.
// Services validate inputs, enforce booking rules and orchestrate the
// ledger. No storage details live here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/repo"
)

// BookingService matches booking requests to technicians and records the
// resulting appointments. It is safe for concurrent use.
type BookingService struct {
	catalog *domain.Catalog
	appts   repo.AppointmentRepo
	log     *slog.Logger

	// mu serializes Book so the match-then-append sequence is atomic with
	// respect to other bookings.
	mu  sync.Mutex
	now func() time.Time
}

// NewBookingService constructs a BookingService over the given catalog and
// ledger. A nil logger discards log output.
func NewBookingService(catalog *domain.Catalog, appts repo.AppointmentRepo, log *slog.Logger) *BookingService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &BookingService{
		catalog: catalog,
		appts:   appts,
		log:     log,
		now:     time.Now,
	}
}

// Book validates req, finds the first technician in catalog order who
// offers the service, covers the zip code and has no overlapping booking
// that day, and appends the appointment to the ledger.
//
// Validation runs in this order and stops at the first failure:
// customer name (domain.ErrValidation), service (domain.ErrUnknownService),
// zip code (domain.ErrUnservedZipCode), date and time
// (domain.ErrInvalidDateTime). Matching then fails with
// domain.ErrNoTechnicianAvailable when nobody offers the service in that
// zip code, or domain.ErrSlotConflict when everybody who does is busy.
// A failed booking never touches the ledger.
func (s *BookingService) Book(ctx context.Context, req domain.BookingRequest) (domain.Appointment, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return domain.Appointment{}, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	svc, ok := s.catalog.LookupService(req.Service)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: %q", domain.ErrUnknownService, strings.TrimSpace(req.Service))
	}
	zip := strings.TrimSpace(req.ZipCode)
	if !s.catalog.Serves(zip) {
		return domain.Appointment{}, fmt.Errorf("%w: %q", domain.ErrUnservedZipCode, zip)
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return domain.Appointment{}, err
	}
	start, err := domain.ParseTime(req.Time)
	if err != nil {
		return domain.Appointment{}, err
	}

	slot := domain.Slot{Date: date, Start: start}
	candidates := s.catalog.Qualified(svc, zip)
	if len(candidates) == 0 {
		s.log.DebugContext(ctx, "no technician offers service in zip", "service", svc, "zip", zip)
		return domain.Appointment{}, fmt.Errorf("%w: nobody offers %s in %s", domain.ErrNoTechnicianAvailable, svc, zip)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tech := range candidates {
		busy, err := s.isBooked(ctx, tech.Name, slot)
		if err != nil {
			return domain.Appointment{}, fmt.Errorf("service.BookingService.Book: %w", err)
		}
		if busy {
			continue
		}

		appt := domain.Appointment{
			ID:             uuid.New(),
			CustomerName:   name,
			Service:        svc,
			TechnicianName: tech.Name,
			ZipCode:        zip,
			Date:           date,
			StartTime:      start,
			CreatedAt:      s.now().UTC().Truncate(time.Microsecond),
		}
		created, err := s.appts.Create(ctx, appt)
		if err != nil {
			return domain.Appointment{}, fmt.Errorf("service.BookingService.Book: %w", err)
		}
		s.log.InfoContext(ctx, "appointment booked",
			"appointment_id", created.ID,
			"technician", created.TechnicianName,
			"service", created.Service,
			"zip", created.ZipCode,
			"date", created.Date.Format(domain.ISODate),
			"time", created.StartTime.Clock(),
		)
		return created, nil
	}

	s.log.InfoContext(ctx, "slot conflict", "service", svc, "zip", zip,
		"date", date.Format(domain.ISODate), "time", start.Clock(), "candidates", len(candidates))
	return domain.Appointment{}, fmt.Errorf("%w: every %s technician in %s is booked on %s at %s",
		domain.ErrSlotConflict, svc, zip, date.Format(domain.ISODate), start)
}

// isBooked reports whether technician already holds an appointment whose
// slot overlaps slot.
func (s *BookingService) isBooked(ctx context.Context, technician string, slot domain.Slot) (bool, error) {
	existing, err := s.appts.ListByTechnicianAndDate(ctx, technician, slot.Date)
	if err != nil {
		return false, err
	}
	for _, a := range existing {
		if a.Slot().Overlaps(slot) {
			return true, nil
		}
	}
	return false, nil
}

// List returns one page of appointments matching f, plus the total count.
// Always returns a non-nil slice.
func (s *BookingService) List(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	appts, total, err := s.appts.List(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.List: %w", err)
	}
	if appts == nil {
		appts = []domain.Appointment{}
	}
	return appts, total, nil
}
