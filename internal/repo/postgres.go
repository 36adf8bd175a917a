package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/csr-assistant/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgAppointmentRepo is the Postgres implementation of AppointmentRepo.
type pgAppointmentRepo struct {
	db db
}

// NewPostgresAppointmentRepo constructs an AppointmentRepo backed by db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewPostgresAppointmentRepo(db db) AppointmentRepo {
	return &pgAppointmentRepo{db: db}
}

const appointmentColumns = `id, customer_name, service, technician_name, zip_code, appt_date, start_minute, created_at`

// Create inserts a new appointment row and returns the persisted record.
func (r *pgAppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	const q = `
		INSERT INTO appointments (id, customer_name, service, technician_name, zip_code, appt_date, start_minute, created_at)
		VALUES (@id, @customer_name, @service, @technician_name, @zip_code, @appt_date, @start_minute, @created_at)
		RETURNING ` + appointmentColumns

	args := pgx.NamedArgs{
		"id":              appt.ID,
		"customer_name":   appt.CustomerName,
		"service":         string(appt.Service),
		"technician_name": appt.TechnicianName,
		"zip_code":        appt.ZipCode,
		"appt_date":       pgtype.Date{Time: appt.Date, Valid: true},
		"start_minute":    int(appt.StartTime),
		"created_at":      appt.CreatedAt,
	}

	result, err := scanAppointment(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("repo.AppointmentRepo.Create: %w", err)
	}
	return result, nil
}

// ListByTechnicianAndDate returns one technician's appointments on date.
func (r *pgAppointmentRepo) ListByTechnicianAndDate(ctx context.Context, technician string, date time.Time) ([]domain.Appointment, error) {
	const q = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE technician_name = @technician_name
		  AND appt_date = @appt_date
		ORDER BY start_minute, created_at`

	args := pgx.NamedArgs{
		"technician_name": technician,
		"appt_date":       pgtype.Date{Time: date, Valid: true},
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.AppointmentRepo.ListByTechnicianAndDate: %w", err)
	}
	appts, err := collectAppointments(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.AppointmentRepo.ListByTechnicianAndDate: %w", err)
	}
	return appts, nil
}

// List returns one page of appointments matching f and the total count.
func (r *pgAppointmentRepo) List(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	const where = `
		WHERE (@technician_name = '' OR technician_name = @technician_name)
		  AND (NOT @has_date OR appt_date = @appt_date)`

	date := pgtype.Date{}
	if f.Date != nil {
		date = pgtype.Date{Time: *f.Date, Valid: true}
	}
	args := pgx.NamedArgs{
		"technician_name": f.TechnicianName,
		"has_date":        f.Date != nil,
		"appt_date":       date,
		"limit":           p.Limit,
		"offset":          p.Offset(),
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.AppointmentRepo.List: count: %w", err)
	}

	q := `SELECT ` + appointmentColumns + ` FROM appointments` + where + `
		ORDER BY appt_date, start_minute, created_at
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AppointmentRepo.List: %w", err)
	}
	appts, err := collectAppointments(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AppointmentRepo.List: %w", err)
	}
	return appts, total, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanAppointment maps a single row into a domain.Appointment.
func scanAppointment(s scanner) (domain.Appointment, error) {
	var (
		a       domain.Appointment
		id      pgtype.UUID
		service string
		date    pgtype.Date
		start   int32
	)

	if err := s.Scan(&id, &a.CustomerName, &service, &a.TechnicianName, &a.ZipCode, &date, &start, &a.CreatedAt); err != nil {
		return domain.Appointment{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.Service = domain.Service(service)
	a.Date = time.Date(date.Time.Year(), date.Time.Month(), date.Time.Day(), 0, 0, 0, 0, time.UTC)
	a.StartTime = domain.TimeOfDay(start)
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
