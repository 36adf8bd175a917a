package repo_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/repo"
	"github.com/pkordes/csr-assistant/testutil"
)

// Both ledger implementations must behave identically, so every test below
// runs against each of them. The Postgres variant is skipped without
// TEST_DATABASE_URL.
var ledgers = map[string]func(t *testing.T) repo.AppointmentRepo{
	"memory": func(t *testing.T) repo.AppointmentRepo {
		return repo.NewMemoryAppointmentRepo()
	},
	"postgres": func(t *testing.T) repo.AppointmentRepo {
		return repo.NewPostgresAppointmentRepo(testutil.NewTx(t))
	},
}

func eachLedger(t *testing.T, fn func(t *testing.T, r repo.AppointmentRepo)) {
	for name, newRepo := range ledgers {
		t.Run(name, func(t *testing.T) {
			fn(t, newRepo(t))
		})
	}
}

var feb15 = time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)

// appointmentFixture returns an appointment for technician at hour on date.
// Technician names carry a random suffix so rows committed by other test
// runs never leak into counts.
func appointmentFixture(technician string, date time.Time, hour int) domain.Appointment {
	start, _ := domain.NewTimeOfDay(hour, 0)
	return domain.Appointment{
		ID:             uuid.New(),
		CustomerName:   "Justin Long",
		Service:        "plumbing",
		TechnicianName: technician,
		ZipCode:        "94115",
		Date:           date,
		StartTime:      start,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func uniqueTechnician(name string) string {
	return name + " " + uuid.NewString()[:8]
}

func TestAppointmentRepo_Create(t *testing.T) {
	eachLedger(t, func(t *testing.T, r repo.AppointmentRepo) {
		input := appointmentFixture(uniqueTechnician("Michael Page"), feb15, 10)

		got, err := r.Create(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, input.ID, got.ID)
		assert.Equal(t, input.CustomerName, got.CustomerName)
		assert.Equal(t, input.Service, got.Service)
		assert.Equal(t, input.TechnicianName, got.TechnicianName)
		assert.Equal(t, input.ZipCode, got.ZipCode)
		assert.True(t, got.Date.Equal(feb15), "date mismatch: %s", got.Date)
		assert.Equal(t, "10:00 AM", got.StartTime.String())
		assert.True(t, got.CreatedAt.Equal(input.CreatedAt), "created_at mismatch")
	})
}

func TestAppointmentRepo_ListByTechnicianAndDate(t *testing.T) {
	eachLedger(t, func(t *testing.T, r repo.AppointmentRepo) {
		ctx := context.Background()
		michael := uniqueTechnician("Michael Page")
		priya := uniqueTechnician("Priya Raman")

		for _, a := range []domain.Appointment{
			appointmentFixture(michael, feb15, 14),
			appointmentFixture(michael, feb15, 9),
			appointmentFixture(michael, feb15.AddDate(0, 0, 1), 9),
			appointmentFixture(priya, feb15, 9),
		} {
			_, err := r.Create(ctx, a)
			require.NoError(t, err)
		}

		got, err := r.ListByTechnicianAndDate(ctx, michael, feb15)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "9:00 AM", got[0].StartTime.String(), "ordered by start time")
		assert.Equal(t, "2:00 PM", got[1].StartTime.String())
	})
}

func TestAppointmentRepo_ListByTechnicianAndDate_empty(t *testing.T) {
	eachLedger(t, func(t *testing.T, r repo.AppointmentRepo) {
		got, err := r.ListByTechnicianAndDate(context.Background(), uniqueTechnician("Nobody"), feb15)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestAppointmentRepo_List_filtersAndPages(t *testing.T) {
	eachLedger(t, func(t *testing.T, r repo.AppointmentRepo) {
		ctx := context.Background()
		michael := uniqueTechnician("Michael Page")

		for _, h := range []int{8, 10, 12, 14, 16} {
			_, err := r.Create(ctx, appointmentFixture(michael, feb15, h))
			require.NoError(t, err)
		}
		_, err := r.Create(ctx, appointmentFixture(michael, feb15.AddDate(0, 0, 2), 8))
		require.NoError(t, err)

		page, limit := 2, 2
		got, total, err := r.List(ctx,
			domain.AppointmentFilter{TechnicianName: michael, Date: &feb15},
			domain.NewPaginationParams(&page, &limit),
		)

		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		require.Len(t, got, 2)
		assert.Equal(t, "12:00 PM", got[0].StartTime.String())
		assert.Equal(t, "2:00 PM", got[1].StartTime.String())

		all, total, err := r.List(ctx,
			domain.AppointmentFilter{TechnicianName: michael},
			domain.NewPaginationParams(nil, nil),
		)
		require.NoError(t, err)
		assert.EqualValues(t, 6, total)
		assert.Len(t, all, 6)
		assert.True(t, all[5].Date.Equal(feb15.AddDate(0, 0, 2)), "later date sorts last")
	})
}

func TestAppointmentRepo_List_pagePastEnd(t *testing.T) {
	eachLedger(t, func(t *testing.T, r repo.AppointmentRepo) {
		ctx := context.Background()
		michael := uniqueTechnician("Michael Page")
		_, err := r.Create(ctx, appointmentFixture(michael, feb15, 8))
		require.NoError(t, err)

		page := 5
		got, total, err := r.List(ctx,
			domain.AppointmentFilter{TechnicianName: michael},
			domain.NewPaginationParams(&page, nil),
		)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Empty(t, got)
	})
}

func TestAppointmentRepo_List_hugePage(t *testing.T) {
	eachLedger(t, func(t *testing.T, r repo.AppointmentRepo) {
		ctx := context.Background()
		michael := uniqueTechnician("Michael Page")
		_, err := r.Create(ctx, appointmentFixture(michael, feb15, 8))
		require.NoError(t, err)

		page, limit := math.MaxInt, 2
		got, total, err := r.List(ctx,
			domain.AppointmentFilter{TechnicianName: michael},
			domain.NewPaginationParams(&page, &limit),
		)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Empty(t, got)
	})
}

// TestMemoryAppointmentRepo_List_negativeOffset covers params built by hand
// rather than through NewPaginationParams.
func TestMemoryAppointmentRepo_List_negativeOffset(t *testing.T) {
	r := repo.NewMemoryAppointmentRepo()
	ctx := context.Background()
	_, err := r.Create(ctx, appointmentFixture("Michael Page", feb15, 8))
	require.NoError(t, err)

	got, total, err := r.List(ctx, domain.AppointmentFilter{}, domain.PaginationParams{Page: -3, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, got, 1)
}
