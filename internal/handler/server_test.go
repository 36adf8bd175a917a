package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/csr-assistant/internal/chat"
	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/handler"
	"github.com/pkordes/csr-assistant/internal/service"
)

// mockBookingServicer is a test double for handler.BookingServicer.
// Set only the method fields your test needs.
type mockBookingServicer struct {
	book func(ctx context.Context, req domain.BookingRequest) (domain.Appointment, error)
	list func(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error)
}

func (m *mockBookingServicer) Book(ctx context.Context, req domain.BookingRequest) (domain.Appointment, error) {
	return m.book(ctx, req)
}
func (m *mockBookingServicer) List(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	return m.list(ctx, f, p)
}

// compile-time check: mockBookingServicer must satisfy handler.BookingServicer.
var _ handler.BookingServicer = (*mockBookingServicer)(nil)

// ---- helpers ---------------------------------------------------------------

func testCatalog() *domain.Catalog {
	return domain.NewCatalog(
		[]domain.Service{"plumbing", "electrical", "hvac"},
		[]string{"94110", "94115"},
		[]domain.Technician{
			{Name: "Alice", Services: []domain.Service{"plumbing", "hvac"}, ZipCodes: []string{"94110", "94115"}},
			{Name: "Bob", Services: []domain.Service{"electrical"}, ZipCodes: []string{"94110"}},
		},
	)
}

// newHTTPHandler wires a Server around svc the way main.go does, with the
// real FAQ service and an in-memory session store.
func newHTTPHandler(svc handler.BookingServicer) http.Handler {
	catalog := testCatalog()
	faq := service.NewFAQService(catalog)
	bot := chat.NewBot(catalog, svc, faq)
	srv := handler.NewServer(catalog, svc, faq, chat.NewSessionStore(bot, time.Hour), nil)
	return srv.Routes()
}

func appointmentFixture() domain.Appointment {
	start, _ := domain.NewTimeOfDay(14, 0)
	return domain.Appointment{
		ID:             uuid.New(),
		CustomerName:   "Jane Doe",
		Service:        "plumbing",
		TechnicianName: "Alice",
		ZipCode:        "94110",
		Date:           time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      start,
		CreatedAt:      time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}
