package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/service"
)

// HelpText lists what the assistant can do.
const HelpText = `How can I help you today?

  - Type "book" to schedule a two-hour appointment
  - Type "services" to see what services we offer
  - Type "locations" to see which areas we serve
  - Type "quit" to exit

You can also ask questions like:
  - "I need to book an appointment"
  - "What services do you offer?"
  - "Where are you located?"`

// Banner opens a console session.
const Banner = `==================================================
  Welcome to the Customer Service Chat Bot!
==================================================`

const (
	Farewell      = "Thank you for using our service. Goodbye!"
	NotUnderstood = "I'm not sure I understand. Type 'help' to see what I can do, or 'book' to schedule an appointment."
	DateExample   = "e.g., 2025-02-15 or Feb 15, 2025"
	TimeExample   = "e.g., 10:00 AM or 2pm"
)

// Confirmation renders a booked appointment.
func Confirmation(a domain.Appointment) string {
	return fmt.Sprintf("Appointment confirmed!\n"+
		"  Customer: %s\n"+
		"  Service: %s\n"+
		"  Technician: %s\n"+
		"  Location: %s\n"+
		"  Date: %s\n"+
		"  Time: %s",
		a.CustomerName,
		service.DisplayService(a.Service),
		a.TechnicianName,
		a.ZipCode,
		a.Date.Format(domain.LongDate),
		a.StartTime,
	)
}

// BookingErrorMessage turns a booking error into a customer-facing
// message naming the offending field and, where it helps, the valid set.
// Errors that are not booking errors get a generic apology.
func BookingErrorMessage(err error, req domain.BookingRequest, c *domain.Catalog) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "Sorry, we need your name to book an appointment."
	case errors.Is(err, domain.ErrUnknownService):
		return fmt.Sprintf("Sorry, '%s' is not a valid service.\n\nAvailable services: %s",
			strings.TrimSpace(req.Service), servicesList(c))
	case errors.Is(err, domain.ErrUnservedZipCode):
		return fmt.Sprintf("Sorry, we don't serve zip code '%s'.\n\nWe serve: %s",
			strings.TrimSpace(req.ZipCode), zipList(c))
	case errors.Is(err, domain.ErrInvalidDateTime):
		return fmt.Sprintf("Sorry, we couldn't understand the date '%s' or time '%s'.\n\nPlease use a date like %s and a time like %s.",
			strings.TrimSpace(req.Date), strings.TrimSpace(req.Time), "'2025-02-15'", "'10:00 AM'")
	case errors.Is(err, domain.ErrNoTechnicianAvailable):
		return fmt.Sprintf("Sorry, none of our technicians offer %s in zip code %s. Please try a different service or zip code.",
			displayRequested(req.Service, c), strings.TrimSpace(req.ZipCode))
	case errors.Is(err, domain.ErrSlotConflict):
		return fmt.Sprintf("Sorry, no technician is available for %s in zip code %s on %s at %s. Please try a different time or date.",
			displayRequested(req.Service, c), strings.TrimSpace(req.ZipCode), displayDate(req.Date), displayTime(req.Time))
	default:
		return "Sorry, something went wrong while booking. Please try again."
	}
}

func servicesList(c *domain.Catalog) string {
	return strings.Join(service.DisplayServices(c.Services()), ", ")
}

func zipList(c *domain.Catalog) string {
	return strings.Join(c.ZipCodes(), ", ")
}

func displayRequested(raw string, c *domain.Catalog) string {
	if s, ok := c.LookupService(raw); ok {
		return service.DisplayService(s)
	}
	return strings.TrimSpace(raw)
}

func displayDate(raw string) string {
	if d, err := domain.ParseDate(raw); err == nil {
		return d.Format(domain.LongDate)
	}
	return strings.TrimSpace(raw)
}

func displayTime(raw string) string {
	if t, err := domain.ParseTime(raw); err == nil {
		return t.String()
	}
	return strings.TrimSpace(raw)
}
