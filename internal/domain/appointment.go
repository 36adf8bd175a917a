package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SlotLength is the fixed duration of every appointment.
const SlotLength = 2 * time.Hour

// TimeOfDay is a wall-clock time expressed in minutes after midnight.
type TimeOfDay int

// NewTimeOfDay returns the TimeOfDay for a 24-hour clock reading.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d is not a valid time of day", ErrInvalidDateTime, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Hour returns the hour on a 24-hour clock.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute within the hour.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders the canonical 12-hour display form, e.g. "10:00 AM".
func (t TimeOfDay) String() string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if t.Hour() >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), suffix)
}

// Clock renders the 24-hour "15:04" form used for storage.
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Slot is a SlotLength window starting at Start on Date.
// Date is always a UTC midnight; see ParseDate.
type Slot struct {
	Date  time.Time
	Start TimeOfDay
}

// Begin returns the absolute start of the slot.
func (s Slot) Begin() time.Time {
	return s.Date.Add(time.Duration(s.Start) * time.Minute)
}

// End returns the exclusive end of the slot.
func (s Slot) End() time.Time {
	return s.Begin().Add(SlotLength)
}

// Overlaps reports whether two slots on the same date share any instant.
// Slots are half-open, so a 10:00 slot and a 12:00 slot do not overlap.
// Slots on different dates never overlap, even when one runs past midnight.
func (s Slot) Overlaps(o Slot) bool {
	if !s.Date.Equal(o.Date) {
		return false
	}
	return s.Begin().Before(o.End()) && o.Begin().Before(s.End())
}

// Appointment is a confirmed booking. Appointments are created only by a
// successful booking and are never mutated afterwards.
type Appointment struct {
	ID             uuid.UUID
	CustomerName   string
	Service        Service
	TechnicianName string
	ZipCode        string
	Date           time.Time // UTC midnight
	StartTime      TimeOfDay
	CreatedAt      time.Time
}

// Slot returns the time window the appointment occupies.
func (a Appointment) Slot() Slot {
	return Slot{Date: a.Date, Start: a.StartTime}
}

// BookingRequest carries the raw, human-entered booking fields from a
// front-end to the booking service, which parses and validates them.
type BookingRequest struct {
	CustomerName string
	Service      string
	ZipCode      string
	Date         string
	Time         string
}
