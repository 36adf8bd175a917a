package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the layout used for dates in JSON and storage.
const ISODate = "2006-01-02"

// LongDate is the layout used for dates in confirmations.
const LongDate = "Monday, January 2, 2006"

// dateLayouts lists the human date formats accepted, tried in order.
// Month names match case-insensitively and single-digit days and months
// are accepted by every numeric layout.
var dateLayouts = []string{
	ISODate,
	"1/2/2006",
	"1-2-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	LongDate,
	"Mon, Jan 2, 2006",
}

// ParseDate parses a human-entered calendar date and returns it as a UTC
// midnight. It returns ErrInvalidDateTime when no accepted layout matches.
func ParseDate(s string) (time.Time, error) {
	in := strings.Join(strings.Fields(s), " ")
	if in == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDateTime)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: could not parse date %q", ErrInvalidDateTime, s)
}

var timePattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)?$`)

// ParseTime parses a human-entered time of day such as "10am", "10:00 AM",
// "2:30 p.m." or "14:00". Without an am/pm marker the hour is read on a
// 24-hour clock. It returns ErrInvalidDateTime on anything else.
func ParseTime(s string) (TimeOfDay, error) {
	in := strings.ToLower(s)
	in = strings.ReplaceAll(in, ".", "")
	in = strings.Join(strings.Fields(in), "")
	if in == "" {
		return 0, fmt.Errorf("%w: time is required", ErrInvalidDateTime)
	}

	m := timePattern.FindStringSubmatch(in)
	if m == nil {
		return 0, fmt.Errorf("%w: could not parse time %q", ErrInvalidDateTime, s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: could not parse time %q", ErrInvalidDateTime, s)
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
	}

	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		return 0, fmt.Errorf("%w: could not parse time %q", ErrInvalidDateTime, s)
	}
	return t, nil
}
