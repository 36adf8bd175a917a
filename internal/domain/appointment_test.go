package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/csr-assistant/internal/domain"
)

func slotAt(day, hour, minute int) domain.Slot {
	tod, _ := domain.NewTimeOfDay(hour, minute)
	return domain.Slot{Date: time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC), Start: tod}
}

func TestSlot_Overlaps(t *testing.T) {
	base := slotAt(15, 10, 0)

	assert.True(t, base.Overlaps(slotAt(15, 10, 0)), "identical slot")
	assert.True(t, base.Overlaps(slotAt(15, 11, 0)), "starts inside")
	assert.True(t, base.Overlaps(slotAt(15, 8, 30)), "ends inside")
	assert.True(t, base.Overlaps(slotAt(15, 11, 59)), "last minute")

	assert.False(t, base.Overlaps(slotAt(15, 12, 0)), "adjacent after")
	assert.False(t, base.Overlaps(slotAt(15, 8, 0)), "adjacent before")
	assert.False(t, base.Overlaps(slotAt(16, 10, 0)), "different date")
}

// TestSlot_Overlaps_lateEvening verifies that a slot running past midnight
// is only compared against slots on its own date.
func TestSlot_Overlaps_lateEvening(t *testing.T) {
	late := slotAt(15, 23, 0)

	assert.False(t, late.Overlaps(slotAt(16, 0, 0)))
	assert.True(t, late.Overlaps(slotAt(15, 22, 0)))
}

func TestSlot_End(t *testing.T) {
	s := slotAt(15, 10, 0)
	assert.Equal(t, time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC), s.End())
}

func TestPaginationParams(t *testing.T) {
	page, limit := 3, 500

	p := domain.NewPaginationParams(&page, &limit)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, domain.MaxPageLimit, p.Limit)
	assert.Equal(t, 200, p.Offset())

	d := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, d)
}

func TestPaginationParams_hugePageIsCapped(t *testing.T) {
	page, limit := math.MaxInt, 2

	p := domain.NewPaginationParams(&page, &limit)

	assert.Equal(t, domain.MaxPage, p.Page)
	assert.Positive(t, p.Offset())
}
