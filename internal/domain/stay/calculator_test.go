package stay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"villastay/internal/domain/calendar"
)

func TestWeeklyEnd(t *testing.T) {
	// A 1-week stay starting Saturday April 5 ends Friday April 11.
	assert.Equal(t, calendar.MustParse("2025-04-11"), WeeklyEnd(calendar.MustParse("2025-04-05"), 1))
	assert.Equal(t, calendar.MustParse("2025-04-18"), WeeklyEnd(calendar.MustParse("2025-04-05"), 2))
}

func TestShortStayEndAndCheckout(t *testing.T) {
	start := calendar.MustParse("2025-04-10")
	end := ShortStayEnd(start, 3)
	assert.Equal(t, calendar.MustParse("2025-04-12"), end)
	assert.Equal(t, calendar.MustParse("2025-04-13"), CheckoutDate(end))
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 7, NightsBetween(calendar.MustParse("2025-04-05"), calendar.MustParse("2025-04-11")))
	assert.Equal(t, 1, NightsBetween(calendar.MustParse("2025-04-05"), calendar.MustParse("2025-04-05")))
	assert.Equal(t, 3, NightsBetween(calendar.MustParse("2025-04-10"), calendar.MustParse("2025-04-12")))
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "Apr 10-12", RangeLabel(calendar.MustParse("2025-04-10"), calendar.MustParse("2025-04-12")))
	assert.Equal(t, "Apr 26 - May 9", RangeLabel(calendar.MustParse("2025-04-26"), calendar.MustParse("2025-05-09")))
	assert.Equal(t, "Dec 27 - Jan 2", RangeLabel(calendar.MustParse("2025-12-27"), calendar.MustParse("2026-01-02")))
}
