package stay

import (
	"fmt"

	"villastay/internal/domain/calendar"
)

// Date arithmetic for stays. Throughout this package "end date" means the
// LAST OCCUPIED NIGHT of the stay; the checkout day is always derived via
// CheckoutDate. A 1-week stay starting Saturday ends the following Friday.

// WeeklyEnd returns the last night of a weeks-long stay.
func WeeklyEnd(start calendar.Date, weeks int) calendar.Date {
	return start.AddDays(weeks*7 - 1)
}

// ShortStayEnd returns the last night of a nights-long stay.
func ShortStayEnd(start calendar.Date, nights int) calendar.Date {
	return start.AddDays(nights - 1)
}

// CheckoutDate is the day after the last occupied night.
func CheckoutDate(lastNight calendar.Date) calendar.Date {
	return lastNight.AddDays(1)
}

// NightsBetween counts occupied nights inclusive of both endpoints.
func NightsBetween(start, end calendar.Date) int {
	return start.DaysUntil(end) + 1
}

// RangeLabel renders the display label for a stay, e.g. "Apr 10-12" within
// one month or "Apr 26 - May 9" across months.
func RangeLabel(start, end calendar.Date) string {
	if start.Year == end.Year && start.Month == end.Month {
		return fmt.Sprintf("%s %d-%d", start.Month.String()[:3], start.Day, end.Day)
	}
	return fmt.Sprintf("%s %d - %s %d", start.Month.String()[:3], start.Day, end.Month.String()[:3], end.Day)
}
