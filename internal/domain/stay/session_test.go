package stay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/domain/availability"
	"villastay/internal/domain/calendar"
)

var testNow = time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

func demoAvailability() *availability.Index {
	return availability.NewIndex(
		[]availability.WeeklyBooking{
			{Start: calendar.MustParse("2025-04-12"), Weeks: 1},
			{Start: calendar.MustParse("2025-04-26"), Weeks: 2},
			{Start: calendar.MustParse("2025-05-17"), Weeks: 1},
		},
		[]availability.ShortBooking{
			{Start: calendar.MustParse("2025-05-03"), Nights: 4},
			{Start: calendar.MustParse("2025-05-31"), Nights: 3},
		},
		[]calendar.Date{
			calendar.MustParse("2025-04-01"),
			calendar.MustParse("2025-04-02"),
			calendar.MustParse("2025-04-03"),
			calendar.MustParse("2025-06-10"),
			calendar.MustParse("2025-06-11"),
		},
	)
}

func newWeeklySession() *Session {
	return NewSession("sess-1", "villa-1", ModeWeekly, Rules{MinShortStayNights: 3, MaxShortStayNights: 21}, testNow)
}

func newShortSession() *Session {
	return NewSession("sess-1", "villa-1", ModeShort, Rules{MinShortStayNights: 3, MaxShortStayNights: 21}, testNow)
}

func TestWeeklyHappyPath(t *testing.T) {
	s := newWeeklySession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-05"), avail, testNow))
	assert.True(t, s.Selection.Active())
	assert.Equal(t, calendar.MustParse("2025-04-05"), s.Selection.Start)
	assert.Equal(t, calendar.MustParse("2025-04-11"), s.Selection.End)
	assert.Equal(t, 1, s.Selection.Weeks)
	assert.Equal(t, 7, s.Selection.Nights)
	assert.Equal(t, calendar.MustParse("2025-04-12"), s.Selection.Checkout())

	evs := s.PendingEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, "stay.selected", evs[0].EventName())
}

func TestWeeklyStartMustBeSaturday(t *testing.T) {
	s := newWeeklySession()
	// 2025-04-07 is a Monday.
	err := s.SelectStart(calendar.MustParse("2025-04-07"), demoAvailability(), testNow)
	assert.ErrorIs(t, err, ErrInvalidStartDay)
	assert.False(t, s.Selection.Active())
}

func TestWeeklyStartOnBookedWeekRejected(t *testing.T) {
	s := newWeeklySession()
	err := s.SelectStart(calendar.MustParse("2025-04-12"), demoAvailability(), testNow)
	assert.ErrorIs(t, err, ErrPeriodUnavailable)
	assert.False(t, s.Selection.Active())

	evs := s.PendingEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, "stay.conflict_detected", evs[0].EventName())
}

func TestWeeklyNightsInvariantAfterTransitions(t *testing.T) {
	s := newWeeklySession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-06-14"), avail, testNow))
	require.NoError(t, s.AdjustDuration(1, avail, testNow))
	assert.Equal(t, s.Selection.Weeks*7, s.Selection.Nights)
	assert.Equal(t, calendar.MustParse("2025-06-27"), s.Selection.End)
}

func TestWeeklyIncrementIntoBookedWeekRejected(t *testing.T) {
	s := newWeeklySession()
	avail := demoAvailability()

	// April 5-11 is free, the following week is booked.
	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-05"), avail, testNow))
	err := s.AdjustDuration(1, avail, testNow)
	assert.ErrorIs(t, err, ErrPeriodUnavailable)
	assert.Equal(t, 1, s.Selection.Weeks)
	assert.Equal(t, calendar.MustParse("2025-04-11"), s.Selection.End)
}

func TestWeeklyDecrementBelowOneWeekRejected(t *testing.T) {
	s := newWeeklySession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-05"), avail, testNow))
	err := s.AdjustDuration(-1, avail, testNow)
	assert.ErrorIs(t, err, ErrDurationBelowMinimum)
	assert.Equal(t, 1, s.Selection.Weeks)
	assert.Equal(t, calendar.MustParse("2025-04-05"), s.Selection.Start)
}

func TestShortStayHappyPath(t *testing.T) {
	s := newShortSession()
	// No conflicting bookings around April 10.
	avail := availability.NewIndex(nil, nil, nil)
	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-10"), avail, testNow))
	assert.Equal(t, calendar.MustParse("2025-04-12"), s.Selection.End)
	assert.Equal(t, 3, s.Selection.Nights)
	assert.Equal(t, "Apr 10-12", RangeLabel(s.Selection.Start, s.Selection.End))
}

func TestShortStayAnyWeekdayStart(t *testing.T) {
	s := newShortSession()
	// A Wednesday.
	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-09"), demoAvailability(), testNow))
	assert.True(t, s.Selection.Active())
}

func TestShortStayStartOverlappingBookingRejected(t *testing.T) {
	s := newShortSession()
	// May 1 + 3 nights touches the May 3 short booking.
	err := s.SelectStart(calendar.MustParse("2025-05-01"), demoAvailability(), testNow)
	assert.ErrorIs(t, err, ErrPeriodUnavailable)
	assert.False(t, s.Selection.Active())
}

func TestShortStayExtendByClick(t *testing.T) {
	s := newShortSession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-19"), avail, testNow))
	// Clicking April 25 makes it the checkout day: 6 nights, last night April 24.
	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-25"), avail, testNow))
	assert.Equal(t, 6, s.Selection.Nights)
	assert.Equal(t, calendar.MustParse("2025-04-24"), s.Selection.End)
	assert.Equal(t, calendar.MustParse("2025-04-25"), s.Selection.Checkout())
}

func TestShortStayExtendBelowMinimumRejected(t *testing.T) {
	s := newShortSession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-19"), avail, testNow))
	err := s.SelectStart(calendar.MustParse("2025-04-20"), avail, testNow)
	assert.ErrorIs(t, err, ErrDurationBelowMinimum)
	assert.Equal(t, 3, s.Selection.Nights)
	assert.Equal(t, calendar.MustParse("2025-04-21"), s.Selection.End)
}

func TestShortStayEarlierClickMovesStart(t *testing.T) {
	s := newShortSession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-19"), avail, testNow))
	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-07"), avail, testNow))
	assert.Equal(t, calendar.MustParse("2025-04-07"), s.Selection.Start)
	assert.Equal(t, 3, s.Selection.Nights)
}

func TestShortStayDurationClamps(t *testing.T) {
	s := newShortSession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-06-14"), avail, testNow))

	err := s.AdjustDuration(-1, avail, testNow)
	assert.ErrorIs(t, err, ErrDurationBelowMinimum)
	assert.Equal(t, 3, s.Selection.Nights)

	require.NoError(t, s.AdjustDuration(18, avail, testNow))
	assert.Equal(t, 21, s.Selection.Nights)

	err = s.AdjustDuration(1, avail, testNow)
	assert.ErrorIs(t, err, ErrDurationAboveMaximum)
	assert.Equal(t, 21, s.Selection.Nights)
}

func TestPendingDurationWithoutSelection(t *testing.T) {
	s := newShortSession()
	avail := demoAvailability()

	require.NoError(t, s.AdjustDuration(2, avail, testNow))
	assert.Equal(t, 5, s.Selection.Nights)
	assert.False(t, s.Selection.Active())

	// The next pick uses the pending duration.
	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-19"), avail, testNow))
	assert.Equal(t, 5, s.Selection.Nights)
	assert.Equal(t, calendar.MustParse("2025-04-23"), s.Selection.End)
}

func TestSwitchModeResetsSelection(t *testing.T) {
	s := newWeeklySession()
	avail := demoAvailability()

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-05"), avail, testNow))
	s.SwitchMode(ModeShort, testNow)

	assert.Equal(t, ModeShort, s.Mode)
	assert.False(t, s.Selection.Active())
	assert.Equal(t, 1, s.Selection.Weeks)
	assert.Equal(t, 3, s.Selection.Nights)

	// Switching to the current mode is a no-op.
	before := s.UpdatedAt
	s.ClearEvents()
	s.SwitchMode(ModeShort, testNow.Add(time.Hour))
	assert.Equal(t, before, s.UpdatedAt)
	assert.Empty(t, s.PendingEvents())
}

func TestClearReturnsToNoSelection(t *testing.T) {
	s := newWeeklySession()
	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-05"), demoAvailability(), testNow))
	s.Clear(testNow)
	assert.False(t, s.Selection.Active())
	assert.Equal(t, 1, s.Selection.Weeks)
	assert.Equal(t, 3, s.Selection.Nights)
}

func TestConfirmRequiresSelection(t *testing.T) {
	s := newWeeklySession()
	assert.ErrorIs(t, s.Confirm(testNow), ErrSelectionRequired)

	require.NoError(t, s.SelectStart(calendar.MustParse("2025-04-05"), demoAvailability(), testNow))
	s.ClearEvents()
	require.NoError(t, s.Confirm(testNow))

	evs := s.PendingEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, "stay.confirmed", evs[0].EventName())
}

func TestSuccessfulSelectionSpansAreFree(t *testing.T) {
	avail := demoAvailability()
	for _, start := range []string{"2025-04-05", "2025-05-24", "2025-06-14"} {
		s := newWeeklySession()
		require.NoError(t, s.SelectStart(calendar.MustParse(start), avail, testNow))
		span := s.Selection.Start.DaysUntil(s.Selection.End) + 1
		assert.True(t, avail.IsRangeAvailable(s.Selection.Start, span))
	}
}
