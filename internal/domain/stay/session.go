package stay

import (
	"errors"
	"time"

	"villastay/internal/domain/availability"
	"villastay/internal/domain/calendar"
	"villastay/internal/domain/shared/events"
)

var (
	ErrInvalidStartDay      = errors.New("stay: weekly stays must start on a Saturday")
	ErrPeriodUnavailable    = errors.New("stay: period overlaps booked or maintenance dates")
	ErrDurationBelowMinimum = errors.New("stay: duration below minimum")
	ErrDurationAboveMaximum = errors.New("stay: duration above maximum")
	ErrSelectionRequired    = errors.New("stay: no active selection")
)

// Rules are the per-villa constraints on short stays. MaxShortStayNights of
// zero means no ceiling.
type Rules struct {
	MinShortStayNights int
	MaxShortStayNights int
}

// Selection is the current stay candidate. Start and End are zero while no
// selection is active; Weeks and Nights then hold the pending duration the
// next start-date pick will use. End is the last occupied night.
// Invariant: in weekly mode Nights == Weeks*7 after every transition.
type Selection struct {
	Start  calendar.Date
	End    calendar.Date
	Weeks  int
	Nights int
}

// Active reports whether a start date has been chosen.
func (s Selection) Active() bool {
	return !s.Start.IsZero()
}

// Checkout is the day after the last occupied night.
func (s Selection) Checkout() calendar.Date {
	return CheckoutDate(s.End)
}

// Session owns one calendar instance's selection state and enforces the
// booking rules. Every transition either fully applies or leaves the prior
// state untouched and returns a typed validation error.
type Session struct {
	ID        string
	VillaID   string
	Mode      Mode
	Rules     Rules
	Selection Selection
	CreatedAt time.Time
	UpdatedAt time.Time
	events.EventRecorder
}

// NewSession starts a session with an empty selection and default durations.
func NewSession(id, villaID string, mode Mode, rules Rules, now time.Time) *Session {
	if rules.MinShortStayNights < 1 {
		rules.MinShortStayNights = 1
	}
	return &Session{
		ID:        id,
		VillaID:   villaID,
		Mode:      mode,
		Rules:     rules,
		Selection: Selection{Weeks: 1, Nights: rules.MinShortStayNights},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// SelectStart attempts a start-date transition. In weekly mode the date must
// be a Saturday and the pending number of weeks must be free. In short mode
// any free date works; clicking a date after an active start instead extends
// the stay so the clicked date becomes the checkout day.
func (s *Session) SelectStart(date calendar.Date, avail *availability.Index, now time.Time) error {
	switch s.Mode {
	case ModeWeekly:
		return s.selectWeeklyStart(date, avail, now)
	default:
		return s.selectShortStart(date, avail, now)
	}
}

func (s *Session) selectWeeklyStart(date calendar.Date, avail *availability.Index, now time.Time) error {
	if date.Weekday() != time.Saturday {
		return ErrInvalidStartDay
	}
	weeks := s.Selection.Weeks
	if !avail.IsRangeAvailable(date, weeks*7) {
		s.recordConflict(date, weeks*7, now)
		return ErrPeriodUnavailable
	}
	s.Selection = Selection{
		Start:  date,
		End:    WeeklyEnd(date, weeks),
		Weeks:  weeks,
		Nights: weeks * 7,
	}
	s.touch(now)
	s.Record(StaySelected{SessionID: s.ID, VillaID: s.VillaID, Mode: s.Mode, Start: s.Selection.Start, End: s.Selection.End, Nights: s.Selection.Nights, At: now.UTC()})
	return nil
}

func (s *Session) selectShortStart(date calendar.Date, avail *availability.Index, now time.Time) error {
	if s.Selection.Active() && date.After(s.Selection.Start) {
		return s.extendShortStay(date, avail, now)
	}
	nights := s.Selection.Nights
	if !avail.IsRangeAvailable(date, nights) {
		s.recordConflict(date, nights, now)
		return ErrPeriodUnavailable
	}
	s.Selection = Selection{
		Start:  date,
		End:    ShortStayEnd(date, nights),
		Weeks:  1,
		Nights: nights,
	}
	s.touch(now)
	s.Record(StaySelected{SessionID: s.ID, VillaID: s.VillaID, Mode: s.Mode, Start: s.Selection.Start, End: s.Selection.End, Nights: nights, At: now.UTC()})
	return nil
}

// extendShortStay treats the clicked date as the desired checkout day.
func (s *Session) extendShortStay(checkout calendar.Date, avail *availability.Index, now time.Time) error {
	nights := s.Selection.Start.DaysUntil(checkout)
	if nights < s.Rules.MinShortStayNights {
		return ErrDurationBelowMinimum
	}
	if s.Rules.MaxShortStayNights > 0 && nights > s.Rules.MaxShortStayNights {
		return ErrDurationAboveMaximum
	}
	if !avail.IsRangeAvailable(s.Selection.Start, nights) {
		s.recordConflict(s.Selection.Start, nights, now)
		return ErrPeriodUnavailable
	}
	s.Selection.End = ShortStayEnd(s.Selection.Start, nights)
	s.Selection.Nights = nights
	s.touch(now)
	s.Record(StayDurationChanged{SessionID: s.ID, VillaID: s.VillaID, Mode: s.Mode, Start: s.Selection.Start, End: s.Selection.End, Nights: nights, At: now.UTC()})
	return nil
}

// AdjustDuration applies a +/- step. Without an active selection only the
// pending duration moves; with one, the new full span is re-validated and
// the prior selection survives any failure.
func (s *Session) AdjustDuration(delta int, avail *availability.Index, now time.Time) error {
	switch s.Mode {
	case ModeWeekly:
		return s.adjustWeeks(delta, avail, now)
	default:
		return s.adjustNights(delta, avail, now)
	}
}

func (s *Session) adjustWeeks(delta int, avail *availability.Index, now time.Time) error {
	weeks := s.Selection.Weeks + delta
	if weeks < 1 {
		return ErrDurationBelowMinimum
	}
	if !s.Selection.Active() {
		s.Selection.Weeks = weeks
		s.Selection.Nights = weeks * 7
		s.touch(now)
		return nil
	}
	if !avail.IsRangeAvailable(s.Selection.Start, weeks*7) {
		s.recordConflict(s.Selection.Start, weeks*7, now)
		return ErrPeriodUnavailable
	}
	s.Selection.Weeks = weeks
	s.Selection.Nights = weeks * 7
	s.Selection.End = WeeklyEnd(s.Selection.Start, weeks)
	s.touch(now)
	s.Record(StayDurationChanged{SessionID: s.ID, VillaID: s.VillaID, Mode: s.Mode, Start: s.Selection.Start, End: s.Selection.End, Nights: s.Selection.Nights, At: now.UTC()})
	return nil
}

func (s *Session) adjustNights(delta int, avail *availability.Index, now time.Time) error {
	nights := s.Selection.Nights + delta
	if nights < s.Rules.MinShortStayNights {
		return ErrDurationBelowMinimum
	}
	if s.Rules.MaxShortStayNights > 0 && nights > s.Rules.MaxShortStayNights {
		return ErrDurationAboveMaximum
	}
	if !s.Selection.Active() {
		s.Selection.Nights = nights
		s.touch(now)
		return nil
	}
	if !avail.IsRangeAvailable(s.Selection.Start, nights) {
		s.recordConflict(s.Selection.Start, nights, now)
		return ErrPeriodUnavailable
	}
	s.Selection.Nights = nights
	s.Selection.End = ShortStayEnd(s.Selection.Start, nights)
	s.touch(now)
	s.Record(StayDurationChanged{SessionID: s.ID, VillaID: s.VillaID, Mode: s.Mode, Start: s.Selection.Start, End: s.Selection.End, Nights: nights, At: now.UTC()})
	return nil
}

// SwitchMode changes the rule set. Switching always discards the active
// selection and resets the pending durations to their defaults.
func (s *Session) SwitchMode(mode Mode, now time.Time) {
	if mode == s.Mode {
		return
	}
	s.Mode = mode
	s.Selection = Selection{Weeks: 1, Nights: s.Rules.MinShortStayNights}
	s.touch(now)
	s.Record(StayModeChanged{SessionID: s.ID, VillaID: s.VillaID, Mode: mode, At: now.UTC()})
}

// Clear returns to NoSelection regardless of current state.
func (s *Session) Clear(now time.Time) {
	s.Selection = Selection{Weeks: 1, Nights: s.Rules.MinShortStayNights}
	s.touch(now)
	s.Record(StayCleared{SessionID: s.ID, VillaID: s.VillaID, At: now.UTC()})
}

// Confirm hands the selection to the caller's booking flow.
func (s *Session) Confirm(now time.Time) error {
	if !s.Selection.Active() {
		return ErrSelectionRequired
	}
	s.touch(now)
	s.Record(StayConfirmed{SessionID: s.ID, VillaID: s.VillaID, Mode: s.Mode, Start: s.Selection.Start, End: s.Selection.End, Nights: s.Selection.Nights, At: now.UTC()})
	return nil
}

func (s *Session) recordConflict(start calendar.Date, lengthDays int, now time.Time) {
	s.Record(StayConflictDetected{SessionID: s.ID, VillaID: s.VillaID, Start: start, LengthDays: lengthDays, At: now.UTC()})
}

func (s *Session) touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}
