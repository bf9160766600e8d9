package stay

import (
	"time"

	"villastay/internal/domain/calendar"
)

type StaySelected struct {
	SessionID string
	VillaID   string
	Mode      Mode
	Start     calendar.Date
	End       calendar.Date
	Nights    int
	At        time.Time
}

func (e StaySelected) EventName() string     { return "stay.selected" }
func (e StaySelected) AggregateID() string   { return e.SessionID }
func (e StaySelected) OccurredAt() time.Time { return e.At }

type StayDurationChanged struct {
	SessionID string
	VillaID   string
	Mode      Mode
	Start     calendar.Date
	End       calendar.Date
	Nights    int
	At        time.Time
}

func (e StayDurationChanged) EventName() string     { return "stay.duration_changed" }
func (e StayDurationChanged) AggregateID() string   { return e.SessionID }
func (e StayDurationChanged) OccurredAt() time.Time { return e.At }

type StayModeChanged struct {
	SessionID string
	VillaID   string
	Mode      Mode
	At        time.Time
}

func (e StayModeChanged) EventName() string     { return "stay.mode_changed" }
func (e StayModeChanged) AggregateID() string   { return e.SessionID }
func (e StayModeChanged) OccurredAt() time.Time { return e.At }

type StayCleared struct {
	SessionID string
	VillaID   string
	At        time.Time
}

func (e StayCleared) EventName() string     { return "stay.cleared" }
func (e StayCleared) AggregateID() string   { return e.SessionID }
func (e StayCleared) OccurredAt() time.Time { return e.At }

type StayConfirmed struct {
	SessionID string
	VillaID   string
	Mode      Mode
	Start     calendar.Date
	End       calendar.Date
	Nights    int
	At        time.Time
}

func (e StayConfirmed) EventName() string     { return "stay.confirmed" }
func (e StayConfirmed) AggregateID() string   { return e.SessionID }
func (e StayConfirmed) OccurredAt() time.Time { return e.At }

// StayConflictDetected is recorded whenever availability checking blocks a
// transition, mirroring the calendar's overbooking audit trail.
type StayConflictDetected struct {
	SessionID  string
	VillaID    string
	Start      calendar.Date
	LengthDays int
	At         time.Time
}

func (e StayConflictDetected) EventName() string     { return "stay.conflict_detected" }
func (e StayConflictDetected) AggregateID() string   { return e.SessionID }
func (e StayConflictDetected) OccurredAt() time.Time { return e.At }
