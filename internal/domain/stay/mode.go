package stay

import (
	"errors"
	"fmt"
)

var ErrUnknownMode = errors.New("stay: unknown booking mode")

// Mode selects the rule set governing start dates, duration units and pricing.
type Mode string

const (
	// ModeWeekly books whole Saturday-to-Friday weeks.
	ModeWeekly Mode = "weekly"
	// ModeShort books a flexible number of nights with a minimum floor.
	ModeShort Mode = "short"
)

// ParseMode validates a wire-level mode string.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeWeekly, ModeShort:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}
