package villa

import (
	"context"
	"errors"
	"strings"

	"villastay/internal/domain/availability"
	"villastay/internal/domain/calendar"
	"villastay/internal/domain/pricing"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/stay"
)

var (
	ErrIDRequired    = errors.New("villa: id is required")
	ErrNameRequired  = errors.New("villa: name is required")
	ErrRatesRequired = errors.New("villa: weekly and nightly rates must carry a currency")
	ErrStayRules     = errors.New("villa: min short-stay nights must be >= 1 and <= max when a max is set")
	ErrNotFound      = errors.New("villa: not found")
)

type VillaID string

// Villa holds everything the selection core needs about one property: the
// rates, the short-stay bounds, and the raw unavailability sources the
// availability index is built from.
type Villa struct {
	ID          VillaID
	Name        string
	Description string

	Rates pricing.Rates
	Rules stay.Rules

	WeeklyBookings   []availability.WeeklyBooking
	ShortBookings    []availability.ShortBooking
	MaintenanceDates []calendar.Date
}

type CreateVillaParams struct {
	ID          VillaID
	Name        string
	Description string

	WeeklyRate       money.Money
	NightlyRate      money.Money
	DiscountPercent  int64
	DiscountMinWeeks int

	MinShortStayNights int
	MaxShortStayNights int

	WeeklyBookings   []availability.WeeklyBooking
	ShortBookings    []availability.ShortBooking
	MaintenanceDates []calendar.Date
}

func NewVilla(params CreateVillaParams) (*Villa, error) {
	if strings.TrimSpace(string(params.ID)) == "" {
		return nil, ErrIDRequired
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if params.WeeklyRate.Currency == "" || params.NightlyRate.Currency == "" {
		return nil, ErrRatesRequired
	}
	if params.MinShortStayNights < 1 {
		return nil, ErrStayRules
	}
	if params.MaxShortStayNights > 0 && params.MaxShortStayNights < params.MinShortStayNights {
		return nil, ErrStayRules
	}
	return &Villa{
		ID:          params.ID,
		Name:        params.Name,
		Description: params.Description,
		Rates: pricing.Rates{
			WeeklyRate:       params.WeeklyRate,
			NightlyRate:      params.NightlyRate,
			DiscountPercent:  params.DiscountPercent,
			DiscountMinWeeks: params.DiscountMinWeeks,
		},
		Rules: stay.Rules{
			MinShortStayNights: params.MinShortStayNights,
			MaxShortStayNights: params.MaxShortStayNights,
		},
		WeeklyBookings:   params.WeeklyBookings,
		ShortBookings:    params.ShortBookings,
		MaintenanceDates: params.MaintenanceDates,
	}, nil
}

// AvailabilityIndex materializes the villa's unavailable-day set. The index
// is rebuilt on demand; the booking sources are static per villa.
func (v *Villa) AvailabilityIndex() *availability.Index {
	return availability.NewIndex(v.WeeklyBookings, v.ShortBookings, v.MaintenanceDates)
}

type Repository interface {
	ByID(ctx context.Context, id VillaID) (*Villa, error)
	Save(ctx context.Context, villa *Villa) error
	List(ctx context.Context) ([]*Villa, error)
}
