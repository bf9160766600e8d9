package pricing

import (
	"errors"

	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/stay"
)

var (
	ErrCurrencyUnset       = errors.New("pricing: currency must be defined")
	ErrNonPositiveDuration = errors.New("pricing: duration must be positive")
)

// Rates are the per-villa prices and the long-stay discount rule. A
// DiscountMinWeeks of zero disables the discount entirely.
type Rates struct {
	WeeklyRate       money.Money
	NightlyRate      money.Money
	DiscountPercent  int64
	DiscountMinWeeks int
}

// Quote is a fully computed price breakdown for one stay.
type Quote struct {
	Mode        stay.Mode
	Weeks       int
	Nights      int
	BasePrice   money.Money
	FinalPrice  money.Money
	Savings     money.Money
	HasDiscount bool
}

// Calculate prices a stay of the given mode and duration. Weekly stays of
// DiscountMinWeeks weeks or more get DiscountPercent off; short stays never
// discount.
func Calculate(rates Rates, mode stay.Mode, weeks, nights int) (Quote, error) {
	var base money.Money
	switch mode {
	case stay.ModeWeekly:
		if rates.WeeklyRate.Currency == "" {
			return Quote{}, ErrCurrencyUnset
		}
		if weeks <= 0 {
			return Quote{}, ErrNonPositiveDuration
		}
		base = rates.WeeklyRate.Multiply(int64(weeks))
	default:
		if rates.NightlyRate.Currency == "" {
			return Quote{}, ErrCurrencyUnset
		}
		if nights <= 0 {
			return Quote{}, ErrNonPositiveDuration
		}
		base = rates.NightlyRate.Multiply(int64(nights))
	}

	quote := Quote{
		Mode:       mode,
		Weeks:      weeks,
		Nights:     nights,
		BasePrice:  base,
		FinalPrice: base,
		Savings:    money.Money{Currency: base.Currency},
	}

	if mode == stay.ModeWeekly && rates.DiscountMinWeeks > 0 && weeks >= rates.DiscountMinWeeks {
		quote.FinalPrice = base.ApplyPercentDiscount(rates.DiscountPercent)
		savings, err := base.Sub(quote.FinalPrice)
		if err != nil {
			return Quote{}, err
		}
		quote.Savings = savings
		quote.HasDiscount = !savings.IsZero()
	}
	return quote, nil
}

// QuoteSelection prices an active selection directly.
func QuoteSelection(rates Rates, mode stay.Mode, sel stay.Selection) (Quote, error) {
	return Calculate(rates, mode, sel.Weeks, sel.Nights)
}
