package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/stay"
)

func demoRates() Rates {
	return Rates{
		WeeklyRate:       money.Must(8400, "EUR"),
		NightlyRate:      money.Must(1200, "EUR"),
		DiscountPercent:  15,
		DiscountMinWeeks: 2,
	}
}

func TestWeeklySingleWeekNoDiscount(t *testing.T) {
	q, err := Calculate(demoRates(), stay.ModeWeekly, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(8400), q.BasePrice.Amount)
	assert.Equal(t, int64(8400), q.FinalPrice.Amount)
	assert.True(t, q.Savings.IsZero())
	assert.False(t, q.HasDiscount)
}

func TestWeeklyTwoWeeksGetsDiscount(t *testing.T) {
	q, err := Calculate(demoRates(), stay.ModeWeekly, 2, 14)
	require.NoError(t, err)
	assert.Equal(t, int64(16800), q.BasePrice.Amount)
	assert.Equal(t, int64(14280), q.FinalPrice.Amount)
	assert.Equal(t, int64(2520), q.Savings.Amount)
	assert.True(t, q.HasDiscount)
}

func TestShortStayNeverDiscounts(t *testing.T) {
	// 21 nights is three weeks worth of stay, but the discount is weekly-only.
	q, err := Calculate(demoRates(), stay.ModeShort, 0, 21)
	require.NoError(t, err)
	assert.Equal(t, int64(25200), q.BasePrice.Amount)
	assert.Equal(t, q.BasePrice, q.FinalPrice)
	assert.False(t, q.HasDiscount)
}

func TestShortStayBase(t *testing.T) {
	q, err := Calculate(demoRates(), stay.ModeShort, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), q.BasePrice.Amount)
	assert.Equal(t, int64(3600), q.FinalPrice.Amount)
}

func TestDiscountDisabledWhenThresholdZero(t *testing.T) {
	rates := demoRates()
	rates.DiscountMinWeeks = 0
	q, err := Calculate(rates, stay.ModeWeekly, 3, 21)
	require.NoError(t, err)
	assert.False(t, q.HasDiscount)
	assert.Equal(t, q.BasePrice, q.FinalPrice)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	_, err := Calculate(Rates{}, stay.ModeWeekly, 1, 7)
	assert.ErrorIs(t, err, ErrCurrencyUnset)

	_, err = Calculate(demoRates(), stay.ModeWeekly, 0, 0)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)

	_, err = Calculate(demoRates(), stay.ModeShort, 0, 0)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)
}

func TestQuoteSelection(t *testing.T) {
	sel := stay.Selection{Weeks: 2, Nights: 14}
	q, err := QuoteSelection(demoRates(), stay.ModeWeekly, sel)
	require.NoError(t, err)
	assert.Equal(t, int64(14280), q.FinalPrice.Amount)
}
