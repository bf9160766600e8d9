package dto

import (
	"villastay/internal/domain/pricing"
	"villastay/internal/domain/stay"
)

type Selection struct {
	Active   bool   `json:"active"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Checkout string `json:"checkout,omitempty"`
	Weeks    int    `json:"weeks"`
	Nights   int    `json:"nights"`
}

type Price struct {
	BasePrice   int64  `json:"base_price"`
	FinalPrice  int64  `json:"final_price"`
	Savings     int64  `json:"savings"`
	HasDiscount bool   `json:"has_discount"`
	Currency    string `json:"currency"`
}

// Summary is the render-ready recap of an active selection: the range label
// plus the price breakdown.
type Summary struct {
	Label  string `json:"label"`
	Weeks  int    `json:"weeks"`
	Nights int    `json:"nights"`
	Price  Price  `json:"price"`
}

type Session struct {
	ID        string    `json:"id"`
	VillaID   string    `json:"villa_id"`
	Mode      string    `json:"mode"`
	Selection Selection `json:"selection"`
	Summary   *Summary  `json:"summary,omitempty"`
}

func MapSelection(sel stay.Selection) Selection {
	out := Selection{
		Active: sel.Active(),
		Weeks:  sel.Weeks,
		Nights: sel.Nights,
	}
	if sel.Active() {
		out.Start = sel.Start.String()
		out.End = sel.End.String()
		out.Checkout = sel.Checkout().String()
	}
	return out
}

func MapPrice(q pricing.Quote) Price {
	return Price{
		BasePrice:   q.BasePrice.Amount,
		FinalPrice:  q.FinalPrice.Amount,
		Savings:     q.Savings.Amount,
		HasDiscount: q.HasDiscount,
		Currency:    q.BasePrice.Currency,
	}
}

// MapSession renders the session with a summary when a selection is active.
// The quote is computed by the caller so mapping stays error-free.
func MapSession(s *stay.Session, quote *pricing.Quote) Session {
	out := Session{
		ID:        s.ID,
		VillaID:   s.VillaID,
		Mode:      string(s.Mode),
		Selection: MapSelection(s.Selection),
	}
	if s.Selection.Active() && quote != nil {
		out.Summary = &Summary{
			Label:  stay.RangeLabel(s.Selection.Start, s.Selection.End),
			Weeks:  s.Selection.Weeks,
			Nights: s.Selection.Nights,
			Price:  MapPrice(*quote),
		}
	}
	return out
}
