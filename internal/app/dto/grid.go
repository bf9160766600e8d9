package dto

import (
	"villastay/internal/domain/grid"
)

type GridCell struct {
	Date string `json:"date,omitempty"`

	IsCheckinEligible bool `json:"is_checkin_eligible"`
	IsCheckoutDay     bool `json:"is_checkout_day"`
	IsUnavailable     bool `json:"is_unavailable"`

	IsInSelection    bool `json:"is_in_selection"`
	IsSelectionStart bool `json:"is_selection_start"`
	IsSelectionEnd   bool `json:"is_selection_end"`
	IsSelectionMid   bool `json:"is_selection_mid"`

	IsFirstColumnOfRow bool `json:"is_first_column_of_row"`
	IsLastColumnOfRow  bool `json:"is_last_column_of_row"`
	JoinsPrevInRow     bool `json:"joins_prev_in_row"`
	JoinsNextInRow     bool `json:"joins_next_in_row"`
}

type Grid struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Weeks [][]GridCell `json:"weeks"`
}

func MapGrid(m grid.Month) Grid {
	out := Grid{
		Year:  m.Year,
		Month: int(m.Month),
		Weeks: make([][]GridCell, grid.Rows),
	}
	for row := 0; row < grid.Rows; row++ {
		cells := make([]GridCell, grid.Columns)
		for col := 0; col < grid.Columns; col++ {
			cells[col] = mapCell(m.Cells[row][col])
		}
		out.Weeks[row] = cells
	}
	return out
}

func mapCell(c grid.Cell) GridCell {
	out := GridCell{
		IsCheckinEligible:  c.IsCheckinEligible,
		IsCheckoutDay:      c.IsCheckoutDay,
		IsUnavailable:      c.IsUnavailable,
		IsInSelection:      c.IsInSelection,
		IsSelectionStart:   c.IsSelectionStart,
		IsSelectionEnd:     c.IsSelectionEnd,
		IsSelectionMid:     c.IsSelectionMid,
		IsFirstColumnOfRow: c.IsFirstColumnOfRow,
		IsLastColumnOfRow:  c.IsLastColumnOfRow,
		JoinsPrevInRow:     c.JoinsPrevInRow,
		JoinsNextInRow:     c.JoinsNextInRow,
	}
	if c.Date != nil {
		out.Date = c.Date.String()
	}
	return out
}
