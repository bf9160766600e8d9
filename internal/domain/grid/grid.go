package grid

import (
	"time"

	"villastay/internal/domain/availability"
	"villastay/internal/domain/calendar"
	"villastay/internal/domain/stay"
)

// The month view is always 6 rows by 7 columns, Sunday-first, so that any
// month fits regardless of where its first day lands. Cells before the 1st
// and after the last day are padding with a nil Date.

const (
	Rows    = 6
	Columns = 7
)

// Cell is one rendered day. All flags are computed per build; nothing here
// is persisted.
type Cell struct {
	Date *calendar.Date

	IsCheckinEligible bool
	IsCheckoutDay     bool
	IsUnavailable     bool

	IsInSelection    bool
	IsSelectionStart bool
	IsSelectionEnd   bool
	IsSelectionMid   bool

	// Row-layout flags let the renderer join adjacent in-selection cells
	// without gaps and round the block off at week boundaries.
	IsFirstColumnOfRow bool
	IsLastColumnOfRow  bool
	JoinsPrevInRow     bool
	JoinsNextInRow     bool
}

// Month is the 6x7 grid for one (year, month) pair.
type Month struct {
	Year  int
	Month time.Month
	Cells [Rows][Columns]Cell
}

// BuildMonth renders the grid for the given month against the current
// selection and availability. Pure function of its inputs.
func BuildMonth(year int, month time.Month, mode stay.Mode, sel stay.Selection, avail *availability.Index) Month {
	out := Month{Year: year, Month: month}

	first := calendar.FirstWeekday(year, month)
	total := calendar.DaysInMonth(year, month)

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			idx := row*Columns + col
			day := idx - first + 1
			cell := Cell{
				IsFirstColumnOfRow: col == 0,
				IsLastColumnOfRow:  col == Columns-1,
			}
			if day >= 1 && day <= total {
				date := calendar.NewDate(year, month, day)
				cell.Date = &date
				fillDayFlags(&cell, date, mode, sel, avail)
			}
			out.Cells[row][col] = cell
		}
	}

	markRowJoins(&out)
	return out
}

func fillDayFlags(cell *Cell, date calendar.Date, mode stay.Mode, sel stay.Selection, avail *availability.Index) {
	cell.IsUnavailable = avail.IsUnavailable(date)

	switch mode {
	case stay.ModeWeekly:
		cell.IsCheckinEligible = date.Weekday() == time.Saturday && !cell.IsUnavailable
		cell.IsCheckoutDay = date.Weekday() == time.Friday
	default:
		cell.IsCheckinEligible = !cell.IsUnavailable
	}

	if !sel.Active() {
		return
	}
	if date.Compare(sel.Start) >= 0 && date.Compare(sel.End) <= 0 {
		cell.IsInSelection = true
		cell.IsSelectionStart = date == sel.Start
		cell.IsSelectionEnd = date == sel.End
		cell.IsSelectionMid = !cell.IsSelectionStart && !cell.IsSelectionEnd
	}
	if date == sel.Checkout() {
		cell.IsCheckoutDay = true
	}
}

// markRowJoins links horizontally adjacent in-selection cells within each
// row. Joins never cross a row boundary; the renderer rounds the block off
// at the first and last columns instead.
func markRowJoins(m *Month) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cell := &m.Cells[row][col]
			if !cell.IsInSelection {
				continue
			}
			if col > 0 && m.Cells[row][col-1].IsInSelection {
				cell.JoinsPrevInRow = true
			}
			if col < Columns-1 && m.Cells[row][col+1].IsInSelection {
				cell.JoinsNextInRow = true
			}
		}
	}
}
