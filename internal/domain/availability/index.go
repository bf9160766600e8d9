package availability

import (
	"sort"

	"villastay/internal/domain/calendar"
)

// BlockReason classifies why a span of days is unavailable.
type BlockReason string

const (
	ReasonWeeklyBooking BlockReason = "WEEKLY_BOOKING"
	ReasonShortBooking  BlockReason = "SHORT_BOOKING"
	ReasonMaintenance   BlockReason = "MAINTENANCE"
)

// WeeklyBooking blocks Weeks consecutive Saturday-to-Friday blocks, i.e.
// Weeks*7 days starting at Start.
type WeeklyBooking struct {
	Start calendar.Date
	Weeks int
}

// ShortBooking blocks exactly Nights consecutive days starting at Start.
type ShortBooking struct {
	Start  calendar.Date
	Nights int
}

// Block is a contiguous unavailable span; End is the last blocked day.
type Block struct {
	Start  calendar.Date
	End    calendar.Date
	Reason BlockReason
}

// Index answers point and range availability queries against the day
// expansion of the booking records and maintenance dates it was built from.
// It is derived, read-only state: rebuild it when the inputs change.
type Index struct {
	days   map[calendar.Date]struct{}
	blocks []Block
}

// NewIndex materializes the union of all blocked days.
func NewIndex(weekly []WeeklyBooking, short []ShortBooking, maintenance []calendar.Date) *Index {
	idx := &Index{days: make(map[calendar.Date]struct{})}
	for _, b := range weekly {
		if b.Weeks <= 0 {
			continue
		}
		span := b.Weeks * 7
		idx.addBlock(Block{Start: b.Start, End: b.Start.AddDays(span - 1), Reason: ReasonWeeklyBooking})
	}
	for _, b := range short {
		if b.Nights <= 0 {
			continue
		}
		idx.addBlock(Block{Start: b.Start, End: b.Start.AddDays(b.Nights - 1), Reason: ReasonShortBooking})
	}
	for _, d := range maintenance {
		idx.addBlock(Block{Start: d, End: d, Reason: ReasonMaintenance})
	}
	sort.Slice(idx.blocks, func(i, j int) bool {
		return idx.blocks[i].Start.Before(idx.blocks[j].Start)
	})
	return idx
}

func (x *Index) addBlock(b Block) {
	x.blocks = append(x.blocks, b)
	for d := b.Start; !d.After(b.End); d = d.AddDays(1) {
		x.days[d] = struct{}{}
	}
}

// IsUnavailable reports whether the single day falls inside any booked or
// maintenance span.
func (x *Index) IsUnavailable(d calendar.Date) bool {
	_, blocked := x.days[d]
	return blocked
}

// IsRangeAvailable checks every day in [start, start+lengthDays-1] inclusive
// and short-circuits on the first blocked day.
func (x *Index) IsRangeAvailable(start calendar.Date, lengthDays int) bool {
	for i := 0; i < lengthDays; i++ {
		if x.IsUnavailable(start.AddDays(i)) {
			return false
		}
	}
	return true
}

// Blocks returns the raw spans sorted by start date.
func (x *Index) Blocks() []Block {
	out := make([]Block, len(x.blocks))
	copy(out, x.blocks)
	return out
}
