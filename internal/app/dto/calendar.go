package dto

import (
	"villastay/internal/domain/availability"
)

type CalendarBlock struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}

type Calendar struct {
	VillaID string          `json:"villa_id"`
	Blocks  []CalendarBlock `json:"blocks"`
}

func MapCalendar(villaID string, blocks []availability.Block) Calendar {
	out := Calendar{VillaID: villaID, Blocks: make([]CalendarBlock, 0, len(blocks))}
	for _, b := range blocks {
		out.Blocks = append(out.Blocks, CalendarBlock{
			Start:  b.Start.String(),
			End:    b.End.String(),
			Reason: string(b.Reason),
		})
	}
	return out
}
