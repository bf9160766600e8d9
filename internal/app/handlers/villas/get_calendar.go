package villas

import (
	"context"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
	"villastay/internal/domain/villa"
)

const getCalendarKey = "villas.calendar"

type GetCalendarQuery struct {
	VillaID string
}

func (q GetCalendarQuery) Key() string { return getCalendarKey }

type GetCalendarHandler struct {
	Villas villa.Repository
}

func (h *GetCalendarHandler) Handle(ctx context.Context, q GetCalendarQuery) (dto.Calendar, error) {
	v, err := h.Villas.ByID(ctx, villa.VillaID(q.VillaID))
	if err != nil {
		return dto.Calendar{}, err
	}
	return dto.MapCalendar(string(v.ID), v.AvailabilityIndex().Blocks()), nil
}

var _ queries.Handler[GetCalendarQuery, dto.Calendar] = (*GetCalendarHandler)(nil)
