package sessions

import (
	"context"
	"errors"
	"time"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
	"villastay/internal/domain/grid"
)

const getGridKey = "sessions.grid"

var ErrInvalidMonth = errors.New("sessions: month must be between 1 and 12")

type GetGridQuery struct {
	SessionID string
	Year      int
	Month     int
}

func (q GetGridQuery) Key() string { return getGridKey }

type GetGridHandler struct {
	Deps
}

func (h *GetGridHandler) Handle(ctx context.Context, q GetGridQuery) (dto.Grid, error) {
	if q.Month < 1 || q.Month > 12 {
		return dto.Grid{}, ErrInvalidMonth
	}
	sess, v, err := h.load(ctx, q.SessionID)
	if err != nil {
		return dto.Grid{}, err
	}
	month := grid.BuildMonth(q.Year, time.Month(q.Month), sess.Mode, sess.Selection, v.AvailabilityIndex())
	return dto.MapGrid(month), nil
}

var _ queries.Handler[GetGridQuery, dto.Grid] = (*GetGridHandler)(nil)
