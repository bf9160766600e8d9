package sessions

import (
	"context"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
)

const getSessionKey = "sessions.get"

type GetSessionQuery struct {
	SessionID string
}

func (q GetSessionQuery) Key() string { return getSessionKey }

type GetSessionHandler struct {
	Deps
}

func (h *GetSessionHandler) Handle(ctx context.Context, q GetSessionQuery) (dto.Session, error) {
	sess, v, err := h.load(ctx, q.SessionID)
	if err != nil {
		return dto.Session{}, err
	}
	return mapWithQuote(sess, v)
}

var _ queries.Handler[GetSessionQuery, dto.Session] = (*GetSessionHandler)(nil)
