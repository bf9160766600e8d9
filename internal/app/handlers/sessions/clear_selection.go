package sessions

import (
	"context"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
)

const clearSelectionKey = "sessions.clear"

type ClearSelectionCommand struct {
	SessionID string
}

func (c ClearSelectionCommand) Key() string { return clearSelectionKey }

type ClearSelectionHandler struct {
	Deps
}

func (h *ClearSelectionHandler) Handle(ctx context.Context, cmd ClearSelectionCommand) (dto.Session, error) {
	sess, v, err := h.load(ctx, cmd.SessionID)
	if err != nil {
		return dto.Session{}, err
	}
	sess.Clear(time.Now().UTC())
	if err := h.drain(ctx, sess); err != nil {
		return dto.Session{}, err
	}
	if err := h.Sessions.Save(ctx, sess); err != nil {
		return dto.Session{}, err
	}
	return mapWithQuote(sess, v)
}

var _ commands.Handler[ClearSelectionCommand, dto.Session] = (*ClearSelectionHandler)(nil)
