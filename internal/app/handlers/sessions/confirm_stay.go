package sessions

import (
	"context"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/app/middleware"
)

const confirmStayKey = "sessions.confirm"

type ConfirmStayCommand struct {
	SessionID       string
	IdempotencyKeyV string
}

func (c ConfirmStayCommand) Key() string { return confirmStayKey }

func (c ConfirmStayCommand) IdempotencyKey() string { return c.IdempotencyKeyV }

func (c ConfirmStayCommand) ResultPrototype() any { return &ConfirmStayResult{} }

type ConfirmStayResult struct {
	Session dto.Session `json:"session"`
}

type ConfirmStayHandler struct {
	Deps
}

func (h *ConfirmStayHandler) Handle(ctx context.Context, cmd ConfirmStayCommand) (*ConfirmStayResult, error) {
	sess, v, err := h.load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	domainErr := sess.Confirm(time.Now().UTC())
	if err := h.drain(ctx, sess); err != nil {
		return nil, err
	}
	if domainErr != nil {
		return nil, domainErr
	}
	if err := h.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	view, err := mapWithQuote(sess, v)
	if err != nil {
		return nil, err
	}
	return &ConfirmStayResult{Session: view}, nil
}

var _ commands.Handler[ConfirmStayCommand, *ConfirmStayResult] = (*ConfirmStayHandler)(nil)
var _ middleware.IdempotentCommand = (*ConfirmStayCommand)(nil)
