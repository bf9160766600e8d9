package sessions

import (
	"context"
	"errors"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
)

const adjustDurationKey = "sessions.adjust_duration"

var ErrZeroDelta = errors.New("sessions: delta must be non-zero")

type AdjustDurationCommand struct {
	SessionID string
	Delta     int
}

func (c AdjustDurationCommand) Key() string { return adjustDurationKey }

type AdjustDurationHandler struct {
	Deps
}

func (h *AdjustDurationHandler) Handle(ctx context.Context, cmd AdjustDurationCommand) (dto.Session, error) {
	if cmd.Delta == 0 {
		return dto.Session{}, ErrZeroDelta
	}
	sess, v, err := h.load(ctx, cmd.SessionID)
	if err != nil {
		return dto.Session{}, err
	}
	domainErr := sess.AdjustDuration(cmd.Delta, v.AvailabilityIndex(), time.Now().UTC())
	if err := h.drain(ctx, sess); err != nil {
		return dto.Session{}, err
	}
	if domainErr != nil {
		return dto.Session{}, domainErr
	}
	if err := h.Sessions.Save(ctx, sess); err != nil {
		return dto.Session{}, err
	}
	return mapWithQuote(sess, v)
}

var _ commands.Handler[AdjustDurationCommand, dto.Session] = (*AdjustDurationHandler)(nil)
