package sessions

import (
	"context"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/domain/stay"
)

const switchModeKey = "sessions.switch_mode"

type SwitchModeCommand struct {
	SessionID string
	Mode      string
}

func (c SwitchModeCommand) Key() string { return switchModeKey }

type SwitchModeHandler struct {
	Deps
}

func (h *SwitchModeHandler) Handle(ctx context.Context, cmd SwitchModeCommand) (dto.Session, error) {
	mode, err := stay.ParseMode(cmd.Mode)
	if err != nil {
		return dto.Session{}, err
	}
	sess, v, err := h.load(ctx, cmd.SessionID)
	if err != nil {
		return dto.Session{}, err
	}
	sess.SwitchMode(mode, time.Now().UTC())
	if err := h.drain(ctx, sess); err != nil {
		return dto.Session{}, err
	}
	if err := h.Sessions.Save(ctx, sess); err != nil {
		return dto.Session{}, err
	}
	return mapWithQuote(sess, v)
}

var _ commands.Handler[SwitchModeCommand, dto.Session] = (*SwitchModeHandler)(nil)
