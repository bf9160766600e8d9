package sessions

import (
	"context"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/domain/stay"
	"villastay/internal/domain/villa"
)

const createSessionKey = "sessions.create"

type CreateSessionCommand struct {
	CommandID string
	VillaID   string
	Mode      string
}

func (c CreateSessionCommand) Key() string { return createSessionKey }

type CreateSessionHandler struct {
	Deps
}

func (h *CreateSessionHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (dto.Session, error) {
	v, err := h.Villas.ByID(ctx, villa.VillaID(cmd.VillaID))
	if err != nil {
		return dto.Session{}, err
	}
	mode := stay.ModeWeekly
	if cmd.Mode != "" {
		mode, err = stay.ParseMode(cmd.Mode)
		if err != nil {
			return dto.Session{}, err
		}
	}
	sess := stay.NewSession(cmd.CommandID, string(v.ID), mode, v.Rules, time.Now().UTC())
	if err := h.Sessions.Save(ctx, sess); err != nil {
		return dto.Session{}, err
	}
	return dto.MapSession(sess, nil), nil
}

var _ commands.Handler[CreateSessionCommand, dto.Session] = (*CreateSessionHandler)(nil)
