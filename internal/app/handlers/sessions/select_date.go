package sessions

import (
	"context"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/domain/calendar"
)

const selectDateKey = "sessions.select_date"

type SelectDateCommand struct {
	SessionID string
	Date      string
}

func (c SelectDateCommand) Key() string { return selectDateKey }

type SelectDateHandler struct {
	Deps
}

func (h *SelectDateHandler) Handle(ctx context.Context, cmd SelectDateCommand) (dto.Session, error) {
	date, err := calendar.Parse(cmd.Date)
	if err != nil {
		return dto.Session{}, err
	}
	sess, v, err := h.load(ctx, cmd.SessionID)
	if err != nil {
		return dto.Session{}, err
	}
	domainErr := sess.SelectStart(date, v.AvailabilityIndex(), time.Now().UTC())
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

var _ commands.Handler[SelectDateCommand, dto.Session] = (*SelectDateHandler)(nil)
