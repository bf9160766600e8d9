package sessions

import (
	"context"

	"villastay/internal/app/dto"
	"villastay/internal/app/outbox"
	"villastay/internal/domain/pricing"
	"villastay/internal/domain/stay"
	"villastay/internal/domain/villa"
)

// Deps is the common dependency set shared by every session handler.
type Deps struct {
	Sessions stay.Repository
	Villas   villa.Repository
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
}

func (d Deps) load(ctx context.Context, sessionID string) (*stay.Session, *villa.Villa, error) {
	sess, err := d.Sessions.ByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	v, err := d.Villas.ByID(ctx, villa.VillaID(sess.VillaID))
	if err != nil {
		return nil, nil, err
	}
	return sess, v, nil
}

// drain moves the session's pending events into the outbox. Conflict events
// recorded by rejected transitions are drained too, so the audit trail
// survives validation failures.
func (d Deps) drain(ctx context.Context, sess *stay.Session) error {
	evs := sess.PendingEvents()
	sess.ClearEvents()
	encoder := d.Encoder
	if encoder == nil {
		encoder = outbox.JSONEventEncoder{}
	}
	return outbox.RecordDomainEvents(ctx, d.Outbox, encoder, evs)
}

func mapWithQuote(sess *stay.Session, v *villa.Villa) (dto.Session, error) {
	if !sess.Selection.Active() {
		return dto.MapSession(sess, nil), nil
	}
	quote, err := pricing.QuoteSelection(v.Rates, sess.Mode, sess.Selection)
	if err != nil {
		return dto.Session{}, err
	}
	return dto.MapSession(sess, &quote), nil
}
