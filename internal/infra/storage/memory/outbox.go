package memory

import (
	"context"
	"sync"
	"time"

	appoutbox "villastay/internal/app/outbox"
	infraoutbox "villastay/internal/infra/outbox"
)

// Outbox is a no-op implementation that merely keeps events in memory until flushed.
// Used when no broker is configured.
type Outbox struct {
	mu      sync.Mutex
	records []appoutbox.EventRecord
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) Add(ctx context.Context, record appoutbox.EventRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, record)
	return nil
}

func (o *Outbox) Flush(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = nil
	return nil
}

var _ appoutbox.Outbox = (*Outbox)(nil)

// OutboxQueue keeps documents until the publishing worker drains them.
type OutboxQueue struct {
	mu   sync.Mutex
	docs map[string]*infraoutbox.EventDocument
}

func NewOutboxQueue() *OutboxQueue {
	return &OutboxQueue{docs: make(map[string]*infraoutbox.EventDocument)}
}

func (q *OutboxQueue) Add(ctx context.Context, record appoutbox.EventRecord) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now().UTC()
	q.docs[record.ID] = &infraoutbox.EventDocument{
		ID:          record.ID,
		Name:        record.Name,
		Payload:     record.Payload,
		OccurredAt:  record.OccurredAt,
		Aggregate:   record.Aggregate,
		Headers:     record.Headers,
		State:       infraoutbox.StateNew,
		NextAttempt: now,
	}
	return nil
}

// Flush is a no-op: documents stay queued until the worker publishes them.
func (q *OutboxQueue) Flush(ctx context.Context) error {
	return nil
}

func (q *OutboxQueue) Claim(ctx context.Context, workerID string) (*infraoutbox.EventDocument, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now().UTC()
	for _, doc := range q.docs {
		claimable := doc.State == infraoutbox.StateNew || doc.State == infraoutbox.StateFailed
		if !claimable || doc.NextAttempt.After(now) {
			continue
		}
		doc.State = infraoutbox.StateClaimed
		doc.ClaimedBy = workerID
		doc.ClaimedAt = now
		clone := *doc
		return &clone, nil
	}
	return nil, nil
}

func (q *OutboxQueue) MarkSent(ctx context.Context, id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if doc, ok := q.docs[id]; ok {
		doc.State = infraoutbox.StateSent
		doc.SentAt = time.Now().UTC()
	}
	return nil
}

func (q *OutboxQueue) MarkFailed(ctx context.Context, id string, next time.Time, errMsg string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if doc, ok := q.docs[id]; ok {
		doc.State = infraoutbox.StateFailed
		doc.NextAttempt = next
		doc.LastError = errMsg
		doc.Attempts++
	}
	return nil
}

var _ appoutbox.Outbox = (*OutboxQueue)(nil)
var _ infraoutbox.Store = (*OutboxQueue)(nil)
