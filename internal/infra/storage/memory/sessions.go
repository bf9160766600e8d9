package memory

import (
	"context"
	"sync"

	"villastay/internal/domain/stay"
)

// SessionRepository stores selection sessions in memory. Sessions are not
// persisted across restarts; a calendar instance simply opens a new one.
type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]*stay.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{items: make(map[string]*stay.Session)}
}

func (r *SessionRepository) ByID(ctx context.Context, id string) (*stay.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, stay.ErrNotFound
	}
	return s, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *stay.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = s
	return nil
}

var _ stay.Repository = (*SessionRepository)(nil)
