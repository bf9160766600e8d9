package stay

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("stay: session not found")

type Repository interface {
	ByID(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
}
