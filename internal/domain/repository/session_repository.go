package repository

import (
	"context"
	"time"
)

// SessionRepository is the server-side half of a login session. The cookie
// only carries a signed reference to an entry stored here.
type SessionRepository interface {
	Create(ctx context.Context, doctorID int64, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, doctorID int64, sessionID string) (bool, error)
	Delete(ctx context.Context, doctorID int64, sessionID string) error
}
