package session

import (
	"context"
	"time"
)

// Session is the server-side half of a login. The JWT handed to the client
// only carries its ID.
type Session struct {
	ID          string    `json:"id"`
	UserID      uint      `json:"userId"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CounselorID string    `json:"counselorId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store persists sessions. Load returns (nil, nil) for an unknown or expired
// id.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context, id string) error
}
