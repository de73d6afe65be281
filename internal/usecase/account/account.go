package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	"github.com/BruksfildServices01/educonnect-booking/internal/auth"
	"github.com/BruksfildServices01/educonnect-booking/internal/models"
	"github.com/BruksfildServices01/educonnect-booking/internal/session"
)

const (
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeEmailTaken         = "email_already_registered"
	ErrCodeInvalidEmailDomain = "invalid_email_domain"
)

// Users is the credential store; the gorm repository implements it.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type AuditSink interface {
	Dispatch(ev audit.Event)
}

// Result is what a successful register or login hands back to the client.
type Result struct {
	User    *models.User
	Token   string
	Session session.Session
}

// startSession stores a new session for u and signs a token bound to it.
func startSession(
	ctx context.Context,
	store session.Store,
	tokens *auth.TokenIssuer,
	u *models.User,
	now time.Time,
) (*Result, error) {

	sess := session.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: now,
	}
	if u.CounselorID != nil {
		sess.CounselorID = *u.CounselorID
	}

	if err := store.Save(ctx, sess); err != nil {
		return nil, err
	}

	token, err := tokens.Issue(u.ID, sess.ID, u.Role)
	if err != nil {
		return nil, err
	}

	return &Result{User: u, Token: token, Session: sess}, nil
}
