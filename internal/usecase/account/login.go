package account

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	"github.com/BruksfildServices01/educonnect-booking/internal/auth"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/infra/repository"
	"github.com/BruksfildServices01/educonnect-booking/internal/session"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	users  Users
	store  session.Store
	tokens *auth.TokenIssuer
	audit  AuditSink
}

func NewLogin(users Users, store session.Store, tokens *auth.TokenIssuer, audit AuditSink) *Login {
	return &Login{users: users, store: store, tokens: tokens, audit: audit}
}

// Execute checks credentials and opens a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*Result, error) {
	u, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, httperr.ErrBusiness(ErrCodeInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, httperr.ErrBusiness(ErrCodeInvalidCredentials)
	}

	res, err := startSession(ctx, uc.store, uc.tokens, u, time.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionLogin,
		Entity:   "session",
		EntityID: res.Session.ID,
	})
	return res, nil
}
