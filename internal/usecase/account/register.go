package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	"github.com/BruksfildServices01/educonnect-booking/internal/auth"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/infra/repository"
	"github.com/BruksfildServices01/educonnect-booking/internal/models"
	"github.com/BruksfildServices01/educonnect-booking/internal/session"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Register struct {
	users       Users
	store       session.Store
	tokens      *auth.TokenIssuer
	audit       AuditSink
	emailDomain func(ctx context.Context, email string) bool
}

func NewRegister(
	users Users,
	store session.Store,
	tokens *auth.TokenIssuer,
	audit AuditSink,
	emailDomain func(ctx context.Context, email string) bool,
) *Register {
	return &Register{
		users:       users,
		store:       store,
		tokens:      tokens,
		audit:       audit,
		emailDomain: emailDomain,
	}
}

// Execute creates a student account and logs it in.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Result, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if uc.emailDomain != nil && !uc.emailDomain(ctx, email) {
		return nil, httperr.ErrBusiness(ErrCodeInvalidEmailDomain)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleStudent,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, httperr.ErrBusiness(ErrCodeEmailTaken)
		}
		return nil, err
	}

	res, err := startSession(ctx, uc.store, uc.tokens, u, time.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionRegister,
		Entity:   "user",
		EntityID: res.Session.ID,
	})
	return res, nil
}
