package account

import (
	"context"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	"github.com/BruksfildServices01/educonnect-booking/internal/session"
)

type Logout struct {
	store session.Store
	audit AuditSink
}

func NewLogout(store session.Store, audit AuditSink) *Logout {
	return &Logout{store: store, audit: audit}
}

func (uc *Logout) Execute(ctx context.Context, sess session.Session) error {
	if err := uc.store.Clear(ctx, sess.ID); err != nil {
		return err
	}

	userID := sess.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionLogout,
		Entity:   "session",
		EntityID: sess.ID,
	})
	return nil
}
