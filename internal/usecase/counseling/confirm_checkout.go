package counseling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
)

type ConfirmCheckoutInput struct {
	ReservationID string
	UserID        uint
}

type ConfirmCheckoutOutput struct {
	ReservationID   string
	PaymentIntentID string
	SlotTime        string
	ConfirmedAt     time.Time
}

// ConfirmCheckout turns a hold into a booking once its payment intent has
// succeeded. A confirmed hold no longer expires.
type ConfirmCheckout struct {
	reservations domain.Reservations
	gateway      domain.PaymentGateway
	audit        AuditSink
	log          *zap.Logger
	now          Clock
}

func NewConfirmCheckout(
	reservations domain.Reservations,
	gateway domain.PaymentGateway,
	audit AuditSink,
	log *zap.Logger,
	now Clock,
) *ConfirmCheckout {
	return &ConfirmCheckout{
		reservations: reservations,
		gateway:      gateway,
		audit:        audit,
		log:          log,
		now:          now,
	}
}

func (uc *ConfirmCheckout) Execute(ctx context.Context, in ConfirmCheckoutInput) (*ConfirmCheckoutOutput, error) {
	res, err := uc.reservations.Get(ctx, in.ReservationID)
	if err != nil {
		return nil, err
	}
	// Someone else's reservation looks the same as a missing one.
	if res.UserID != in.UserID {
		return nil, httperr.ErrBusiness(domain.ErrCodeReservationNotFound)
	}

	out := &ConfirmCheckoutOutput{
		ReservationID:   res.ID,
		PaymentIntentID: res.PaymentIntentID,
		SlotTime:        res.SlotTime,
	}
	if res.ConfirmedAt != nil {
		out.ConfirmedAt = *res.ConfirmedAt
		return out, nil
	}
	if res.PaymentIntentID == "" {
		return nil, httperr.ErrBusiness(domain.ErrCodePaymentIncomplete)
	}

	pi, err := uc.gateway.GetPaymentIntent(ctx, res.PaymentIntentID)
	if err != nil {
		uc.log.Error("payment intent lookup failed",
			zap.String("reservation_id", res.ID),
			zap.String("payment_intent_id", res.PaymentIntentID),
			zap.Error(err),
		)
		return nil, httperr.ErrBusiness(domain.ErrCodePaymentFailed)
	}
	if pi.Status != domain.PaymentStatusSucceeded {
		return nil, httperr.ErrBusiness(domain.ErrCodePaymentIncomplete)
	}

	now := uc.now()
	if err := uc.reservations.Confirm(ctx, res.ID, now); err != nil {
		return nil, err
	}
	out.ConfirmedAt = now

	userID := in.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionCheckoutPaid,
		Entity:   "slot_reservation",
		EntityID: res.ID,
		Metadata: map[string]any{
			"counselor_id":      res.CounselorID,
			"slot":              res.SlotTime,
			"payment_intent_id": res.PaymentIntentID,
		},
	})

	return out, nil
}
