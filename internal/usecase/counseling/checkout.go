package counseling

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CheckoutInput struct {
	BookingInput

	UserID       uint
	StudentEmail string
}

type CheckoutOutput struct {
	Summary         domain.BookingSummary
	Handoff         domain.PaymentHandoff
	ClientSecret    string
	PaymentIntentID string
	ReservationID   string
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	catalog      domain.Catalog
	reservations domain.Reservations
	gateway      domain.PaymentGateway
	formatter    *domain.PriceFormatter
	audit        AuditSink
	log          *zap.Logger
	now          Clock
}

func NewCheckout(
	catalog domain.Catalog,
	reservations domain.Reservations,
	gateway domain.PaymentGateway,
	formatter *domain.PriceFormatter,
	audit AuditSink,
	log *zap.Logger,
	now Clock,
) *Checkout {
	return &Checkout{
		catalog:      catalog,
		reservations: reservations,
		gateway:      gateway,
		formatter:    formatter,
		audit:        audit,
		log:          log,
		now:          now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) (*CheckoutOutput, error) {
	// No fallback here: money only moves for the counselor the user picked.
	c, err := uc.catalog.GetCounselor(ctx, in.CounselorID)
	if err != nil {
		return nil, err
	}

	sel, err := in.selection().Resolve(*c)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if !domain.DateSelectable(*c, sel.Date, now) {
		return nil, httperr.ErrBusiness(domain.ErrCodeDateUnavailable)
	}

	handoff := sel.Handoff()

	// The student's own unpaid hold does not block a retry.
	holds, err := uc.reservations.ActiveHolds(ctx, c.ID, handoff.Date, now)
	if err != nil {
		return nil, err
	}
	reserved := domain.HeldSlots(holds, in.UserID)
	if !slotOffered(domain.GenerateSlots(c.WithBookedSlots(reserved...), sel.Date, now), handoff.Time) {
		return nil, httperr.ErrBusiness(domain.ErrCodeSlotUnavailable)
	}

	res := &domain.Reservation{
		ID:               uuid.NewString(),
		CounselorID:      c.ID,
		SlotTime:         handoff.Time,
		Date:             handoff.Date,
		UserID:           in.UserID,
		ConsultationType: sel.Type.ID,
		HeldAt:           now,
	}
	if err := uc.reservations.Reserve(ctx, res); err != nil {
		return nil, err
	}

	summary := domain.BuildSummary(*c, sel.Type, sel.Date, sel.Slot, sel.Notes, uc.formatter)
	userID := in.UserID

	pi, err := uc.gateway.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{
		Amount:       uc.formatter.MinorUnits(summary.Price),
		Currency:     uc.formatter.Currency(),
		CounselorID:  c.ID,
		SessionType:  sel.Type.ID,
		StudentEmail: in.StudentEmail,
		Metadata: map[string]string{
			"date":          handoff.Date,
			"time":          handoff.Time,
			"reservationId": res.ID,
		},
	})
	if err != nil {
		uc.log.Error("payment intent failed",
			zap.String("counselor_id", c.ID),
			zap.String("slot", handoff.Time),
			zap.String("reservation_id", res.ID),
			zap.Error(err),
		)

		// The request context may be what ran out.
		if relErr := uc.reservations.Release(context.WithoutCancel(ctx), res.ID); relErr != nil {
			uc.log.Error("release reservation failed",
				zap.String("reservation_id", res.ID),
				zap.Error(relErr),
			)
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   audit.ActionCheckoutFailed,
			Entity:   "slot_reservation",
			EntityID: res.ID,
			Metadata: map[string]any{
				"counselor_id": c.ID,
				"slot":         handoff.Time,
				"error":        err.Error(),
			},
		})
		return nil, httperr.ErrBusiness(domain.ErrCodePaymentFailed)
	}

	if err := uc.reservations.AttachPaymentIntent(ctx, res.ID, pi.ID); err != nil {
		uc.log.Warn("attach payment intent failed",
			zap.String("reservation_id", res.ID),
			zap.String("payment_intent_id", pi.ID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionCheckoutStarted,
		Entity:   "slot_reservation",
		EntityID: res.ID,
		Metadata: map[string]any{
			"counselor_id":      c.ID,
			"consultation_type": sel.Type.ID,
			"slot":              handoff.Time,
			"amount":            summary.Price,
			"currency":          uc.formatter.Currency(),
			"payment_intent_id": pi.ID,
		},
	})

	return &CheckoutOutput{
		Summary:         summary,
		Handoff:         handoff,
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
		ReservationID:   res.ID,
	}, nil
}

func slotOffered(slots []domain.TimeSlot, t string) bool {
	for _, s := range slots {
		if s.Time == t && s.Available {
			return true
		}
	}
	return false
}
