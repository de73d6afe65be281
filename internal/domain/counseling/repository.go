package counseling

import (
	"context"
	"time"
)

// Catalog is the read-only source of counselor reference data.
type Catalog interface {
	ListCounselors(ctx context.Context) ([]Counselor, error)
	GetCounselor(ctx context.Context, id string) (*Counselor, error)
}

type Reservation struct {
	ID               string
	CounselorID      string
	SlotTime         string
	Date             string
	UserID           uint
	ConsultationType ConsultationTypeID
	PaymentIntentID  string

	HeldAt      time.Time
	ConfirmedAt *time.Time
}

// HeldSlots returns the slot times of holds, skipping those owned by
// exceptUser so a student can re-enter checkout on their own hold. Zero
// skips nobody.
func HeldSlots(holds []Reservation, exceptUser uint) []string {
	out := make([]string, 0, len(holds))
	for _, h := range holds {
		if exceptUser != 0 && h.UserID == exceptUser && h.ConfirmedAt == nil {
			continue
		}
		out = append(out, h.SlotTime)
	}
	return out
}

// Reservations holds the slots claimed at checkout. An unconfirmed hold
// blocks its slot only until the hold TTL has passed since HeldAt.
type Reservations interface {
	// ActiveHolds lists the holds on date that still block their slot at now.
	ActiveHolds(ctx context.Context, counselorID string, date string, now time.Time) ([]Reservation, error)
	// Reserve claims the slot at r.HeldAt. It replaces an expired hold or an
	// unconfirmed hold of the same user, and fails with ErrCodeSlotTaken
	// otherwise.
	Reserve(ctx context.Context, r *Reservation) error
	AttachPaymentIntent(ctx context.Context, reservationID string, paymentIntentID string) error
	Release(ctx context.Context, reservationID string) error
	// Get fails with ErrCodeReservationNotFound for an unknown id.
	Get(ctx context.Context, reservationID string) (*Reservation, error)
	Confirm(ctx context.Context, reservationID string, at time.Time) error
}

type PaymentIntentRequest struct {
	Amount       int64
	Currency     string
	CounselorID  string
	SessionType  ConsultationTypeID
	StudentEmail string
	Metadata     map[string]string
}

type PaymentIntent struct {
	ID           string `json:"payment_intent_id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// PaymentGateway is the external payment processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

const PaymentStatusSucceeded = "succeeded"
