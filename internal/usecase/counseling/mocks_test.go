package counseling

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/infra/repository"
	"github.com/BruksfildServices01/educonnect-booking/internal/timezone"
)

type mockReservations struct {
	mock.Mock
}

func (m *mockReservations) ActiveHolds(ctx context.Context, counselorID, date string, now time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, counselorID, date, now)
	holds, _ := args.Get(0).([]domain.Reservation)
	return holds, args.Error(1)
}

func (m *mockReservations) Reserve(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReservations) AttachPaymentIntent(ctx context.Context, reservationID, paymentIntentID string) error {
	return m.Called(ctx, reservationID, paymentIntentID).Error(0)
}

func (m *mockReservations) Release(ctx context.Context, reservationID string) error {
	return m.Called(ctx, reservationID).Error(0)
}

func (m *mockReservations) Get(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) Confirm(ctx context.Context, reservationID string, at time.Time) error {
	return m.Called(ctx, reservationID, at).Error(0)
}

// holdsAt builds unconfirmed holds by other students on the given slots.
func holdsAt(slots ...string) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.Reservation{CounselorID: "counselor-001", SlotTime: s, Date: s[:10], UserID: 99})
	}
	return out
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, req)
	pi, _ := args.Get(0).(*domain.PaymentIntent)
	return pi, args.Error(1)
}

func (m *mockGateway) GetPaymentIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, id)
	pi, _ := args.Get(0).(*domain.PaymentIntent)
	return pi, args.Error(1)
}

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func lagos(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, timezone.Location("WAT"))
}

func staticCatalog() domain.Catalog {
	return repository.NewStaticCatalog(repository.CounselorFixtures())
}

func ngn() *domain.PriceFormatter {
	return domain.MustPriceFormatter("en-NG", "NGN")
}
