package counseling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
)

type confirmFixture struct {
	res     *mockReservations
	gateway *mockGateway
	audit   *recordingAudit
	uc      *ConfirmCheckout
}

func newConfirmFixture() *confirmFixture {
	f := &confirmFixture{
		res:     new(mockReservations),
		gateway: new(mockGateway),
		audit:   &recordingAudit{},
	}
	f.uc = NewConfirmCheckout(f.res, f.gateway, f.audit, zap.NewNop(), fixedClock(lagos(2024, 1, 16, 8, 5)))
	return f
}

func heldReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              "res-1",
		CounselorID:     "counselor-001",
		SlotTime:        "2024-01-16T15:00",
		Date:            "2024-01-16",
		UserID:          2,
		PaymentIntentID: "pi_1",
		HeldAt:          lagos(2024, 1, 16, 8, 0),
	}
}

func TestConfirmCheckout_Succeeded(t *testing.T) {
	f := newConfirmFixture()
	f.res.On("Get", mock.Anything, "res-1").Return(heldReservation(), nil)
	f.gateway.On("GetPaymentIntent", mock.Anything, "pi_1").
		Return(&domain.PaymentIntent{ID: "pi_1", Status: domain.PaymentStatusSucceeded}, nil)
	f.res.On("Confirm", mock.Anything, "res-1", lagos(2024, 1, 16, 8, 5)).Return(nil)

	out, err := f.uc.Execute(context.Background(), ConfirmCheckoutInput{ReservationID: "res-1", UserID: 2})
	require.NoError(t, err)

	assert.Equal(t, "pi_1", out.PaymentIntentID)
	assert.Equal(t, "2024-01-16T15:00", out.SlotTime)
	assert.True(t, lagos(2024, 1, 16, 8, 5).Equal(out.ConfirmedAt))
	assert.Equal(t, []string{audit.ActionCheckoutPaid}, f.audit.actions())
	f.res.AssertExpectations(t)
}

func TestConfirmCheckout_AlreadyConfirmedIsIdempotent(t *testing.T) {
	f := newConfirmFixture()
	paidAt := lagos(2024, 1, 16, 8, 1)
	res := heldReservation()
	res.ConfirmedAt = &paidAt
	f.res.On("Get", mock.Anything, "res-1").Return(res, nil)

	out, err := f.uc.Execute(context.Background(), ConfirmCheckoutInput{ReservationID: "res-1", UserID: 2})
	require.NoError(t, err)

	assert.True(t, paidAt.Equal(out.ConfirmedAt))
	f.gateway.AssertNotCalled(t, "GetPaymentIntent", mock.Anything, mock.Anything)
	assert.Empty(t, f.audit.actions())
}

func TestConfirmCheckout_OtherStudentSeesNotFound(t *testing.T) {
	f := newConfirmFixture()
	f.res.On("Get", mock.Anything, "res-1").Return(heldReservation(), nil)

	_, err := f.uc.Execute(context.Background(), ConfirmCheckoutInput{ReservationID: "res-1", UserID: 3})

	assert.True(t, httperr.IsBusiness(err, domain.ErrCodeReservationNotFound))
}

func TestConfirmCheckout_PaymentNotSettled(t *testing.T) {
	f := newConfirmFixture()
	f.res.On("Get", mock.Anything, "res-1").Return(heldReservation(), nil)
	f.gateway.On("GetPaymentIntent", mock.Anything, "pi_1").
		Return(&domain.PaymentIntent{ID: "pi_1", Status: "requires_payment_method"}, nil)

	_, err := f.uc.Execute(context.Background(), ConfirmCheckoutInput{ReservationID: "res-1", UserID: 2})

	assert.True(t, httperr.IsBusiness(err, domain.ErrCodePaymentIncomplete))
	f.res.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmCheckout_NoPaymentIntentYet(t *testing.T) {
	f := newConfirmFixture()
	res := heldReservation()
	res.PaymentIntentID = ""
	f.res.On("Get", mock.Anything, "res-1").Return(res, nil)

	_, err := f.uc.Execute(context.Background(), ConfirmCheckoutInput{ReservationID: "res-1", UserID: 2})

	assert.True(t, httperr.IsBusiness(err, domain.ErrCodePaymentIncomplete))
}

func TestConfirmCheckout_GatewayDown(t *testing.T) {
	f := newConfirmFixture()
	f.res.On("Get", mock.Anything, "res-1").Return(heldReservation(), nil)
	f.gateway.On("GetPaymentIntent", mock.Anything, "pi_1").Return(nil, errors.New("timeout"))

	_, err := f.uc.Execute(context.Background(), ConfirmCheckoutInput{ReservationID: "res-1", UserID: 2})

	assert.True(t, httperr.IsBusiness(err, domain.ErrCodePaymentFailed))
}
