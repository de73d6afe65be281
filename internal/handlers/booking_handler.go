package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/dto"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/httpresp"
	"github.com/BruksfildServices01/educonnect-booking/internal/middleware"
	ucCounseling "github.com/BruksfildServices01/educonnect-booking/internal/usecase/counseling"
)

type BookingHandler struct {
	summary  *ucCounseling.BuildSummary
	checkout *ucCounseling.Checkout
	confirm  *ucCounseling.ConfirmCheckout
	log      *zap.Logger
}

func NewBookingHandler(
	summary *ucCounseling.BuildSummary,
	checkout *ucCounseling.Checkout,
	confirm *ucCounseling.ConfirmCheckout,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{summary: summary, checkout: checkout, confirm: confirm, log: log}
}

func bookingInput(c *gin.Context, req dto.BookingRequest) ucCounseling.BookingInput {
	return ucCounseling.BookingInput{
		CounselorID: c.Param("id"),
		Type:        req.Type,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	}
}

// Summary answers POST /api/counselors/:id/booking/summary with the
// confirmation card and the payment page link. Nothing is reserved.
func (h *BookingHandler) Summary(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	out, err := h.summary.Execute(c.Request.Context(), bookingInput(c, req))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.BookingSummaryDTO{
		Summary:      out.Summary,
		Payment:      out.Handoff,
		RedirectPath: out.RedirectPath,
	})
}

// Checkout answers POST /api/counselors/:id/checkout: it holds the
// slot and opens a payment intent for the logged-in student.
func (h *BookingHandler) Checkout(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Unauthorized(c, "session_expired", "Session has ended, please log in again.")
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	out, err := h.checkout.Execute(c.Request.Context(), ucCounseling.CheckoutInput{
		BookingInput: bookingInput(c, req),
		UserID:       sess.UserID,
		StudentEmail: sess.Email,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.CheckoutDTO{
		Summary:         out.Summary,
		Payment:         out.Handoff,
		ClientSecret:    out.ClientSecret,
		PaymentIntentID: out.PaymentIntentID,
		ReservationID:   out.ReservationID,
	})
}

// Confirm answers POST /api/reservations/:id/confirm once the client has
// completed the payment intent.
func (h *BookingHandler) Confirm(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Unauthorized(c, "session_expired", "Session has ended, please log in again.")
		return
	}

	out, err := h.confirm.Execute(c.Request.Context(), ucCounseling.ConfirmCheckoutInput{
		ReservationID: c.Param("id"),
		UserID:        sess.UserID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.ConfirmationDTO{
		ReservationID:   out.ReservationID,
		PaymentIntentID: out.PaymentIntentID,
		SlotTime:        out.SlotTime,
		ConfirmedAt:     out.ConfirmedAt,
	})
}
