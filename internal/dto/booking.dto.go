package dto

import (
	"time"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

type BookingRequest struct {
	Type  string `json:"type" binding:"required,consultation_type"`
	Date  string `json:"date" binding:"required,iso_date"`
	Time  string `json:"time" binding:"required,iso_slot"`
	Notes string `json:"notes" binding:"max=1000"`
}

type BookingSummaryDTO struct {
	Summary      domain.BookingSummary `json:"summary"`
	Payment      domain.PaymentHandoff `json:"payment"`
	RedirectPath string                `json:"redirect_path"`
}

type CheckoutDTO struct {
	Summary         domain.BookingSummary `json:"summary"`
	Payment         domain.PaymentHandoff `json:"payment"`
	ClientSecret    string                `json:"client_secret"`
	PaymentIntentID string                `json:"payment_intent_id"`
	ReservationID   string                `json:"reservation_id"`
}

type ConfirmationDTO struct {
	ReservationID   string    `json:"reservation_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	SlotTime        string    `json:"slot_time"`
	ConfirmedAt     time.Time `json:"confirmed_at"`
}
