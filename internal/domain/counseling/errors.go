package counseling

const (
	ErrCodeCounselorNotFound       = "counselor_not_found"
	ErrCodeInvalidConsultationType = "invalid_consultation_type"
	ErrCodeInvalidDate             = "invalid_date"
	ErrCodeInvalidTime             = "invalid_time"
	ErrCodeInvalidMonth            = "invalid_month"
	ErrCodeIncompleteSelection     = "incomplete_selection"
	ErrCodeDateUnavailable         = "date_unavailable"
	ErrCodeSlotUnavailable         = "slot_unavailable"
	ErrCodeSlotTaken               = "slot_taken"
	ErrCodePaymentFailed           = "payment_failed"
	ErrCodePaymentIncomplete       = "payment_incomplete"
	ErrCodeReservationNotFound     = "reservation_not_found"
)
