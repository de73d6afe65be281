package models

import "time"

// SlotReservation holds a slot while its payment is in flight, and for good
// once ConfirmedAt is set. The unique index on (counselor_id, slot_time) is
// what keeps two checkouts from claiming the same slot.
type SlotReservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CounselorID string `gorm:"size:64;not null;uniqueIndex:idx_reservation_slot" json:"counselor_id"`
	SlotTime    string `gorm:"size:16;not null;uniqueIndex:idx_reservation_slot" json:"slot_time"`
	Date        string `gorm:"size:10;not null;index" json:"date"`

	UserID           uint   `gorm:"index" json:"user_id"`
	ConsultationType string `gorm:"size:20;not null" json:"consultation_type"`
	PaymentIntentID  string `gorm:"size:255" json:"payment_intent_id"`

	HeldAt      time.Time  `gorm:"not null" json:"held_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
