package counseling

import (
	"net/url"
	"time"

	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
)

// BookingSelection is the user's in-progress choice. Fields are assigned
// independently and in any order.
type BookingSelection struct {
	CounselorID string
	Type        string
	Date        string
	Time        string
	Notes       string
}

func (s BookingSelection) Complete() bool {
	return s.Date != "" && s.Time != "" && s.Type != ""
}

// ResolvedSelection is a complete selection whose fields were parsed against
// a counselor.
type ResolvedSelection struct {
	Counselor Counselor
	Type      ConsultationType
	Date      time.Time
	Slot      time.Time
	Notes     string
}

// Resolve validates s against c: the selection must be complete, the type
// must be in the closed set and the slot must fall on the chosen date.
func (s BookingSelection) Resolve(c Counselor) (ResolvedSelection, error) {
	if !s.Complete() {
		return ResolvedSelection{}, httperr.ErrBusiness(ErrCodeIncompleteSelection)
	}

	ct, err := ParseConsultationType(s.Type)
	if err != nil {
		return ResolvedSelection{}, err
	}

	date, err := ParseDate(c, s.Date)
	if err != nil {
		return ResolvedSelection{}, err
	}

	slot, err := ParseSlot(c, s.Time)
	if err != nil {
		return ResolvedSelection{}, err
	}

	if slot.Format(DateLayout) != date.Format(DateLayout) {
		return ResolvedSelection{}, httperr.ErrBusiness(ErrCodeInvalidTime)
	}

	return ResolvedSelection{
		Counselor: c,
		Type:      ct,
		Date:      date,
		Slot:      slot,
		Notes:     s.Notes,
	}, nil
}

// PaymentHandoff is what the payment page needs to describe the purchase.
type PaymentHandoff struct {
	CounselorID string `json:"counselor_id"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}

func (r ResolvedSelection) Handoff() PaymentHandoff {
	return PaymentHandoff{
		CounselorID: r.Counselor.ID,
		Type:        string(r.Type.ID),
		Date:        r.Date.Format(DateLayout),
		Time:        r.Slot.Format(SlotLayout),
		Notes:       r.Notes,
	}
}

func (h PaymentHandoff) Query() url.Values {
	v := url.Values{}
	v.Set("type", h.Type)
	v.Set("date", h.Date)
	v.Set("time", h.Time)
	v.Set("notes", h.Notes)
	return v
}

// RedirectPath is the payment page location carrying the handoff as query.
func (h PaymentHandoff) RedirectPath() string {
	return "/counseling/payment/" + url.PathEscape(h.CounselorID) + "?" + h.Query().Encode()
}
