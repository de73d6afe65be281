package counseling

import "github.com/BruksfildServices01/educonnect-booking/internal/httperr"

type ConsultationTypeID string

const (
	ConsultationVideo   ConsultationTypeID = "video"
	ConsultationChat    ConsultationTypeID = "chat"
	ConsultationPackage ConsultationTypeID = "package"
)

func (id ConsultationTypeID) Valid() bool {
	switch id {
	case ConsultationVideo, ConsultationChat, ConsultationPackage:
		return true
	}
	return false
}

type ConsultationType struct {
	ID          ConsultationTypeID `json:"id"`
	Name        string             `json:"name"`
	DurationMin int                `json:"duration"`
	Description string             `json:"description"`
	Features    []string           `json:"features"`
}

var consultationTypes = []ConsultationType{
	{
		ID:          ConsultationVideo,
		Name:        "Video Call",
		DurationMin: 45,
		Description: "Face-to-face consultation via video call",
		Features:    []string{"Screen sharing", "Recording available", "Document sharing"},
	},
	{
		ID:          ConsultationChat,
		Name:        "Chat Session",
		DurationMin: 60,
		Description: "Text-based consultation with instant responses",
		Features:    []string{"Real-time messaging", "File sharing", "Chat history"},
	},
	{
		ID:          ConsultationPackage,
		Name:        "Comprehensive Package",
		DurationMin: 120,
		Description: "Complete guidance package with follow-ups",
		Features:    []string{"Multiple sessions", "Application review", "Follow-up support", "Priority support"},
	},
}

// ConsultationTypes returns the fixed catalog in display order. Callers get
// their own copy.
func ConsultationTypes() []ConsultationType {
	out := make([]ConsultationType, len(consultationTypes))
	copy(out, consultationTypes)
	return out
}

// ParseConsultationType validates an inbound id against the closed set.
func ParseConsultationType(raw string) (ConsultationType, error) {
	id := ConsultationTypeID(raw)
	for _, ct := range consultationTypes {
		if ct.ID == id {
			return ct, nil
		}
	}
	return ConsultationType{}, httperr.ErrBusiness(ErrCodeInvalidConsultationType)
}
