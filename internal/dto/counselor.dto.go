package dto

import domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"

type PriceTableDTO struct {
	Video   int64 `json:"video"`
	Chat    int64 `json:"chat"`
	Package int64 `json:"package"`
}

type WorkingHoursDTO struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type AvailabilityDTO struct {
	Timezone         string          `json:"timezone"`
	WorkingHours     WorkingHoursDTO `json:"working_hours"`
	UnavailableDates []string        `json:"unavailable_dates"`
	BookedSlots      []string        `json:"booked_slots"`
}

type CounselorDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Image          string          `json:"image"`
	Title          string          `json:"title"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"review_count"`
	Experience     string          `json:"experience"`
	Location       string          `json:"location"`
	Bio            string          `json:"bio"`
	Verified       bool            `json:"verified"`
	Achievements   []string        `json:"achievements"`
	NextAvailable  string          `json:"next_available"`
	Specialties    []string        `json:"specialties"`
	Countries      []string        `json:"countries"`
	Languages      []string        `json:"languages"`
	AvailableToday bool            `json:"available_today"`
	Price          PriceTableDTO   `json:"price"`
	Availability   AvailabilityDTO `json:"availability"`
}

func NewCounselorDTO(c domain.Counselor) CounselorDTO {
	return CounselorDTO{
		ID:             c.ID,
		Name:           c.Name,
		Image:          c.Image,
		Title:          c.Title,
		Rating:         c.Rating,
		ReviewCount:    c.ReviewCount,
		Experience:     c.Experience,
		Location:       c.Location,
		Bio:            c.Bio,
		Verified:       c.Verified,
		Achievements:   c.Achievements,
		NextAvailable:  c.NextAvailable,
		Specialties:    c.Specialties,
		Countries:      c.Countries,
		Languages:      c.Languages,
		AvailableToday: c.AvailableToday,
		Price: PriceTableDTO{
			Video:   c.Price[domain.ConsultationVideo],
			Chat:    c.Price[domain.ConsultationChat],
			Package: c.Price[domain.ConsultationPackage],
		},
		Availability: AvailabilityDTO{
			Timezone: c.TimezoneLabel(),
			WorkingHours: WorkingHoursDTO{
				Start: c.Availability.WorkingHours.Start,
				End:   c.Availability.WorkingHours.End,
			},
			UnavailableDates: c.Availability.UnavailableDates,
			BookedSlots:      c.Availability.BookedSlots,
		},
	}
}

func NewCounselorDTOs(cs []domain.Counselor) []CounselorDTO {
	out := make([]CounselorDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCounselorDTO(c))
	}
	return out
}

// CounselorListDTO backs the directory page: the matches, the catalog size
// for "showing X of Y" and the filter dropdown options.
type CounselorListDTO struct {
	Data    []CounselorDTO       `json:"data"`
	Count   int                  `json:"count"`
	Total   int                  `json:"total"`
	Options domain.FilterOptions `json:"options"`
}

type ConsultationTypeDTO struct {
	domain.ConsultationType
	Price          *int64 `json:"price,omitempty"`
	FormattedPrice string `json:"formatted_price,omitempty"`
}

type AvailabilityResponseDTO struct {
	CounselorID string            `json:"counselor_id"`
	Date        string            `json:"date"`
	Selectable  bool              `json:"selectable"`
	Slots       []domain.TimeSlot `json:"slots"`
}

type CalendarDTO struct {
	CounselorID string               `json:"counselor_id"`
	Month       string               `json:"month"`
	Days        []domain.CalendarDay `json:"days"`
}
