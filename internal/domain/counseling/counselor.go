package counseling

import "slices"

// Layouts shared by the slot generator, the summary builder and the payment
// handoff.
const (
	DateLayout = "2006-01-02"
	SlotLayout = "2006-01-02T15:04"

	slotDisplayLayout    = "3:04 PM"
	summaryDateLayout    = "Monday, Jan 2, 2006"
	SlotGranularityMins  = 30
	defaultCounselorZone = "WAT"
)

type Counselor struct {
	ID            string
	Name          string
	Image         string
	Title         string
	Rating        float64
	ReviewCount   int
	Experience    string
	Location      string
	Bio           string
	Verified      bool
	Achievements  []string
	NextAvailable string

	Specialties    []string
	Countries      []string
	Languages      []string
	AvailableToday bool

	Price        map[ConsultationTypeID]int64
	Availability Availability
}

type Availability struct {
	Timezone         string
	WorkingHours     WorkingHours
	UnavailableDates []string
	BookedSlots      []string
}

// WorkingHours is a half-open range of whole hours, [Start, End).
type WorkingHours struct {
	Start int
	End   int
}

type TimeSlot struct {
	Time      string `json:"time"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

func (c Counselor) HasSpecialty(s string) bool {
	return slices.Contains(c.Specialties, s)
}

func (c Counselor) ServesCountry(country string) bool {
	return slices.Contains(c.Countries, country)
}

func (c Counselor) TimezoneLabel() string {
	if c.Availability.Timezone == "" {
		return defaultCounselorZone
	}
	return c.Availability.Timezone
}

// WithBookedSlots returns a copy of c whose booked set also holds extra.
// The receiver is left untouched.
func (c Counselor) WithBookedSlots(extra ...string) Counselor {
	if len(extra) == 0 {
		return c
	}
	booked := make([]string, 0, len(c.Availability.BookedSlots)+len(extra))
	booked = append(booked, c.Availability.BookedSlots...)
	booked = append(booked, extra...)
	c.Availability.BookedSlots = booked
	return c
}
