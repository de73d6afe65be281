package counseling

import (
	"slices"
	"time"

	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/timezone"
)

// GenerateSlots enumerates the bookable start times of date for c in
// 30-minute steps across working hours. A slot is emitted only when it is
// not booked and not before now. Date-level blackouts are the caller's job
// (see DateSelectable).
func GenerateSlots(c Counselor, date time.Time, now time.Time) []TimeSlot {
	loc := timezone.Location(c.Availability.Timezone)
	y, m, d := date.Date()

	booked := make(map[string]struct{}, len(c.Availability.BookedSlots))
	for _, s := range c.Availability.BookedSlots {
		booked[s] = struct{}{}
	}

	wh := c.Availability.WorkingHours
	slots := []TimeSlot{}

	for hour := wh.Start; hour < wh.End; hour++ {
		for minute := 0; minute < 60; minute += SlotGranularityMins {
			slotTime := time.Date(y, m, d, hour, minute, 0, 0, loc)
			key := slotTime.Format(SlotLayout)

			if _, isBooked := booked[key]; isBooked {
				continue
			}
			if slotTime.Before(now) {
				continue
			}

			slots = append(slots, TimeSlot{
				Time:      key,
				Display:   slotTime.Format(slotDisplayLayout),
				Available: true,
			})
		}
	}

	return slots
}

// DateSelectable is the date-picker rule: no day before today in the
// counselor's timezone and no day listed as unavailable.
func DateSelectable(c Counselor, date time.Time, now time.Time) bool {
	loc := timezone.Location(c.Availability.Timezone)

	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if day.Before(timezone.StartOfDay(now, loc)) {
		return false
	}

	return !slices.Contains(c.Availability.UnavailableDates, day.Format(DateLayout))
}

// ParseDate reads a "yyyy-MM-dd" calendar date in c's timezone.
func ParseDate(c Counselor, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, raw, timezone.Location(c.Availability.Timezone))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(ErrCodeInvalidDate)
	}
	return t, nil
}

// ParseSlot reads a "yyyy-MM-ddTHH:mm" slot time in c's timezone.
func ParseSlot(c Counselor, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(SlotLayout, raw, timezone.Location(c.Availability.Timezone))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(ErrCodeInvalidTime)
	}
	return t, nil
}

type CalendarDay struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}

// MonthCalendar lists every day of the month containing month, each with
// its DateSelectable flag.
func MonthCalendar(c Counselor, month time.Time, now time.Time) []CalendarDay {
	loc := timezone.Location(c.Availability.Timezone)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	days := make([]CalendarDay, 0, 31)
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:       day.Format(DateLayout),
			Selectable: DateSelectable(c, day, now),
		})
	}
	return days
}
