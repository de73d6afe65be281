package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Africa/Lagos"

// Counselor profiles carry short labels ("WAT", "CAT") rather than IANA
// names. Labels map to a representative zone with the same offset.
var labels = map[string]string{
	"WAT":  "Africa/Lagos",
	"CAT":  "Africa/Maputo",
	"EAT":  "Africa/Nairobi",
	"SAST": "Africa/Johannesburg",
	"GMT":  "Africa/Accra",
}

// IsValid reports whether tz is a known label or a loadable IANA zone.
func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	if _, ok := labels[tz]; ok {
		return true
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if name, ok := labels[tz]; ok {
		tz = name
	}

	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.FixedZone("WAT", 60*60)
	}
	return loc
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
