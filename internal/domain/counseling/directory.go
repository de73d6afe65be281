package counseling

import "strings"

// AllFilter is the sentinel the directory UI sends for "no restriction" on
// the specialty and country selectors.
const AllFilter = "all"

type SearchQuery struct {
	Text               string
	Specialty          string
	Country            string
	AvailableTodayOnly bool
}

// Search filters the catalog, keeping catalog order. Every criterion must
// hold; an unset criterion always holds.
func Search(catalog []Counselor, q SearchQuery) []Counselor {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]Counselor, 0, len(catalog))
	for _, c := range catalog {
		if !matchesText(c, text) {
			continue
		}
		if isConcrete(q.Specialty) && !c.HasSpecialty(q.Specialty) {
			continue
		}
		if isConcrete(q.Country) && !c.ServesCountry(q.Country) {
			continue
		}
		if q.AvailableTodayOnly && !c.AvailableToday {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesText(c Counselor, text string) bool {
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), text) ||
		strings.Contains(strings.ToLower(c.Title), text) {
		return true
	}
	for _, s := range c.Specialties {
		if strings.Contains(strings.ToLower(s), text) {
			return true
		}
	}
	return false
}

func isConcrete(filter string) bool {
	return filter != "" && filter != AllFilter
}

type FilterOptions struct {
	Specialties []string `json:"specialties"`
	Countries   []string `json:"countries"`
}

// Options lists the distinct specialties and countries of the catalog in
// first-seen order.
func Options(catalog []Counselor) FilterOptions {
	return FilterOptions{
		Specialties: distinct(catalog, func(c Counselor) []string { return c.Specialties }),
		Countries:   distinct(catalog, func(c Counselor) []string { return c.Countries }),
	}
}

func distinct(catalog []Counselor, pick func(Counselor) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, c := range catalog {
		for _, v := range pick(c) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
