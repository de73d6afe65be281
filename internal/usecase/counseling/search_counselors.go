package counseling

import (
	"context"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

const AvailabilityToday = "today"

type SearchCounselorsInput struct {
	Query        string
	Specialty    string
	Country      string
	Availability string
}

type SearchCounselorsOutput struct {
	Counselors []domain.Counselor
	Total      int
	Options    domain.FilterOptions
}

type SearchCounselors struct {
	catalog domain.Catalog
}

func NewSearchCounselors(catalog domain.Catalog) *SearchCounselors {
	return &SearchCounselors{catalog: catalog}
}

func (uc *SearchCounselors) Execute(
	ctx context.Context,
	in SearchCounselorsInput,
) (*SearchCounselorsOutput, error) {

	all, err := uc.catalog.ListCounselors(ctx)
	if err != nil {
		return nil, err
	}

	matches := domain.Search(all, domain.SearchQuery{
		Text:               in.Query,
		Specialty:          in.Specialty,
		Country:            in.Country,
		AvailableTodayOnly: in.Availability == AvailabilityToday,
	})

	return &SearchCounselorsOutput{
		Counselors: matches,
		Total:      len(all),
		Options:    domain.Options(all),
	}, nil
}
