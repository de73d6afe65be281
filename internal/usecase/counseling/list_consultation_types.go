package counseling

import (
	"context"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

// ConsultationOffer is a consultation type, priced for one counselor when
// the caller asked for one.
type ConsultationOffer struct {
	domain.ConsultationType
	Price          *int64
	FormattedPrice string
}

type ListConsultationTypes struct {
	catalog   domain.Catalog
	formatter *domain.PriceFormatter
}

func NewListConsultationTypes(catalog domain.Catalog, formatter *domain.PriceFormatter) *ListConsultationTypes {
	return &ListConsultationTypes{catalog: catalog, formatter: formatter}
}

func (uc *ListConsultationTypes) Execute(ctx context.Context, counselorID string) ([]ConsultationOffer, error) {
	types := domain.ConsultationTypes()
	offers := make([]ConsultationOffer, 0, len(types))

	var counselor *domain.Counselor
	if counselorID != "" {
		c, err := resolveCounselor(ctx, uc.catalog, counselorID)
		if err != nil {
			return nil, err
		}
		counselor = c
	}

	for _, ct := range types {
		offer := ConsultationOffer{ConsultationType: ct}
		if counselor != nil {
			price := domain.PriceFor(*counselor, ct.ID)
			offer.Price = &price
			offer.FormattedPrice = uc.formatter.Format(price)
		}
		offers = append(offers, offer)
	}
	return offers, nil
}
