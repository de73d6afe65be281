package counseling

import (
	"context"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

type GetCounselor struct {
	catalog domain.Catalog
}

func NewGetCounselor(catalog domain.Catalog) *GetCounselor {
	return &GetCounselor{catalog: catalog}
}

// Execute returns the counselor with id, or the first catalog entry when id
// is unknown.
func (uc *GetCounselor) Execute(ctx context.Context, id string) (*domain.Counselor, error) {
	return resolveCounselor(ctx, uc.catalog, id)
}
