package repository

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/timezone"
)

// StaticCatalog serves a fixed, in-memory list of counselors.
type StaticCatalog struct {
	counselors []domain.Counselor
}

var _ domain.Catalog = (*StaticCatalog)(nil)

func NewStaticCatalog(counselors []domain.Counselor) *StaticCatalog {
	return &StaticCatalog{counselors: counselors}
}

func (s *StaticCatalog) ListCounselors(ctx context.Context) ([]domain.Counselor, error) {
	out := make([]domain.Counselor, len(s.counselors))
	copy(out, s.counselors)
	return out, nil
}

func (s *StaticCatalog) GetCounselor(ctx context.Context, id string) (*domain.Counselor, error) {
	for i := range s.counselors {
		if s.counselors[i].ID == id {
			c := s.counselors[i]
			return &c, nil
		}
	}
	return nil, httperr.ErrBusiness(domain.ErrCodeCounselorNotFound)
}

// ValidateCounselors rejects a catalog that cannot be scheduled: an empty or
// repeated id, or a timezone that resolves to nothing. An empty timezone
// means the default one.
func ValidateCounselors(counselors []domain.Counselor) error {
	seen := make(map[string]struct{}, len(counselors))
	for _, c := range counselors {
		if c.ID == "" {
			return fmt.Errorf("counselor %q has no id", c.Name)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("counselor %s listed twice", c.ID)
		}
		seen[c.ID] = struct{}{}

		if tz := c.Availability.Timezone; tz != "" && !timezone.IsValid(tz) {
			return fmt.Errorf("counselor %s: unknown timezone %q", c.ID, tz)
		}
	}
	return nil
}
