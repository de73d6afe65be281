package counseling

import (
	"context"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

type GetAvailabilityInput struct {
	CounselorID string
	Date        string
}

type GetAvailabilityOutput struct {
	CounselorID string
	Date        string
	Selectable  bool
	Slots       []domain.TimeSlot
}

type GetAvailability struct {
	catalog      domain.Catalog
	reservations domain.Reservations
	now          Clock
}

func NewGetAvailability(
	catalog domain.Catalog,
	reservations domain.Reservations,
	now Clock,
) *GetAvailability {
	return &GetAvailability{
		catalog:      catalog,
		reservations: reservations,
		now:          now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) (*GetAvailabilityOutput, error) {

	c, err := resolveCounselor(ctx, uc.catalog, in.CounselorID)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(*c, in.Date)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := &GetAvailabilityOutput{
		CounselorID: c.ID,
		Date:        date.Format(domain.DateLayout),
		Slots:       []domain.TimeSlot{},
	}

	if !domain.DateSelectable(*c, date, now) {
		return out, nil
	}
	out.Selectable = true

	holds, err := uc.reservations.ActiveHolds(ctx, c.ID, out.Date, now)
	if err != nil {
		return nil, err
	}

	out.Slots = domain.GenerateSlots(c.WithBookedSlots(domain.HeldSlots(holds, 0)...), date, now)
	return out, nil
}
