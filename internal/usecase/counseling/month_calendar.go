package counseling

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/timezone"
)

const monthLayout = "2006-01"

type MonthCalendarOutput struct {
	CounselorID string
	Month       string
	Days        []domain.CalendarDay
}

type GetMonthCalendar struct {
	catalog domain.Catalog
	now     Clock
}

func NewGetMonthCalendar(catalog domain.Catalog, now Clock) *GetMonthCalendar {
	return &GetMonthCalendar{catalog: catalog, now: now}
}

// Execute lists the days of month ("yyyy-MM") with their selectable flag. An
// empty month means the current one in the counselor's timezone.
func (uc *GetMonthCalendar) Execute(
	ctx context.Context,
	counselorID string,
	month string,
) (*MonthCalendarOutput, error) {

	c, err := resolveCounselor(ctx, uc.catalog, counselorID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(c.Availability.Timezone)
	now := uc.now()

	m := now.In(loc)
	if month != "" {
		m, err = time.ParseInLocation(monthLayout, month, loc)
		if err != nil {
			return nil, httperr.ErrBusiness(domain.ErrCodeInvalidMonth)
		}
	}

	return &MonthCalendarOutput{
		CounselorID: c.ID,
		Month:       m.Format(monthLayout),
		Days:        domain.MonthCalendar(*c, m, now),
	}, nil
}
