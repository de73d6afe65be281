package counseling

import (
	"context"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

type BookingInput struct {
	CounselorID string
	Type        string
	Date        string
	Time        string
	Notes       string
}

func (in BookingInput) selection() domain.BookingSelection {
	return domain.BookingSelection{
		CounselorID: in.CounselorID,
		Type:        in.Type,
		Date:        in.Date,
		Time:        in.Time,
		Notes:       in.Notes,
	}
}

type BuildSummaryOutput struct {
	Summary      domain.BookingSummary
	Handoff      domain.PaymentHandoff
	RedirectPath string
}

type BuildSummary struct {
	catalog   domain.Catalog
	formatter *domain.PriceFormatter
}

func NewBuildSummary(catalog domain.Catalog, formatter *domain.PriceFormatter) *BuildSummary {
	return &BuildSummary{catalog: catalog, formatter: formatter}
}

func (uc *BuildSummary) Execute(ctx context.Context, in BookingInput) (*BuildSummaryOutput, error) {
	c, err := resolveCounselor(ctx, uc.catalog, in.CounselorID)
	if err != nil {
		return nil, err
	}

	sel, err := in.selection().Resolve(*c)
	if err != nil {
		return nil, err
	}

	handoff := sel.Handoff()
	return &BuildSummaryOutput{
		Summary:      domain.BuildSummary(*c, sel.Type, sel.Date, sel.Slot, sel.Notes, uc.formatter),
		Handoff:      handoff,
		RedirectPath: handoff.RedirectPath(),
	}, nil
}
