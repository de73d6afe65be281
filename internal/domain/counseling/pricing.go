package counseling

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFor is a direct lookup into the counselor's price table. The id space
// is closed; an id outside it means the caller skipped validation.
func PriceFor(c Counselor, id ConsultationTypeID) int64 {
	if !id.Valid() {
		panic(fmt.Sprintf("counseling: unknown consultation type %q", id))
	}
	return c.Price[id]
}

// PriceFormatter renders whole-unit prices as a localized currency string
// with no fractional digits, e.g. "₦15,000" for en-NG / NGN.
type PriceFormatter struct {
	unit    currency.Unit
	printer *message.Printer
	symbol  string
}

func NewPriceFormatter(locale, code string) (*PriceFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}

	p := message.NewPrinter(tag)
	return &PriceFormatter{
		unit:    unit,
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// MustPriceFormatter panics on a bad locale or currency code. Meant for
// package-level defaults and tests.
func MustPriceFormatter(locale, code string) *PriceFormatter {
	f, err := NewPriceFormatter(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *PriceFormatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", -amount)
	}
	return f.symbol + f.printer.Sprintf("%d", amount)
}

// Currency is the ISO 4217 code prices are expressed in.
func (f *PriceFormatter) Currency() string {
	return f.unit.String()
}

// MinorUnits converts a whole-unit amount into the currency's smallest unit
// (kobo for NGN), which is what payment processors charge in.
func (f *PriceFormatter) MinorUnits(amount int64) int64 {
	scale, _ := currency.Standard.Rounding(f.unit)
	for i := 0; i < scale; i++ {
		amount *= 10
	}
	return amount
}

type BookingSummary struct {
	CounselorID      string             `json:"counselor_id"`
	CounselorName    string             `json:"counselor_name"`
	ConsultationType ConsultationTypeID `json:"consultation_type"`
	TypeName         string             `json:"type_name"`
	Date             string             `json:"date"`
	Time             string             `json:"time"`
	DurationMin      int                `json:"duration_min"`
	Duration         string             `json:"duration"`
	Price            int64              `json:"price"`
	TotalPrice       string             `json:"total_price"`
	Notes            string             `json:"notes,omitempty"`
}

// BuildSummary assembles the display-ready description of a booking. date
// and slot are expected in the counselor's timezone (see ParseDate and
// ParseSlot).
func BuildSummary(
	c Counselor,
	ct ConsultationType,
	date time.Time,
	slot time.Time,
	notes string,
	f *PriceFormatter,
) BookingSummary {
	price := PriceFor(c, ct.ID)

	return BookingSummary{
		CounselorID:      c.ID,
		CounselorName:    c.Name,
		ConsultationType: ct.ID,
		TypeName:         ct.Name,
		Date:             date.Format(summaryDateLayout),
		Time:             slot.Format(slotDisplayLayout) + " " + c.TimezoneLabel(),
		DurationMin:      ct.DurationMin,
		Duration:         fmt.Sprintf("%d minutes", ct.DurationMin),
		Price:            price,
		TotalPrice:       f.Format(price),
		Notes:            notes,
	}
}
