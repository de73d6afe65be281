package counseling

import (
	"context"
	"time"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
)

// Clock returns the current instant. Use cases read it once per request.
type Clock func() time.Time

// AuditSink receives audit events; *audit.Dispatcher satisfies it.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// resolveCounselor looks id up and, when it is unknown, falls back to the
// first catalog entry. Only read paths use it.
func resolveCounselor(ctx context.Context, catalog domain.Catalog, id string) (*domain.Counselor, error) {
	c, err := catalog.GetCounselor(ctx, id)
	if err == nil {
		return c, nil
	}
	if !httperr.IsBusiness(err, domain.ErrCodeCounselorNotFound) {
		return nil, err
	}

	all, err := catalog.ListCounselors(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, httperr.ErrBusiness(domain.ErrCodeCounselorNotFound)
	}
	first := all[0]
	return &first, nil
}
