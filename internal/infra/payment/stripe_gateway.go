package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

type StripeConfig struct {
	SecretKey string
	Timeout   time.Duration

	// BaseURL overrides the Stripe API endpoint. Empty means production.
	BaseURL    string
	MaxRetries int64
}

type StripeGateway struct {
	api     *client.API
	timeout time.Duration
}

var _ domain.PaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeConfig, log *zap.Logger) *StripeGateway {
	bc := &stripe.BackendConfig{
		LeveledLogger:     log.Sugar(),
		MaxNetworkRetries: stripe.Int64(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		bc.URL = stripe.String(cfg.BaseURL)
	}

	return &StripeGateway{
		api:     client.New(cfg.SecretKey, stripe.NewBackendsWithConfig(bc)),
		timeout: cfg.Timeout,
	}
}

// CreatePaymentIntent opens a PaymentIntent for req.Amount, expressed in the
// currency's minor unit.
func (g *StripeGateway) CreatePaymentIntent(
	ctx context.Context,
	req domain.PaymentIntentRequest,
) (*domain.PaymentIntent, error) {

	if req.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %d", req.Amount)
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("counselorId", req.CounselorID)
	params.AddMetadata("sessionType", string(req.SessionType))
	params.AddMetadata("studentEmail", req.StudentEmail)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, stripeError("create payment intent", err)
	}
	return toPaymentIntent(pi), nil
}

// GetPaymentIntent reads the current state of an intent, used to confirm a
// reservation after the client finished paying.
func (g *StripeGateway) GetPaymentIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	if id == "" {
		return nil, errors.New("payment intent id is empty")
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	pi, err := g.api.PaymentIntents.Get(id, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, stripeError("get payment intent", err)
	}
	return toPaymentIntent(pi), nil
}

func (g *StripeGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

func stripeError(op string, err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		return fmt.Errorf("stripe %s (%d): %s", se.Type, se.HTTPStatusCode, se.Msg)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toPaymentIntent(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}
}
