package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Metadata keys attached to every checkout session.
const (
	MetaServiceID   = "serviceId"
	MetaServiceName = "serviceName"
)

// SessionRequest describes a single-item hosted checkout session.
type SessionRequest struct {
	AmountMinor   int64
	Currency      string
	ProductName   string
	ServiceID     string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Session is the gateway's view of a checkout session.
type Session struct {
	ID            string
	URL           string
	Paid          bool
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	// TransactionID identifies the settled transaction. Empty until the session is paid.
	TransactionID string
	Metadata      map[string]string
}

// Gateway opens and inspects hosted checkout sessions.
type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	// RetrieveSession returns ErrSessionNotFound when the gateway does not know id.
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}

// StripeGateway implements Gateway with Stripe Checkout.
type StripeGateway struct {
	sc *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{sc: client.New(secretKey, nil)}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	cs, err := g.sc.CheckoutSessions.New(buildSessionParams(ctx, req))
	if err != nil {
		return nil, fmt.Errorf("error creating checkout session: %w", err)
	}
	return toSession(cs), nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}}
	params.AddExpand("payment_intent")

	cs, err := g.sc.CheckoutSessions.Get(id, params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && (serr.Code == stripe.ErrorCodeResourceMissing || serr.HTTPStatusCode == http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("error retrieving checkout session %s: %w", id, err)
	}
	return toSession(cs), nil
}

func buildSessionParams(ctx context.Context, req SessionRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.AddMetadata(MetaServiceID, req.ServiceID)
	params.AddMetadata(MetaServiceName, req.ProductName)
	return params
}

func toSession(cs *stripe.CheckoutSession) *Session {
	s := &Session{
		ID:            cs.ID,
		URL:           cs.URL,
		Paid:          cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal:   cs.AmountTotal,
		Currency:      string(cs.Currency),
		CustomerEmail: cs.CustomerEmail,
		Metadata:      cs.Metadata,
	}
	if s.CustomerEmail == "" && cs.CustomerDetails != nil {
		s.CustomerEmail = cs.CustomerDetails.Email
	}
	if cs.PaymentIntent != nil {
		s.TransactionID = cs.PaymentIntent.ID
	}
	// No-cost sessions settle without a payment intent.
	if s.TransactionID == "" && s.Paid {
		s.TransactionID = cs.ID
	}
	return s
}
