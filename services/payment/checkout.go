package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	successPath = "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/dashboard/payment-cancelled"
)

// CheckoutRequest is the input to StartCheckout. Cost is in major currency units.
type CheckoutRequest struct {
	Cost          string
	ServiceName   string
	ServiceID     string
	CustomerEmail string
}

// StartCheckout opens a hosted checkout session and returns its redirect URL.
// Nothing is written locally.
func (s *DefaultPaymentService) StartCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	amount, err := toMinorUnits(req.Cost)
	if err != nil {
		return "", err
	}

	clientURL := strings.TrimRight(s.opts.ClientURL, "/")
	session, err := s.gateway.CreateSession(ctx, SessionRequest{
		AmountMinor:   amount,
		Currency:      s.opts.Currency,
		ProductName:   req.ServiceName,
		ServiceID:     req.ServiceID,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    clientURL + successPath,
		CancelURL:     clientURL + cancelPath,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Checkout session created",
		zap.String("sessionId", session.ID),
		zap.String("serviceId", req.ServiceID),
		zap.Int64("amount", amount),
	)
	return session.URL, nil
}

// toMinorUnits scales a major-unit amount by 100. Fractions of a minor unit are rejected, not rounded.
func toMinorUnits(cost string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(cost))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCost, cost)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidCost, cost)
	}
	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than two decimal places", ErrInvalidCost, cost)
	}
	return minor.IntPart(), nil
}

// toMajorUnits converts a gateway minor-unit amount back to major units.
func toMajorUnits(minor int64) float64 {
	return decimal.New(minor, -2).InexactFloat64()
}
