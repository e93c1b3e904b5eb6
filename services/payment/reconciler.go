package payment

import (
	"context"
	"fmt"
	"strings"

	"smarthome/models"

	"go.uber.org/zap"
)

// SettlementResult reports the outcome of ConfirmSettlement.
type SettlementResult struct {
	// AlreadyRecorded is true when a payment for the transaction existed before this call.
	AlreadyRecorded bool
	// Settled is false when the gateway has not reported the session as paid yet.
	Settled       bool
	TrackingID    string
	TransactionID string
	// Payment is set only when this call inserted the record.
	Payment *models.Payment
}

// ConfirmSettlement records the payment for a paid checkout session exactly once per transaction.
//
// A known transaction returns the stored tracking code without writing. An unpaid session writes
// nothing. A first-seen paid session marks the referenced booking paid, then inserts the payment.
// The lookup and insert are not atomic: two concurrent first confirmations may both insert.
func (s *DefaultPaymentService) ConfirmSettlement(ctx context.Context, sessionID string) (*SettlementResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.TransactionID != "" {
		existing, err := s.payments.FindByTransactionID(ctx, session.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("error checking recorded payment: %w", err)
		}
		if existing != nil {
			s.logger.Info("Settlement already recorded",
				zap.String("transactionId", existing.TransactionID),
				zap.String("trackingId", existing.TrackingID),
			)
			return &SettlementResult{
				AlreadyRecorded: true,
				Settled:         true,
				TrackingID:      existing.TrackingID,
				TransactionID:   existing.TransactionID,
			}, nil
		}
	}

	if !session.Paid {
		s.logger.Debug("Checkout session not paid yet", zap.String("sessionId", sessionID))
		return &SettlementResult{Settled: false}, nil
	}

	trackingID := s.newTrackingCode()
	bookingRef := session.Metadata[MetaServiceID]

	matched, err := s.bookings.MarkPaid(ctx, bookingRef, trackingID)
	if err != nil {
		return nil, fmt.Errorf("error marking booking paid: %w", err)
	}
	if matched == 0 {
		s.logger.Warn("No booking matched settled session",
			zap.String("bookingRef", bookingRef),
			zap.String("sessionId", sessionID),
		)
	}

	payment := &models.Payment{
		Amount:        toMajorUnits(session.AmountTotal),
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		ServiceID:     bookingRef,
		ServiceName:   session.Metadata[MetaServiceName],
		TransactionID: session.TransactionID,
		PaymentStatus: models.PaymentStatusPaid,
		PaidAt:        s.now(),
		TrackingID:    trackingID,
	}
	if _, err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("error recording payment: %w", err)
	}

	s.logger.Info("Payment recorded",
		zap.String("transactionId", payment.TransactionID),
		zap.String("trackingId", trackingID),
		zap.Float64("amount", payment.Amount),
	)
	return &SettlementResult{
		Settled:       true,
		TrackingID:    trackingID,
		TransactionID: payment.TransactionID,
		Payment:       payment,
	}, nil
}
