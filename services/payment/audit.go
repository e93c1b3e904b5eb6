package payment

import (
	"context"
	"fmt"

	bookingRepo "smarthome/database/repository/booking"
	paymentRepo "smarthome/database/repository/payment"

	"go.uber.org/zap"
)

// Discrepancy is a booking marked paid whose tracking code has no payment record.
type Discrepancy struct {
	BookingID  string `json:"bookingId"`
	UserEmail  string `json:"userEmail"`
	TrackingID string `json:"trackingId"`
}

// Auditor finds bookings left paid without a payment, which happens when the process
// stops between the booking update and the payment insert. It only reports.
type Auditor struct {
	bookings bookingRepo.BookingRepository
	payments paymentRepo.PaymentRepository
	logger   *zap.Logger
}

func NewAuditor(bookings bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository, logger *zap.Logger) *Auditor {
	return &Auditor{bookings: bookings, payments: payments, logger: logger}
}

func (a *Auditor) Run(ctx context.Context) ([]Discrepancy, error) {
	paid, err := a.bookings.ListPaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing paid bookings: %w", err)
	}

	var out []Discrepancy
	for _, b := range paid {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		p, err := a.payments.FindByTrackingID(ctx, b.TrackingID)
		if err != nil {
			return out, fmt.Errorf("error looking up payment for booking %s: %w", b.ID.Hex(), err)
		}
		if p != nil {
			continue
		}
		d := Discrepancy{BookingID: b.ID.Hex(), UserEmail: b.UserEmail, TrackingID: b.TrackingID}
		a.logger.Warn("Paid booking has no payment record",
			zap.String("bookingId", d.BookingID),
			zap.String("trackingId", d.TrackingID),
		)
		out = append(out, d)
	}

	a.logger.Info("Payment audit finished", zap.Int("checked", len(paid)), zap.Int("discrepancies", len(out)))
	return out, nil
}
