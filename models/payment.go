package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one settled gateway transaction. TransactionID is the dedup key.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	ServiceID     string             `bson:"serviceId" json:"serviceId"`
	ServiceName   string             `bson:"serviceName" json:"serviceName"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
	TrackingID    string             `bson:"trackingId" json:"trackingId"`
}

// CheckoutInput is the body of POST /create-checkout-session.
// Cost accepts a JSON number or a numeric string.
type CheckoutInput struct {
	Cost           json.Number `json:"cost" binding:"required"`
	ServiceName    string      `json:"serviceName" binding:"required"`
	ServiceID      string      `json:"serviceId" binding:"required"`
	CreatedByEmail string      `json:"createdByEmail" binding:"required,email"`
}
