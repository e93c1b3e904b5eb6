package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Booking is a customer's request to receive a service on a given date and location.
// Service fields are snapshots taken when the booking is created.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceID     string             `bson:"serviceId" json:"serviceId"`
	ServiceName   string             `bson:"serviceName" json:"serviceName"`
	ServiceImage  string             `bson:"serviceImage" json:"serviceImage"`
	Cost          float64            `bson:"cost" json:"cost"`
	Unit          string             `bson:"unit" json:"unit"`
	UserName      string             `bson:"userName" json:"userName"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	BookingDate   string             `bson:"bookingDate" json:"bookingDate"`
	Location      string             `bson:"location" json:"location"`
	Status        string             `bson:"status" json:"status"`
	PaymentStatus string             `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	TrackingID    string             `bson:"trackingId,omitempty" json:"trackingId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateBookingInput is the body of POST /bookings.
type CreateBookingInput struct {
	ServiceID   string `json:"serviceId" binding:"required,objectid"`
	UserEmail   string `json:"userEmail" binding:"required,email"`
	UserName    string `json:"userName" binding:"required"`
	BookingDate string `json:"bookingDate" binding:"required"`
	Location    string `json:"location" binding:"required"`
}
