package booking

import "fmt"

// BookingError is a caller-facing booking failure. Message is safe to return to clients.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBookingError(code, msg string) *BookingError {
	return &BookingError{Code: code, Message: msg}
}

var (
	ErrAlreadyBooked    = newBookingError("alreadyBooked", "Already booked this service on this date")
	ErrInvalidBookingID = newBookingError("invalidId", "Invalid booking id")
	ErrBookingNotFound  = newBookingError("notFound", "Booking not found")
	ErrMissingStatus    = newBookingError("missingStatus", "Status is required")
)
