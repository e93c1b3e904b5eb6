package payment

import "errors"

var (
	// ErrInvalidCost is returned when a checkout cost is not a non-negative amount in whole minor units.
	ErrInvalidCost = errors.New("invalid cost")
	// ErrMissingSessionID is returned when settlement is requested without a session id.
	ErrMissingSessionID = errors.New("session_id is required")
	// ErrSessionNotFound is returned when the gateway does not know the session id.
	ErrSessionNotFound = errors.New("checkout session not found")
)
