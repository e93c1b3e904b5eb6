package catalog

import "errors"

var (
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrServiceNotFound  = errors.New("service not found")
	ErrNothingToUpdate  = errors.New("no fields to update")
)
