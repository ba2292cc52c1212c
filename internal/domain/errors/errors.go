package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)
