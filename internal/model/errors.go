package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	ErrDuplicateAccount   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidRequest     = errors.New("invalid request")

	// ErrStorageUnavailable marks ticket operations while object storage is down.
	ErrStorageUnavailable = errors.New("ticket storage unavailable")
)
