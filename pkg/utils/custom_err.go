package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrMalformedGeneration = errors.New("generation output malformed")
	ErrPlaceLookupFailed   = errors.New("place lookup failed")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already registered")
)
