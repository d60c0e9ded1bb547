package service

import (
	"errors"
)

var (
	// ErrMissingAPIKey is returned when the client is constructed without a
	// configured secret key.
	ErrMissingAPIKey = errors.New("stripe api key is not configured")

	// ErrEventVerification is returned when a webhook delivery fails
	// signature verification.
	ErrEventVerification = errors.New("webhook event verification failed")
)
