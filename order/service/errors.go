package service

import "errors"

var (
	ErrMissingRequiredFields = errors.New("Missing required fields")
	ErrInvalidAmount         = errors.New("Invalid amount received")
	ErrCreateSession         = errors.New("failed to create checkout session")
	ErrPaymentNotCompleted   = errors.New("payment has not been completed")
)
