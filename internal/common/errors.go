package common

import "errors"

var (
	// API errors, matched by the gateway's APIError.
	ErrorNotFound     = errors.New("not found")
	ErrorUnauthorized = errors.New("unauthorized")

	// Form-level errors.
	ErrorValidation = errors.New("validation error")
	ErrorBusy       = errors.New("submission already in progress")
	ErrorNoToken    = errors.New("no access token")
)
