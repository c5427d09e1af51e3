package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = common.ErrorUnauthorized
	ErrNotFound     = common.ErrorNotFound
)

// Kind classifies a failed API call.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindUnauthorized
	KindServer
	KindValidation
	KindNotFound
	KindClient
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindServer:
		return "server"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindClient:
		return "client"
	default:
		return "unknown"
	}
}

// APIError is the single error type returned by HTTPClient for failed calls.
// Status is 0 when no response was received. Message carries the server's
// own explanation when it sent one.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	var detail string
	switch {
	case e.Message != "":
		detail = e.Message
	case e.Err != nil:
		detail = e.Err.Error()
	}

	if e.Status == 0 {
		if detail == "" {
			return fmt.Sprintf("api %s error", e.Kind)
		}
		return fmt.Sprintf("api %s error: %s", e.Kind, detail)
	}
	if detail == "" {
		return fmt.Sprintf("api %s error (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("api %s error (status %d): %s", e.Kind, e.Status, detail)
}

func (e *APIError) Unwrap() error { return e.Err }

// Is lets callers match on the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindNetwork
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 400 || status == 422:
		return KindValidation
	case status == 404:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindClient
	}
}
