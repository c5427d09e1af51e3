// Package forms holds the state and submit logic of the shell's input
// screens. A form validates synchronously, refuses a second submit while one
// is in flight and keeps the entered values when a submit fails.
package forms

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

// ErrBusy is returned by Submit while a previous submit is still running.
var ErrBusy = common.ErrorBusy

// ValidationErrors maps a field name to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == common.ErrorValidation
}

// Navigator moves the shell to another view.
// *router.Navigator satisfies it.
type Navigator interface {
	Go(path string) router.Location
}

// ErrorMessage turns err into text for the user: the server's message if it
// sent one, otherwise the transport error, otherwise fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var ae *client.APIError
	if errors.As(err, &ae) {
		if ae.Message != "" {
			return ae.Message
		}
		if ae.Err != nil && ae.Err.Error() != "" {
			return ae.Err.Error()
		}
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// status is the busy flag and last messages shared by all forms.
type status struct {
	mu      sync.Mutex
	busy    bool
	errMsg  string
	success string
}

func (s *status) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	s.errMsg = ""
	s.success = ""
	return nil
}

func (s *status) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *status) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

func (s *status) succeed(msg string) {
	s.mu.Lock()
	s.success = msg
	s.mu.Unlock()
}

// Busy reports whether a submit is in flight.
func (s *status) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Message is the last user-facing failure message, "" after a success.
func (s *status) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Success is the last acknowledgement, if any.
func (s *status) Success() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.success
}

// abandoned reports whether ctx was cancelled or timed out.
func abandoned(ctx context.Context) bool {
	return ctx.Err() != nil
}
