// Package errors defines the sentinel errors shared across the messaging
// system, grouped by the way they are reported to clients.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Validation errors: reported to the caller, never fatal to the connection.
var (
	ErrSenderRequired   = fmt.Errorf("Sender ID is required")
	ErrReceiverRequired = fmt.Errorf("Receiver ID is required")
	ErrBodyRequired     = fmt.Errorf("Message is required")
	ErrSelfMessage      = fmt.Errorf("You cannot send a message to yourself")
)

// Authentication errors: the connection attempt is terminated, no message
// state is touched.
var (
	ErrTokenMissing = fmt.Errorf("authorization token is missing")
	ErrTokenInvalid = fmt.Errorf("invalid or expired token")
	ErrUserBlocked  = fmt.Errorf("user account is blocked")
)

// Authorization errors: the denial reasons are kept distinct so a client can
// tell "wait for the counterpart to initiate" from "no matching application".
var (
	ErrReplyOnly     = fmt.Errorf("You can only reply to messages. Please wait for the employer to start the conversation.")
	ErrNoApplication = fmt.Errorf("You can only chat about jobs you have applied for.")
	ErrNotJobOwner   = fmt.Errorf("Not authorized")
)

var ErrJobNotFound = fmt.Errorf("Job not found")

// IsAuthorization reports whether err is an initiation gate denial.
func IsAuthorization(err error) bool {
	return stderrors.Is(err, ErrReplyOnly) ||
		stderrors.Is(err, ErrNoApplication) ||
		stderrors.Is(err, ErrNotJobOwner)
}

// MapToHTTPStatus converts a domain error into an HTTP status code at the
// transport edge. Unknown errors are treated as internal.
func MapToHTTPStatus(err error) int {
	switch {
	case stderrors.Is(err, ErrSenderRequired),
		stderrors.Is(err, ErrReceiverRequired),
		stderrors.Is(err, ErrBodyRequired),
		stderrors.Is(err, ErrSelfMessage):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrTokenMissing),
		stderrors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized
	// A blocked user is authenticated but denied.
	case stderrors.Is(err, ErrUserBlocked), IsAuthorization(err):
		return http.StatusForbidden
	case stderrors.Is(err, ErrJobNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
