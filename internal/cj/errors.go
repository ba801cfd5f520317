package cj

import (
	"fmt"
	"net/http"
	"time"
)

// AuthError indicates the partner permanently rejected our credentials or
// token, after the single refresh-and-retry allowed by policy. The account
// needs reconfiguration; callers should not retry blindly.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "cj: authentication failed: " + e.Message
}

// RateLimitError indicates the partner's rate ceiling was hit twice in a
// row for the same logical call. Callers may retry later.
type RateLimitError struct {
	Backoff time.Duration
	Message string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("cj: rate limited (backoff %s): %s", e.Backoff, e.Message)
}

// RemoteError carries a partner failure that is neither an auth nor a
// rate-limit condition. It is surfaced as-is and never retried.
type RemoteError struct {
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("cj: remote error %d: %s", e.Code, e.Message)
}

// TransportError wraps a network or timeout failure. The request may never
// have reached the partner; callers may retry the whole operation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "cj: transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// disposition classifies a partner response into a retry decision. The
// retry policy lives here and in the single dispatch loop in gateway.go,
// nowhere else.
type disposition int

const (
	dispositionOK disposition = iota
	dispositionRateLimited
	dispositionAuthExpired
	dispositionRemote
)

// classify maps an HTTP status and partner body code to a disposition.
func classify(status, code int) disposition {
	switch {
	case status == http.StatusTooManyRequests || code == codeRateLimited:
		return dispositionRateLimited
	case status == http.StatusUnauthorized ||
		code == codeTokenExpired || code == codeTokenInvalid:
		return dispositionAuthExpired
	case status >= 200 && status < 300 && code == codeSuccess:
		return dispositionOK
	default:
		return dispositionRemote
	}
}
