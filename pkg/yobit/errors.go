package yobit

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an API failure.
type ErrorKind string

const (
	// KindTransient covers transport failures and server-side errors; a caller may retry.
	KindTransient ErrorKind = "transient"
	// KindAuth means the trade API rejected the key, signature or nonce.
	KindAuth ErrorKind = "auth"
	// KindResponse covers client errors and payloads that cannot be used.
	KindResponse ErrorKind = "response"
)

// APIError is returned by every client method that fails.
type APIError struct {
	Kind       ErrorKind
	Op         string // e.g. "getInfo", "ticker"
	StatusCode int    // 0 when no response was received
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("yobit %s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// IsTransient reports whether err is an APIError worth retrying.
func IsTransient(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindTransient
}

func transportError(op string, err error) *APIError {
	return &APIError{Kind: KindTransient, Op: op, Message: "request failed", Cause: err}
}

// statusError maps a non-200 status to an APIError.
func statusError(op string, status int, body []byte) *APIError {
	kind := KindResponse
	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		kind = KindTransient
	}
	return &APIError{Kind: kind, Op: op, StatusCode: status, Message: string(body)}
}

func decodeError(op string, err error) *APIError {
	return &APIError{Kind: KindResponse, Op: op, Message: "decode response", Cause: err}
}
