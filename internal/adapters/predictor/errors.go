package predictor

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every *RequestFailedError via errors.Is.
var ErrRequestFailed = errors.New("request failed")

// RequestFailedError reports a non-success response or a failed image read.
// StatusCode is zero for failures that never reached the server.
type RequestFailedError struct {
	Message    string
	StatusCode int
	Err        error
}

// Error returns the message unchanged.
func (e *RequestFailedError) Error() string { return e.Message }

// Is reports whether target is ErrRequestFailed.
func (e *RequestFailedError) Is(target error) bool { return target == ErrRequestFailed }

// Unwrap returns the underlying cause, if any.
func (e *RequestFailedError) Unwrap() error { return e.Err }

func statusError(code int, serverMsg string) *RequestFailedError {
	msg := serverMsg
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", code)
	}
	return &RequestFailedError{Message: msg, StatusCode: code}
}
