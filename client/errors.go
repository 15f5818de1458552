package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error kinds, matched with errors.Is.
var (
	// ErrInvalidArgument means the request was rejected before it was sent.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTransport means the request could not be sent or the body could not be read.
	ErrTransport = errors.New("transport error")
	// ErrClient is a 4xx response.
	ErrClient = errors.New("client error")
	// ErrServer is a 5xx response.
	ErrServer = errors.New("server error")
	// ErrUnknown is any other non-2xx response.
	ErrUnknown = errors.New("unknown error")
	// ErrAPI is a 2xx response whose body reports a failure.
	ErrAPI = errors.New("API reported an error")
	// ErrDecode means the body is not the expected JSON.
	ErrDecode = errors.New("cannot decode response")
)

// Error is returned by every Client operation. Kind is one of the Err* sentinels
// above; Cause, when set, is the underlying transport or decoding error.
// Both are reachable through errors.Is and errors.As.
type Error struct {
	Op         string
	URL        string
	StatusCode int
	// Code and Message are what the remote service said about the failure, if anything.
	Code    string
	Message string
	Kind    error
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Op)
	b.WriteString(": ")

	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("request failed")
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}

	if e.Message != "" {
		b.WriteString(": ")
		if e.Code != "" {
			b.WriteString("[" + e.Code + "] ")
		}
		b.WriteString(e.Message)
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)

	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}

	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}

func kindFromStatusCode(statusCode int) error {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return nil
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return ErrClient
	case statusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrUnknown
	}
}
