package remote

import (
	"errors"
	"fmt"
)

// TransportError reports a network failure, a non-2xx status or an
// unreadable body.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("remote %s %s", e.Op, e.URL)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: unexpected status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EnvelopeError reports a well-formed envelope carrying success=false.
type EnvelopeError struct {
	Op  string
	URL string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("remote %s %s: backend reported success=false", e.Op, e.URL)
}

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// AsEnvelopeError attempts to unwrap an error into an EnvelopeError.
func AsEnvelopeError(err error) (*EnvelopeError, bool) {
	var eErr *EnvelopeError
	if errors.As(err, &eErr) {
		return eErr, true
	}
	return nil, false
}
