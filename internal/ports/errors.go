package ports

import (
	"errors"
	"fmt"
)

// Operation error taxonomy. These stay structured through every layer and
// are flattened to localized text only at the UI boundary.
var (
	// ErrEmptyInput means the input text is blank after trimming.
	ErrEmptyInput = errors.New("input text is empty")
	// ErrNotConfigured means no API credential is set.
	ErrNotConfigured = errors.New("api key not configured")
	// ErrEmptyResponse marks a reply with no candidates or no parts.
	ErrEmptyResponse = errors.New("empty model response")
)

// TransportError wraps a network-level failure before any status code was
// received.
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return fmt.Sprintf("request failed: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is a non-2xx reply from the endpoint. Body keeps the server
// text verbatim for diagnosis.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("gemini api error (%d): %s", e.StatusCode, e.Body)
}

// DecodeError wraps a failure to parse a reply into the expected shape.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string { return fmt.Sprintf("parse model reply: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
