package api

import "errors"

// FallbackMessage is shown when a failure carries no message of its own.
const FallbackMessage = "Something went wrong"

// Kind discriminates the two failure channels of the remote service.
type Kind int

const (
	// KindTransport: no response was received (network down, timeout, DNS).
	KindTransport Kind = iota
	// KindAPI: the server answered but the body signals an error.
	KindAPI
)

// Error is the uniform failure shape returned by every Client operation.
// Message is user-facing; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return FallbackMessage
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Message extracts the user-facing text from any error the Client returned.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return FallbackMessage
}

// transportError hides the raw transport failure behind the generic
// user-facing message; the cause stays attached for logging.
func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: FallbackMessage, Err: err}
}
