package steam

import "errors"

// ErrorKind classifies a fetch failure. The values double as the wire-level
// error codes surfaced to API callers.
type ErrorKind string

const (
	// KindPrivateInventory means Steam refused access (HTTP 403). Permanent
	// until the user changes their privacy settings; never retried, since
	// hammering a 403 risks escalating to IP-level blocking.
	KindPrivateInventory ErrorKind = "PRIVATE_INVENTORY"
	// KindRateLimited means Steam answered 429. Transient.
	KindRateLimited ErrorKind = "RATE_LIMITED"
	// KindNetworkError covers 5xx responses, transport failures and
	// timeouts. Transient.
	KindNetworkError ErrorKind = "NETWORK_ERROR"
	// KindInvalidResponse means the payload could not be decoded. Not
	// retried: it indicates an API contract change, not a flake.
	KindInvalidResponse ErrorKind = "INVALID_RESPONSE"
	// KindExternalAPIError means Steam returned HTTP 200 with an
	// application-level failure flag. Not retried.
	KindExternalAPIError ErrorKind = "EXTERNAL_API_ERROR"
)

// Error is the typed failure returned by the fetch client. It never escapes
// the client as a panic; every expected failure mode maps to one of the
// ErrorKind values above.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.cause.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Transient reports whether the failure is worth retrying.
func (e *Error) Transient() bool {
	return e.Kind == KindRateLimited || e.Kind == KindNetworkError
}

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var serr *Error
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}
