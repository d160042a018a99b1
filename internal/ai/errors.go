package ai

import "errors"

// Kind classifies what went wrong on the way to (or back from) OpenAI.
// Handlers map kinds to the inline error region of the page.
type Kind int

const (
	KindMissingCredential Kind = iota
	KindTransport
	KindSchemaViolation
	KindRefusal
	KindRateLimited
	KindQuotaExceeded
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindTransport:
		return "transport"
	case KindSchemaViolation:
		return "schema_violation"
	case KindRefusal:
		return "refusal"
	case KindRateLimited:
		return "rate_limited"
	case KindQuotaExceeded:
		return "quota_exceeded"
	}
	return "unknown"
}

// Error carries a user-safe message and a technical detail line kept apart
// so the page can show them on separate lines.
type Error struct {
	Kind    Kind
	Message string // user-facing, Portuguese
	Detail  string // technical detail for debugging
	Err     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + " (" + e.Detail + ")"
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a typed client error. Exposed so callers that enforce
// response post-conditions can raise schema violations of their own.
func NewError(kind Kind, message, detail string) *Error {
	return &Error{Kind: kind, Message: message, Detail: detail}
}

// KindOf extracts the Kind from an error chain. The second result is false
// for errors that did not come from this package.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func retryable(kind Kind) bool {
	return kind == KindTransport || kind == KindRateLimited
}
