package retry

import (
	"errors"
	"fmt"
)

// Kind classifies a failed remote call.
type Kind int

const (
	// KindTransport covers network failures and any unclassified remote error.
	KindTransport Kind = iota
	// KindRateLimited is an HTTP 429 or its equivalent; the only retried kind.
	KindRateLimited
	// KindInvalidResponse is a reply that arrived but cannot be used.
	KindInvalidResponse
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindInvalidResponse:
		return "invalid_response"
	default:
		return "transport"
	}
}

// Sentinels matching RemoteError kinds through errors.Is.
var (
	ErrRateLimited     = &RemoteError{Kind: KindRateLimited}
	ErrTransport       = &RemoteError{Kind: KindTransport}
	ErrInvalidResponse = &RemoteError{Kind: KindInvalidResponse}
)

// RemoteError is produced by the network layer so retry decisions never
// depend on error text.
type RemoteError struct {
	Kind Kind
	Err  error
}

// NewRemoteError wraps err with kind.
func NewRemoteError(kind Kind, err error) *RemoteError {
	return &RemoteError{Kind: kind, Err: err}
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return "remote call failed: " + e.Kind.String()
	}
	return fmt.Sprintf("remote call failed (%s): %v", e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is matches any RemoteError of the same kind.
func (e *RemoteError) Is(target error) bool {
	t, ok := target.(*RemoteError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first RemoteError in err's chain, and false
// when there is none.
func KindOf(err error) (Kind, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return KindTransport, false
}
