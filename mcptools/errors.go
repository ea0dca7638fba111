package mcptools

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrConnection marks transport or handshake failures. These are fatal
	// to the session: the caller cannot proceed with the query.
	ErrConnection = errors.New("tool session connection failed")

	// ErrInvocation marks failures reported by the tool endpoint while
	// executing a call. These are recoverable: callers are expected to fold
	// the message into the conversation so the model can react to it.
	ErrInvocation = errors.New("tool invocation failed")
)

// IsConnectionError reports whether err is a transport or handshake failure.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsInvocationError reports whether err is a tool execution failure
// reported by the endpoint.
func IsInvocationError(err error) bool {
	return errors.Is(err, ErrInvocation)
}
