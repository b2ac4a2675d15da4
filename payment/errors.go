package payment

import "fmt"

// ErrorKind classifies a failed gateway call.
type ErrorKind int

const (
	// ErrorTransport is a network, TLS or timeout failure. Not retried
	// automatically: payment submissions are not idempotent.
	ErrorTransport ErrorKind = iota + 1
	// ErrorAuthentication is the gateway rejecting the merchant credentials.
	ErrorAuthentication
	// ErrorProtocol is a gateway-reported error or a response the client
	// cannot make sense of.
	ErrorProtocol
	// ErrorValidation is an incomplete entity caught at assembly time,
	// before any network I/O.
	ErrorValidation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorTransport:
		return "transport"
	case ErrorAuthentication:
		return "authentication"
	case ErrorProtocol:
		return "protocol"
	case ErrorValidation:
		return "validation"
	}
	return "unknown"
}

// Error is the failure type every client operation returns. Kind is the
// closed classification above; Message and Code carry the gateway's report
// when there is one.
type Error struct {
	Kind    ErrorKind
	Message string
	Code    int
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("payu: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("payu: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func transportError(cause error) *Error {
	return &Error{Kind: ErrorTransport, cause: cause}
}

func protocolError(format string, args ...any) *Error {
	return &Error{Kind: ErrorProtocol, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...any) *Error {
	return &Error{Kind: ErrorValidation, Message: fmt.Sprintf(format, args...)}
}

// gatewayError maps a gateway-reported error body to a typed failure. The
// gateway signals bad credentials with a literal message and no code.
func gatewayError(message string) *Error {
	if message == invalidCredentials {
		return &Error{Kind: ErrorAuthentication, Message: message, Code: 0}
	}
	return &Error{Kind: ErrorProtocol, Message: message}
}

const invalidCredentials = "Invalid credentials"
