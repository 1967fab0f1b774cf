// Package apierror defines the closed error union every caller of the
// data-access layer consumes, and the [Normalizer] that collapses the
// backend's heterogeneous failure shapes into it.
//
// Exactly one [Kind] is set on every [Error]. Validation errors always carry
// at least one [FieldError]; a field-less entry stands for a general form
// message. Callers match kinds with [errors.Is] against the sentinel values
// ([ErrNetwork], [ErrValidation], [ErrAuth], [ErrServer], [ErrUnknown]) or
// with [KindOf].
package apierror

import (
	"errors"
	"fmt"
)

// Kind is the discriminator of the error union.
type Kind string

const (
	// KindNetwork means the request never reached the server or no response
	// was received.
	KindNetwork Kind = "network"

	// KindValidation means the server rejected the input; field detail is in
	// [Error.Fields].
	KindValidation Kind = "validation"

	// KindAuth means the server rejected the credential. The gateway clears
	// the local session before returning it.
	KindAuth Kind = "auth"

	// KindServer means the server failed (status 5xx).
	KindServer Kind = "server"

	// KindUnknown is everything else.
	KindUnknown Kind = "unknown"
)

const (
	// NetworkMessage is the fixed message of every network error.
	NetworkMessage = "Network error - please check your connection"

	// UnknownMessage is used when a failure carries no message of its own.
	UnknownMessage = "An unexpected error occurred"
)

// Sentinel values for kind matching with [errors.Is].
var (
	ErrNetwork    = &Error{Kind: KindNetwork}
	ErrValidation = &Error{Kind: KindValidation}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrServer     = &Error{Kind: KindServer}
	ErrUnknown    = &Error{Kind: KindUnknown}
)

// FieldError is a single validation failure. Field is in client form and is
// empty for general, non-field messages.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error is the normalized error.
type Error struct {
	// Kind discriminates the union.
	Kind Kind

	// Status is the HTTP status of the response, or 0 when there was none.
	Status int

	// Code is the backend error code of the first (or only) error, if any.
	Code string

	// Message is the user-presentable message. For multi-field validation
	// errors it is the first field's message, kept for single-field
	// consumers.
	Message string

	// Field is the client field name of the first (or only) error, if any.
	Field string

	// Fields holds every validation failure in received order. It is
	// non-empty iff Kind is [KindValidation].
	Fields []FieldError

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind) + " error"
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying transport or decoding failure, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports kind equality against the sentinel values. Two non-sentinel
// errors are only equal when they are the same value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == e {
		return true
	}
	return t.Message == "" && t.Status == 0 && len(t.Fields) == 0 && t.Kind == e.Kind
}

// FieldMessages returns validation messages keyed by client field name. The
// first message wins when a field is reported twice. General messages are
// keyed by the empty string.
func (e *Error) FieldMessages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

// Network builds a network error caused by err.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Message: NetworkMessage, cause: err}
}

// Validation builds a validation error from one or more field errors. The
// first field provides the top-level message, code and field. Calling it
// without fields yields a single general entry with [UnknownMessage].
func Validation(fields ...FieldError) *Error {
	if len(fields) == 0 {
		fields = []FieldError{{Message: UnknownMessage}}
	}

	return &Error{
		Kind:    KindValidation,
		Code:    fields[0].Code,
		Message: fields[0].Message,
		Field:   fields[0].Field,
		Fields:  fields,
	}
}

// Unknown builds an unknown error. An empty message falls back to
// [UnknownMessage].
func Unknown(message string, cause error) *Error {
	if message == "" {
		message = UnknownMessage
	}
	return &Error{Kind: KindUnknown, Message: message, cause: cause}
}

// As returns the normalized error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the normalized error in err's chain, or
// [KindUnknown] for any other non-nil error. It returns "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnknown
}
