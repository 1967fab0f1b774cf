// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apierror

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// ResponseError is a failure for which the server returned a response with a
// non-success status.
type ResponseError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// TransportError is a failure for which no response was received: the
// request never reached the server, the connection dropped or the request
// timed out.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

// Unwrap returns the underlying failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// FieldTranslator maps backend wire field names to client field names.
type FieldTranslator interface {
	ClientField(wire string) string
}

type identityFields struct{}

func (identityFields) ClientField(wire string) string { return wire }

// Normalizer converts arbitrary failures into [*Error].
type Normalizer struct {
	fields FieldTranslator
}

// NewNormalizer returns a normalizer translating field names with fields.
// A nil translator keeps wire names unchanged.
func NewNormalizer(fields FieldTranslator) *Normalizer {
	if fields == nil {
		fields = identityFields{}
	}
	return &Normalizer{fields: fields}
}

type wireField struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

type wireBody struct {
	Code    *string     `json:"code"`
	Message *string     `json:"message"`
	Field   string      `json:"field"`
	Errors  []wireField `json:"errors"`
	Error   string      `json:"error"`
}

// Normalize classifies err. It returns nil for a nil error. An error that is
// already normalized is returned unchanged.
//
// Classification, first match wins:
//  1. response body with code and message → kind by status
//  2. response body with an errors array → validation, all entries in order
//  3. response body that is a bare string → message, kind by status
//  4. no response at all → network
//  5. anything else → unknown
func (n *Normalizer) Normalize(err error) *Error {
	if err == nil {
		return nil
	}

	if e, ok := As(err); ok {
		return e
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return n.fromResponse(respErr)
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return Network(transportErr.Err)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return Network(err)
	}

	return Unknown(err.Error(), err)
}

func (n *Normalizer) fromResponse(resp *ResponseError) *Error {
	body := bytes.TrimSpace(resp.Body)
	status := resp.StatusCode

	var wb wireBody
	if len(body) > 0 && body[0] == '{' && json.Unmarshal(body, &wb) == nil {
		switch {
		case wb.Code != nil && wb.Message != nil:
			return n.single(status, *wb.Code, *wb.Message, wb.Field)
		case len(wb.Errors) > 0:
			return n.multi(status, wb.Errors)
		case wb.Message != nil:
			return n.message(status, *wb.Message)
		case wb.Error != "":
			return n.message(status, wb.Error)
		}
		return n.message(status, "")
	}

	if s, ok := bareString(body); ok {
		return n.message(status, s)
	}

	return n.message(status, "")
}

// bareString returns the body as a message when it is a JSON string or plain
// text. HTML error pages are not used as messages.
func bareString(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	if body[0] == '"' {
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			return s, true
		}
	}
	if body[0] == '<' || body[0] == '{' || body[0] == '[' {
		return "", false
	}
	return string(body), true
}

// statusKind maps an HTTP status onto the error kind: 401 is auth, 5xx is
// server, every other 4xx is a rejection of the request and therefore
// validation.
func statusKind(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status >= http.StatusInternalServerError:
		return KindServer
	case status >= http.StatusBadRequest:
		return KindValidation
	default:
		return KindUnknown
	}
}

func (n *Normalizer) single(status int, code, message, field string) *Error {
	field = n.fields.ClientField(field)

	if statusKind(status) == KindValidation {
		e := Validation(FieldError{Field: field, Message: message, Code: code})
		e.Status = status
		return e
	}

	return &Error{
		Kind:    statusKind(status),
		Status:  status,
		Code:    code,
		Message: message,
		Field:   field,
	}
}

func (n *Normalizer) multi(status int, errs []wireField) *Error {
	fields := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, FieldError{
			Field:   n.fields.ClientField(fe.Field),
			Message: fe.Message,
			Code:    fe.Code,
		})
	}

	e := Validation(fields...)
	e.Status = status
	return e
}

func (n *Normalizer) message(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}

	kind := statusKind(status)
	switch kind {
	case KindValidation:
		e := Validation(FieldError{Message: message})
		e.Status = status
		return e
	case KindUnknown:
		e := Unknown(message, nil)
		e.Status = status
		return e
	default:
		return &Error{Kind: kind, Status: status, Message: message}
	}
}
