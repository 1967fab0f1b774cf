package service

import "github.com/MKhiriev/go-pet-tracker/internal/apierror"

// Validation codes reported for input rejected before any request is sent.
const (
	CodeRequiredField     = "REQUIRED_FIELD"
	CodeInvalidValue      = "INVALID_VALUE"
	CodeMismatch          = "MISMATCH"
	CodeInvalidTransition = "INVALID_TRANSITION"
)

var (
	errNoCredentialIssued = apierror.Unknown("authentication response carries no credential", nil)
	errNoEntityID         = apierror.Unknown("response carries no id", nil)
)

func required(field, message string) apierror.FieldError {
	return apierror.FieldError{Field: field, Message: message, Code: CodeRequiredField}
}

func invalid(field, message string) apierror.FieldError {
	return apierror.FieldError{Field: field, Message: message, Code: CodeInvalidValue}
}

// fieldErrors collects validation failures in the order they were found.
type fieldErrors []apierror.FieldError

func (f *fieldErrors) add(fe apierror.FieldError) {
	*f = append(*f, fe)
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apierror.Validation(f...)
}
