package adapter

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
)

// mapHTTPError returns nil for a 2xx response and a [*apierror.ResponseError]
// carrying the status and raw body otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &apierror.ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}
}
