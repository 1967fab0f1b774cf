package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// do runs one request: limiter, credential, execute, clear on 401,
// normalize, decode. It never retries.
func (h *httpGateway) do(ctx context.Context, method, path string, body, result any) error {
	log := logger.FromContext(ctx)

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			log.Err(err).Str("func", "httpGateway.do").Str("path", path).Msg("request limiter aborted")
			return h.normalizer.Normalize(&apierror.TransportError{Err: err})
		}
	}

	req := h.authedRequest(ctx)
	if body != nil {
		encoded, err := h.fields.Encode(body, h.style)
		if err != nil {
			return apierror.Unknown(err.Error(), err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(encoded)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).
			Str("func", "httpGateway.do").
			Str("method", method).
			Str("path", path).
			Msg("request failed without response")
		return h.normalizer.Normalize(&apierror.TransportError{Err: err})
	}

	log.Debug().
		Str("func", "httpGateway.do").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Msg("request completed")

	if resp.StatusCode() == http.StatusUnauthorized {
		h.clearSession(ctx)
	}

	if err = mapHTTPError(resp); err != nil {
		return h.normalizer.Normalize(err)
	}

	return decodeResult(resp, result)
}

// authedRequest attaches the stored credential, if any, and a request id.
func (h *httpGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}
	req.SetHeader(requestIDHeader, requestID)

	if c := h.tokens.Credential(ctx); c != nil {
		req.SetAuthToken(c.AccessToken)
	}
	return req
}

func (h *httpGateway) clearSession(ctx context.Context) {
	if err := h.tokens.Clear(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpGateway.clearSession").Msg("failed to clear session after 401")
		return
	}
	h.logger.Info().Str("func", "httpGateway.clearSession").Msg("credential rejected, session cleared")
}

func decodeResult(resp *resty.Response, result any) error {
	if result == nil {
		return nil
	}

	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return apierror.Unknown(fmt.Sprintf("decode response: %v", err), err)
	}
	return nil
}
