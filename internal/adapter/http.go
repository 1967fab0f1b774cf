package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/config"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/schema"
	"github.com/MKhiriev/go-pet-tracker/internal/utils"
	"github.com/MKhiriev/go-pet-tracker/models"
)

type httpGateway struct {
	client *utils.HTTPClient
	tokens CredentialStore

	fields     *schema.Table
	style      schema.Style
	normalizer *apierror.Normalizer
	limiter    *rate.Limiter
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPGateway constructs the resty-based [Gateway].
//
// It normalises and validates the base URL from cfg.HTTPAddress, configures
// the underlying HTTP client with the resolved base URL, request timeout and
// the build's User-Agent, and installs a token-bucket limiter when
// cfg.RequestsPerSecond is positive.
//
// Returns an error if cfg.HTTPAddress cannot be parsed as a URL or
// cfg.WireStyle is unknown.
func NewHTTPGateway(cfg config.ClientAdapter, tokens CredentialStore, build models.AppBuildInfo, log *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	style, err := schema.ParseStyle(cfg.WireStyle)
	if err != nil {
		return nil, err
	}

	fields := schema.Default()

	g := &httpGateway{
		client:     utils.NewHTTPClient(baseURL, cfg.RequestTimeout, build.UserAgent()),
		tokens:     tokens,
		fields:     fields,
		style:      style,
		normalizer: apierror.NewNormalizer(fields),
		ids:        utils.NewUUIDGenerator(),
		logger:     log,
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return g, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [Gateway].
func (h *httpGateway) Get(ctx context.Context, path string, result any) error {
	return h.do(ctx, http.MethodGet, path, nil, result)
}

// Post implements [Gateway].
func (h *httpGateway) Post(ctx context.Context, path string, body, result any) error {
	return h.do(ctx, http.MethodPost, path, body, result)
}

// Put implements [Gateway].
func (h *httpGateway) Put(ctx context.Context, path string, body, result any) error {
	return h.do(ctx, http.MethodPut, path, body, result)
}

// Delete implements [Gateway].
func (h *httpGateway) Delete(ctx context.Context, path string, result any) error {
	return h.do(ctx, http.MethodDelete, path, nil, result)
}
