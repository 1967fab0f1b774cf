package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-tracker/internal/adapter"
	"github.com/MKhiriev/go-pet-tracker/internal/config"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/utils"
	"github.com/MKhiriev/go-pet-tracker/models"
)

type profileAPI struct {
	profileCalls atomic.Int64
}

func (p *profileAPI) server(t *testing.T) *httptest.Server {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = utils.WriteJSON(w, models.AuthResponse{Token: "t1", UserID: "u1"}, http.StatusOK)
	})
	r.Get("/api/users/me", func(w http.ResponseWriter, _ *http.Request) {
		p.profileCalls.Add(1)
		_, _ = utils.WriteJSON(w, models.UserProfile{ID: "u1", Email: "test@example.com"}, http.StatusOK)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(address, dsn string) *config.ClientConfig {
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: address, RequestTimeout: 2 * time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
	}
}

func runFor(t *testing.T, app *App, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(d + time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestNewApp_InvalidAddress(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig("http://", "memory"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.ErrorIs(t, err, adapter.ErrInvalidAddress)
}

func TestNewApp_UnknownWireStyle(t *testing.T) {
	cfg := testConfig("localhost:8080", "memory")
	cfg.Adapter.WireStyle = "kebab"

	_, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.Error(t, err)
}

func TestApp_RunWithoutSession(t *testing.T) {
	api := &profileAPI{}
	srv := api.server(t)

	app, err := NewApp(context.Background(), testConfig(srv.URL, "memory"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	runFor(t, app, 50*time.Millisecond)

	assert.False(t, app.Services().Session.IsAuthenticated(context.Background()))
	assert.Equal(t, int64(0), api.profileCalls.Load())
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	api := &profileAPI{}
	srv := api.server(t)
	dsn := filepath.Join(t.TempDir(), "client.db")
	build := models.NewAppBuildInfo("", "", "")
	ctx := context.Background()

	first, err := NewApp(ctx, testConfig(srv.URL, dsn), build, logger.Nop())
	require.NoError(t, err)
	_, err = first.Services().Session.Login(ctx, models.LoginRequest{Email: "test@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewApp(ctx, testConfig(srv.URL, dsn), build, logger.Nop())
	require.NoError(t, err)
	defer func() { require.NoError(t, second.Close()) }()

	state := second.Services().Session.Initialize(ctx)
	require.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, models.ID("u1"), state.User.ID)
}

func TestApp_RunRefreshesProfile(t *testing.T) {
	api := &profileAPI{}
	srv := api.server(t)
	ctx := context.Background()

	cfg := testConfig(srv.URL, "memory")
	cfg.Workers.ProfileRefreshInterval = 10 * time.Millisecond

	app, err := NewApp(ctx, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	_, err = app.Services().Session.Login(ctx, models.LoginRequest{Email: "test@example.com", Password: "secret"})
	require.NoError(t, err)
	afterLogin := api.profileCalls.Load()

	runFor(t, app, 60*time.Millisecond)

	assert.Greater(t, api.profileCalls.Load(), afterLogin)
}
