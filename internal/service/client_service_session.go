package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-tracker/internal/adapter"
	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/store"
	"github.com/MKhiriev/go-pet-tracker/internal/utils"
	"github.com/MKhiriev/go-pet-tracker/models"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
	logoutPath   = "/api/auth/logout"
	profilePath  = "/api/users/me"
)

type clientSessionService struct {
	gateway adapter.Gateway
	tokens  store.TokenStore
	now     func() time.Time

	mu    sync.Mutex
	hooks []func()
}

// NewClientSessionService returns a session manager persisting the session in
// tokens and talking to the backend through gateway. Log output goes to the
// logger attached to each call's context.
func NewClientSessionService(gateway adapter.Gateway, tokens store.TokenStore) SessionService {
	return &clientSessionService{gateway: gateway, tokens: tokens, now: time.Now}
}

func (s *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserProfile, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := s.gateway.Post(ctx, registerPath, req, &resp); err != nil {
		return nil, err
	}

	return s.establish(ctx, resp)
}

func (s *clientSessionService) Login(ctx context.Context, req models.LoginRequest) (*models.UserProfile, error) {
	if err := validateLogin(req); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := s.gateway.Post(ctx, loginPath, req, &resp); err != nil {
		return nil, err
	}

	return s.establish(ctx, resp)
}

// establish stores the issued credential and loads the profile. The session
// is established once the credential is stored; a failed profile fetch falls
// back to the user embedded in the response, or to the credential's user id.
func (s *clientSessionService) establish(ctx context.Context, resp models.AuthResponse) (*models.UserProfile, error) {
	log := logger.FromContext(ctx)

	cred := resp.Credential()
	if !cred.Valid() {
		return nil, errNoCredentialIssued
	}

	if err := s.tokens.SetCredential(ctx, cred); err != nil {
		log.Err(err).Str("func", "clientSessionService.establish").Msg("error storing credential")
		return nil, apierror.Unknown("store credential: "+err.Error(), err)
	}

	profile, err := s.RefreshProfile(ctx)
	if err == nil {
		return profile, nil
	}

	log.Warn().Err(err).
		Str("func", "clientSessionService.establish").
		Str("user_id", cred.UserID.String()).
		Msg("profile fetch failed after authentication")

	// A bare id is returned but not cached, so Initialize fetches the full
	// profile next time.
	if resp.User == nil {
		return &models.UserProfile{ID: cred.UserID}, nil
	}
	fallback := *resp.User
	if s.tokens.Credential(ctx) != nil {
		if err = s.tokens.SetProfile(ctx, fallback); err != nil {
			log.Warn().Err(err).Str("func", "clientSessionService.establish").Msg("error caching profile")
		}
	}
	return &fallback, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if s.tokens.Credential(ctx) != nil {
		if err := s.gateway.Post(ctx, logoutPath, nil, nil); err != nil {
			log.Warn().Err(err).Str("func", "clientSessionService.Logout").Msg("remote logout failed")
		}
	}

	if err := s.tokens.Clear(ctx); err != nil {
		log.Err(err).Str("func", "clientSessionService.Logout").Msg("error clearing session")
	}

	s.mu.Lock()
	hooks := append([]func(){}, s.hooks...)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}

	return nil
}

func (s *clientSessionService) RefreshProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.gateway.Get(ctx, profilePath, &profile); err != nil {
		return nil, err
	}

	if err := s.tokens.SetProfile(ctx, profile); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "clientSessionService.RefreshProfile").
			Msg("error caching profile")
	}
	return &profile, nil
}

func (s *clientSessionService) IsAuthenticated(ctx context.Context) bool {
	return s.tokens.Credential(ctx) != nil
}

func (s *clientSessionService) Initialize(ctx context.Context) models.SessionState {
	log := logger.FromContext(ctx)

	cred := s.tokens.Credential(ctx)
	if cred == nil {
		return models.SessionState{}
	}

	if utils.TokenExpired(cred.AccessToken, s.now()) {
		log.Info().Str("func", "clientSessionService.Initialize").Msg("stored token is expired")
		s.clear(ctx)
		return models.SessionState{}
	}

	if profile := s.tokens.Profile(ctx); profile != nil {
		return models.SessionState{IsAuthenticated: true, User: profile}
	}

	profile, err := s.RefreshProfile(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "clientSessionService.Initialize").Msg("stored session could not be recovered")
		s.clear(ctx)
		return models.SessionState{}
	}

	return models.SessionState{IsAuthenticated: true, User: profile}
}

func (s *clientSessionService) CurrentUser(ctx context.Context) *models.UserProfile {
	return s.tokens.Profile(ctx)
}

func (s *clientSessionService) OnLogout(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *clientSessionService) clear(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientSessionService.clear").Msg("error clearing session")
	}
}
