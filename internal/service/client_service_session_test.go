package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/mock"
	"github.com/MKhiriev/go-pet-tracker/internal/store"
	"github.com/MKhiriev/go-pet-tracker/internal/utils"
	"github.com/MKhiriev/go-pet-tracker/models"
)

func newSessionUnderTest(t *testing.T) (*clientSessionService, *mock.MockGateway, store.TokenStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	tokens := store.NewTokenStore(store.NewMemoryKeyValueStore(), logger.Nop())
	return NewClientSessionService(gw, tokens).(*clientSessionService), gw, tokens
}

func respondAuth(resp models.AuthResponse) func(context.Context, string, any, any) error {
	return func(_ context.Context, _ string, _ any, result any) error {
		*result.(*models.AuthResponse) = resp
		return nil
	}
}

func respondProfile(p models.UserProfile) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, result any) error {
		*result.(*models.UserProfile) = p
		return nil
	}
}

var (
	testLogin   = models.LoginRequest{Email: "test@example.com", Password: "pw"}
	testProfile = models.UserProfile{ID: "u1", Email: "test@example.com", FirstName: "Test"}
)

// ── Login / Register ────────────────────────────────────────────────────────

func TestSession_Login_StoresCredentialAndProfile(t *testing.T) {
	svc, gw, tokens := newSessionUnderTest(t)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().Post(gomock.Any(), loginPath, testLogin, gomock.Any()).
			DoAndReturn(respondAuth(models.AuthResponse{Token: "t1", UserID: "u1"})),
		gw.EXPECT().Get(gomock.Any(), profilePath, gomock.Any()).
			DoAndReturn(respondProfile(testProfile)),
	)

	user, err := svc.Login(ctx, testLogin)
	require.NoError(t, err)
	assert.Equal(t, &testProfile, user)

	assert.True(t, svc.IsAuthenticated(ctx))
	assert.Equal(t, &models.Credential{AccessToken: "t1", UserID: "u1"}, tokens.Credential(ctx))
	assert.Equal(t, &testProfile, svc.CurrentUser(ctx))
}

func TestSession_Login_ValidationSendsNothing(t *testing.T) {
	svc, _, tokens := newSessionUnderTest(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	require.ErrorIs(t, err, apierror.ErrValidation)
	e, _ := apierror.As(err)
	assert.Equal(t, map[string]string{"email": "Email is required", "password": "Password is required"}, e.FieldMessages())
	assert.Nil(t, tokens.Credential(context.Background()))
}

func TestSession_Login_GatewayErrorStoresNothing(t *testing.T) {
	svc, gw, tokens := newSessionUnderTest(t)
	authErr := &apierror.Error{Kind: apierror.KindAuth, Status: 401, Message: "Invalid credentials"}

	gw.EXPECT().Post(gomock.Any(), loginPath, testLogin, gomock.Any()).Return(authErr)

	user, err := svc.Login(context.Background(), testLogin)

	assert.Nil(t, user)
	assert.Same(t, authErr, err)
	assert.Nil(t, tokens.Credential(context.Background()))
}

func TestSession_Login_ProfileFailureKeepsSession(t *testing.T) {
	svc, gw, tokens := newSessionUnderTest(t)
	ctx := context.Background()
	embedded := models.UserProfile{ID: "u1", Email: "embedded@example.com"}

	gw.EXPECT().Post(gomock.Any(), loginPath, testLogin, gomock.Any()).
		DoAndReturn(respondAuth(models.AuthResponse{Token: "t1", UserID: "u1", User: &embedded}))
	gw.EXPECT().Get(gomock.Any(), profilePath, gomock.Any()).
		Return(&apierror.Error{Kind: apierror.KindServer, Status: 503, Message: "Maintenance"})

	user, err := svc.Login(ctx, testLogin)

	require.NoError(t, err)
	assert.Equal(t, &embedded, user)
	assert.True(t, svc.IsAuthenticated(ctx))
	assert.Equal(t, &embedded, tokens.Profile(ctx))
}

func TestSession_Login_ProfileFailureWithoutEmbeddedUser(t *testing.T) {
	svc, gw, _ := newSessionUnderTest(t)
	ctx := context.Background()

	gw.EXPECT().Post(gomock.Any(), loginPath, testLogin, gomock.Any()).
		DoAndReturn(respondAuth(models.AuthResponse{Token: "t1", UserID: "u1"}))
	gw.EXPECT().Get(gomock.Any(), profilePath, gomock.Any()).
		Return(apierror.Network(errors.New("dial")))

	user, err := svc.Login(ctx, testLogin)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, &models.UserProfile{ID: "u1"}, user)
	assert.True(t, svc.IsAuthenticated(ctx))
	assert.Nil(t, svc.CurrentUser(ctx), "a bare id is not cached")
}

func TestSession_Login_NoTokenIssued(t *testing.T) {
	svc, gw, tokens := newSessionUnderTest(t)

	gw.EXPECT().Post(gomock.Any(), loginPath, testLogin, gomock.Any()).
		DoAndReturn(respondAuth(models.AuthResponse{UserID: "u1"}))

	_, err := svc.Login(context.Background(), testLogin)

	require.ErrorIs(t, err, apierror.ErrUnknown)
	assert.Nil(t, tokens.Credential(context.Background()))
}

func TestSession_Login_CredentialWriteFailureIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)
	svc := NewClientSessionService(gw, tokens)

	gw.EXPECT().Post(gomock.Any(), loginPath, testLogin, gomock.Any()).
		DoAndReturn(respondAuth(models.AuthResponse{Token: "t1", UserID: "u1"}))
	tokens.EXPECT().SetCredential(gomock.Any(), models.Credential{AccessToken: "t1", UserID: "u1"}).
		Return(errors.New("database is locked"))

	_, err := svc.Login(context.Background(), testLogin)

	require.ErrorIs(t, err, apierror.ErrUnknown)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestSession_Register_PasswordMismatch(t *testing.T) {
	svc, _, _ := newSessionUnderTest(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:                "a@b.c",
		Password:             "pw",
		PasswordConfirmation: "other",
	})

	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindValidation, e.Kind)
	assert.Equal(t, "confirmPassword", e.Field)
	assert.Equal(t, CodeMismatch, e.Code)
}

func TestSession_Register_Success(t *testing.T) {
	svc, gw, _ := newSessionUnderTest(t)
	req := models.RegisterRequest{Email: "a@b.c", Password: "pw", FirstName: "Ann"}

	gw.EXPECT().Post(gomock.Any(), registerPath, req, gomock.Any()).
		DoAndReturn(respondAuth(models.AuthResponse{Token: "t2", UserID: "u2"}))
	gw.EXPECT().Get(gomock.Any(), profilePath, gomock.Any()).
		DoAndReturn(respondProfile(models.UserProfile{ID: "u2", Email: "a@b.c", FirstName: "Ann"}))

	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FirstName)
	assert.True(t, svc.IsAuthenticated(context.Background()))
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestSession_Logout_TwiceLeavesStoreEmpty(t *testing.T) {
	svc, gw, tokens := newSessionUnderTest(t)
	ctx := context.Background()
	require.NoError(t, tokens.SetCredential(ctx, models.Credential{AccessToken: "t1", UserID: "u1"}))
	require.NoError(t, tokens.SetProfile(ctx, testProfile))

	hooks := 0
	svc.OnLogout(func() { hooks++ })
	svc.OnLogout(nil)

	gw.EXPECT().Post(gomock.Any(), logoutPath, nil, nil).Return(nil).Times(1)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, tokens.Credential(ctx))
	assert.Nil(t, tokens.Profile(ctx))

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, tokens.Credential(ctx))
	assert.Nil(t, tokens.Profile(ctx))
	assert.Equal(t, 2, hooks)
}

func TestSession_Logout_RemoteFailureStillClears(t *testing.T) {
	svc, gw, tokens := newSessionUnderTest(t)
	ctx := context.Background()
	require.NoError(t, tokens.SetCredential(ctx, models.Credential{AccessToken: "t1", UserID: "u1"}))

	gw.EXPECT().Post(gomock.Any(), logoutPath, nil, nil).Return(apierror.Network(errors.New("offline")))

	assert.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestSession_Logout_ClearFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)
	svc := NewClientSessionService(gw, tokens)

	tokens.EXPECT().Credential(gomock.Any()).Return(nil)
	tokens.EXPECT().Clear(gomock.Any()).Return(errors.New("disk full"))

	assert.NoError(t, svc.Logout(context.Background()))
}

// ── Initialize ──────────────────────────────────────────────────────────────

func TestSession_Initialize(t *testing.T) {
	ctx := context.Background()
	cred := models.Credential{AccessToken: "t1", UserID: "u1"}

	t.Run("no credential", func(t *testing.T) {
		svc, _, _ := newSessionUnderTest(t)
		assert.Equal(t, models.SessionState{}, svc.Initialize(ctx))
	})

	t.Run("credential and profile", func(t *testing.T) {
		svc, _, tokens := newSessionUnderTest(t)
		require.NoError(t, tokens.SetCredential(ctx, cred))
		require.NoError(t, tokens.SetProfile(ctx, testProfile))

		state := svc.Initialize(ctx)
		assert.True(t, state.IsAuthenticated)
		assert.Equal(t, &testProfile, state.User)
	})

	t.Run("credential without profile is recovered", func(t *testing.T) {
		svc, gw, tokens := newSessionUnderTest(t)
		require.NoError(t, tokens.SetCredential(ctx, cred))
		gw.EXPECT().Get(gomock.Any(), profilePath, gomock.Any()).DoAndReturn(respondProfile(testProfile))

		state := svc.Initialize(ctx)
		assert.True(t, state.IsAuthenticated)
		assert.Equal(t, &testProfile, state.User)
		assert.Equal(t, &testProfile, tokens.Profile(ctx))
	})

	t.Run("revoked credential is cleared", func(t *testing.T) {
		svc, gw, tokens := newSessionUnderTest(t)
		require.NoError(t, tokens.SetCredential(ctx, cred))
		gw.EXPECT().Get(gomock.Any(), profilePath, gomock.Any()).
			Return(&apierror.Error{Kind: apierror.KindAuth, Status: 401, Message: "Token revoked"})

		assert.Equal(t, models.SessionState{}, svc.Initialize(ctx))
		assert.Nil(t, tokens.Credential(ctx))
	})

	t.Run("expired jwt is cleared without a request", func(t *testing.T) {
		svc, _, tokens := newSessionUnderTest(t)
		token, err := utils.GenerateJWTToken("pet-tracker", "u1", time.Hour, "secret")
		require.NoError(t, err)
		require.NoError(t, tokens.SetCredential(ctx, models.Credential{AccessToken: token, UserID: "u1"}))
		require.NoError(t, tokens.SetProfile(ctx, testProfile))
		svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		assert.Equal(t, models.SessionState{}, svc.Initialize(ctx))
		assert.Nil(t, tokens.Credential(ctx))
		assert.Nil(t, tokens.Profile(ctx))
	})
}

func TestSession_RefreshProfile_Error(t *testing.T) {
	svc, gw, tokens := newSessionUnderTest(t)
	ctx := context.Background()
	srvErr := &apierror.Error{Kind: apierror.KindServer, Status: 500, Message: "boom"}

	gw.EXPECT().Get(gomock.Any(), profilePath, gomock.Any()).Return(srvErr)

	p, err := svc.RefreshProfile(ctx)
	assert.Nil(t, p)
	assert.Same(t, srvErr, err)
	assert.Nil(t, tokens.Profile(ctx))
}
