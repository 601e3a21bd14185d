package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// backendFixtures holds all test dependencies for identity backend tests.
type backendFixtures struct {
	backend          *identityBackend
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestBackend(t *testing.T) backendFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	backend := &identityBackend{
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	t.Cleanup(backend.close)

	return backendFixtures{
		backend:          backend,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

// collectEvents registers a listener that forwards events to a channel.
func collectEvents(fx backendFixtures) <-chan entity.AuthEvent {
	events := make(chan entity.AuthEvent, 8)
	fx.backend.OnAuthStateChange(func(event entity.AuthEvent) {
		events <- event
	})

	return events
}

func waitForEvent(t *testing.T, events <-chan entity.AuthEvent) entity.AuthEvent {
	t.Helper()

	select {
	case event := <-events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for auth event")

		return entity.AuthEvent{}
	}
}

func TestIdentityBackend_SignIn_Success_EmitsSignedIn(t *testing.T) {
	fx := createTestBackend(t)
	ctx := context.Background()
	events := collectEvents(fx)

	userID := uuid.New()
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "owner@example.com", Role: entity.RoleUser}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	session, err := fx.backend.SignInWithPassword(ctx, "owner@example.com", "Password123!")

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)

	event := waitForEvent(t, events)
	assert.Equal(t, entity.AuthEventSignedIn, event.Type)
	require.NotNil(t, event.Session)
	assert.Equal(t, session.RefreshToken, event.Session.RefreshToken)
}

func TestIdentityBackend_SignIn_WrongPassword(t *testing.T) {
	fx := createTestBackend(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	session, err := fx.backend.SignInWithPassword(ctx, "owner@example.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityBackend_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestBackend(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.backend.SignInWithPassword(ctx, "nobody@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityBackend_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestBackend(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	err := fx.backend.SignUp(ctx, "taken@example.com", "Password123!", "Taken")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestIdentityBackend_SignUp_Success_SignsIn(t *testing.T) {
	fx := createTestBackend(t)
	ctx := context.Background()
	events := collectEvents(fx)

	fx.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)

	userID := uuid.New()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "new@example.com").
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	err := fx.backend.SignUp(ctx, "new@example.com", "Password123!", "Newcomer")

	require.NoError(t, err)

	event := waitForEvent(t, events)
	assert.Equal(t, entity.AuthEventSignedIn, event.Type)
	require.NotNil(t, event.Session)
	assert.Equal(t, userID, event.Session.UserID)
}

func TestIdentityBackend_SignOut_UnknownTokenStillSignsOut(t *testing.T) {
	fx := createTestBackend(t)
	ctx := context.Background()
	events := collectEvents(fx)

	fx.tokenService.EXPECT().HashToken("gone").Return("gone_hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "gone_hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.backend.SignOut(ctx, &entity.Session{UserID: uuid.New(), RefreshToken: "gone"})

	require.NoError(t, err)

	event := waitForEvent(t, events)
	assert.Equal(t, entity.AuthEventSignedOut, event.Type)
	assert.Nil(t, event.Session)
}

func TestIdentityBackend_GetSession_NoToken(t *testing.T) {
	fx := createTestBackend(t)

	session, err := fx.backend.GetSession(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestIdentityBackend_GetSession_InvalidTokenIsGuest(t *testing.T) {
	fx := createTestBackend(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, domainerrors.ErrRefreshTokenInvalid)

	session, err := fx.backend.GetSession(ctx, "garbage")

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestIdentityBackend_EventOrderPerListener(t *testing.T) {
	fx := createTestBackend(t)
	events := collectEvents(fx)

	fx.backend.emit(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: &entity.Session{}})
	fx.backend.emit(entity.AuthEvent{Type: entity.AuthEventSignedOut})

	first := waitForEvent(t, events)
	second := waitForEvent(t, events)
	assert.Equal(t, entity.AuthEventSignedIn, first.Type)
	assert.Equal(t, entity.AuthEventSignedOut, second.Type)
}
