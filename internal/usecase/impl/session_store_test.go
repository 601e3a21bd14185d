package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeFixtures struct {
	backend   *mockSvc.MockIdentityBackend
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	shopRepo  *mockRepo.MockShopRepository
	listener  service.AuthStateListener
}

// createTestStore builds a session store around mocks and captures the auth
// state listener so tests can fire backend events directly.
func createTestStore(t *testing.T) (*sessionStore, *storeFixtures) {
	t.Helper()

	fixtures := &storeFixtures{
		backend:   mockSvc.NewMockIdentityBackend(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		shopRepo:  mockRepo.NewMockShopRepository(t),
	}

	fixtures.backend.EXPECT().OnAuthStateChange(mock.Anything).Run(func(listener service.AuthStateListener) {
		fixtures.listener = listener
	}).Return()

	fixtures.factory.EXPECT().UserRepo().Return(fixtures.userRepo).Maybe()
	fixtures.factory.EXPECT().ShopRepo().Return(fixtures.shopRepo).Maybe()
	fixtures.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fixtures.factory)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newSessionStore(fixtures.backend, fixtures.txManager, nil, logger)
	require.NotNil(t, fixtures.listener)

	return store, fixtures
}

func testSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		UserID:       userID,
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func TestSessionStore_Initialize_NoSession_IsGuest(t *testing.T) {
	store, fixtures := createTestStore(t)
	fixtures.backend.EXPECT().GetSession(mock.Anything, "").Return(nil, nil)

	store.Initialize(context.Background())

	view := store.CurrentView()
	assert.False(t, view.IsLoading)
	assert.True(t, view.IsGuest())
	assert.Equal(t, entity.RoleGuest, view.Role)
}

func TestSessionStore_Initialize_FetchError_StillClearsLoadingOnce(t *testing.T) {
	store, fixtures := createTestStore(t)
	fixtures.backend.EXPECT().GetSession(mock.Anything, "").Return(nil, errors.New("backend down"))

	transitions := 0
	store.Subscribe(func(view entity.SessionView) {
		if !view.IsLoading {
			transitions++
		}
	})

	store.Initialize(context.Background())
	store.Initialize(context.Background())

	view := store.CurrentView()
	assert.False(t, view.IsLoading)
	assert.True(t, view.IsGuest())
	// IsLoading transitions true to false exactly once; the second attempt
	// must not re-notify.
	assert.Equal(t, 1, transitions)
}

func TestSessionStore_SignedIn_ResolvesShopperProfile(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:          userID,
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Role:        entity.RoleUser,
	}, nil)

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})

	view := store.CurrentView()
	assert.True(t, view.IsLoggedIn())
	assert.Equal(t, entity.RoleUser, view.Role)
	require.NotNil(t, view.User)
	assert.Equal(t, "Asha", view.User.DisplayName)
	assert.Nil(t, view.MerchantProfile)
	assert.Equal(t, entity.EffectiveUser, view.EffectiveRole())
}

func TestSessionStore_SignedIn_MerchantWithShop(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleMerchant,
	}, nil)
	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, userID).Return(&entity.Shop{
		ID:      uuid.New(),
		OwnerID: userID,
		Name:    "Apple Cart",
	}, nil)

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})

	view := store.CurrentView()
	assert.Equal(t, entity.RoleMerchant, view.Role)
	require.NotNil(t, view.MerchantProfile)
	assert.Equal(t, entity.EffectiveMerchantActive, view.EffectiveRole())
}

func TestSessionStore_SignedIn_ShopFetchFails_MerchantPending(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleMerchant,
	}, nil)
	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, userID).Return(nil, errors.New("db timeout"))

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})

	// The role is known but no storefront loaded: merchant-pending, no retry.
	view := store.CurrentView()
	assert.Equal(t, entity.RoleMerchant, view.Role)
	assert.Nil(t, view.MerchantProfile)
	assert.Equal(t, entity.EffectiveMerchantPending, view.EffectiveRole())
}

func TestSessionStore_ProfileFetchFails_SilentDegrade(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})

	// State does not advance past what it was; loading still clears.
	view := store.CurrentView()
	assert.False(t, view.IsLoading)
	assert.True(t, view.IsLoggedIn())
	assert.Nil(t, view.User)
	assert.Equal(t, entity.RoleGuest, view.Role)
}

func TestSessionStore_SignedOut_ClearsEverythingSynchronously(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleMerchant,
	}, nil)
	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, userID).Return(&entity.Shop{OwnerID: userID}, nil)

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})
	require.True(t, store.CurrentView().IsMerchant())

	var notified *entity.SessionView
	store.Subscribe(func(view entity.SessionView) {
		notified = &view
	})

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedOut})

	view := store.CurrentView()
	assert.True(t, view.IsGuest())
	assert.Nil(t, view.User)
	assert.Equal(t, entity.RoleGuest, view.Role)
	assert.Nil(t, view.MerchantProfile)

	// Subscribers saw the cleared state in a single update, never a
	// half-cleared one. That notification doubles as the navigate-to-root
	// signal.
	require.NotNil(t, notified)
	assert.True(t, notified.IsGuest())
	assert.Nil(t, notified.User)
	assert.Nil(t, notified.MerchantProfile)
}

func TestSessionStore_RefreshProfile_LastWriterWins(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleUser,
	}, nil).Once()

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})
	require.Equal(t, entity.RoleUser, store.CurrentView().Role)

	// A later manual refresh observes the promoted role and overwrites the
	// earlier resolve's result. Resolves are unfenced: last writer wins.
	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleMerchant,
	}, nil).Once()
	fixtures.shopRepo.EXPECT().FindByOwnerID(mock.Anything, userID).Return(&entity.Shop{OwnerID: userID}, nil)

	store.RefreshProfile(context.Background())

	view := store.CurrentView()
	assert.Equal(t, entity.RoleMerchant, view.Role)
	assert.NotNil(t, view.MerchantProfile)
}

func TestSessionStore_RefreshProfile_NoSession_NoOp(t *testing.T) {
	store, _ := createTestStore(t)

	store.RefreshProfile(context.Background())

	assert.True(t, store.CurrentView().IsGuest())
}

func TestSessionStore_StaleResolveAfterSignOut_Discarded(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()

	// The resolve starts, the user signs out mid-flight, then the resolve
	// lands. The result must not resurrect the signed-out user.
	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).RunAndReturn(
		func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedOut})

			return &entity.User{ID: id, Role: entity.RoleUser}, nil
		})

	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})

	view := store.CurrentView()
	assert.True(t, view.IsGuest())
	assert.Nil(t, view.User)
}

func TestSessionStore_Login_RejectionLeavesStateUntouched(t *testing.T) {
	store, fixtures := createTestStore(t)

	fixtures.backend.EXPECT().SignInWithPassword(mock.Anything, "asha@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	err := store.Login(context.Background(), usecase.LoginInput{Email: "asha@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	view := store.CurrentView()
	assert.True(t, view.IsGuest())
	assert.True(t, view.IsLoading)
}

func TestSessionStore_Signup_DelegatesToBackend(t *testing.T) {
	store, fixtures := createTestStore(t)

	fixtures.backend.EXPECT().SignUp(mock.Anything, "asha@example.com", "Secret#123", "Asha").Return(nil)

	err := store.Signup(context.Background(), usecase.SignupInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "Secret#123",
	})
	assert.NoError(t, err)

	// The command itself never sets the role; that arrives via SIGNED_IN.
	assert.Equal(t, entity.RoleGuest, store.CurrentView().Role)
}

func TestSessionStore_Logout_RevokesCurrentSession(t *testing.T) {
	store, fixtures := createTestStore(t)
	userID := uuid.New()
	session := testSession(userID)

	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleUser,
	}, nil)
	fixtures.listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: session})

	fixtures.backend.EXPECT().SignOut(mock.Anything, session).Return(nil)

	assert.NoError(t, store.Logout(context.Background()))
}

func TestSessionStore_Decide_GuestDashboardRedirectsToOnboarding(t *testing.T) {
	store, fixtures := createTestStore(t)
	fixtures.backend.EXPECT().GetSession(mock.Anything, "").Return(nil, nil)
	store.Initialize(context.Background())

	decision := store.Decide(policy.ScreenDashboard)

	assert.Equal(t, policy.ActionRedirect, decision.Action)
	assert.Equal(t, policy.ScreenOnboarding, decision.Target)
}

func TestSessionStore_PublishesSignInEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	backend := mockSvc.NewMockIdentityBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	var listener service.AuthStateListener
	backend.EXPECT().OnAuthStateChange(mock.Anything).Run(func(cb service.AuthStateListener) {
		listener = cb
	}).Return()

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	userID := uuid.New()
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

	published := make(chan *service.SessionEvent, 1)
	publisher.EXPECT().PublishSessionEvent(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, event *service.SessionEvent) error {
			published <- event

			return nil
		})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newSessionStore(backend, txManager, publisher, logger)
	require.NotNil(t, store)

	listener(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: testSession(userID)})

	select {
	case event := <-published:
		assert.Equal(t, "SIGNED_IN", event.EventType)
		assert.Equal(t, userID.String(), event.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a published sign-in event")
	}
}
