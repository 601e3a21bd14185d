package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	mockUC "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wizardFixtures struct {
	sessions  *mockUC.MockSessionUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	shopRepo  *mockRepo.MockShopRepository
	storage   *mockSvc.MockLogoStorage
	publisher *mockSvc.MockEventPublisher
	notifier  *mockSvc.MockNotificationService
	locator   *mockSvc.MockGeolocator
	geocoder  *mockSvc.MockReverseGeocoder
}

func createTestManager(t *testing.T) (usecase.OnboardingUsecase, *wizardFixtures) {
	t.Helper()

	fixtures := &wizardFixtures{
		sessions:  mockUC.NewMockSessionUsecase(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		shopRepo:  mockRepo.NewMockShopRepository(t),
		storage:   mockSvc.NewMockLogoStorage(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		notifier:  mockSvc.NewMockNotificationService(t),
		locator:   mockSvc.NewMockGeolocator(t),
		geocoder:  mockSvc.NewMockReverseGeocoder(t),
	}

	fixtures.factory.EXPECT().UserRepo().Return(fixtures.userRepo).Maybe()
	fixtures.factory.EXPECT().ShopRepo().Return(fixtures.shopRepo).Maybe()
	fixtures.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fixtures.factory)
		}).Maybe()
	manager := NewWizardManager(WizardManagerParams{
		Sessions:  fixtures.sessions,
		TxManager: fixtures.txManager,
		Storage:   fixtures.storage,
		Publisher: fixtures.publisher,
		Notifier:  fixtures.notifier,
		Locator:   fixtures.locator,
		Geocoder:  fixtures.geocoder,
		Config: &config.Config{
			Geolocation: &config.GeolocationConfig{
				EnableHighAccuracy: true,
				TimeoutMs:          5000,
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return manager, fixtures
}

func strPtr(s string) *string {
	return &s
}

// expectAnnounce allows the asynchronous best-effort launch announcements
// without requiring them to land before the test finishes.
func expectAnnounce(fixtures *wizardFixtures) {
	fixtures.publisher.EXPECT().PublishSessionEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	fixtures.notifier.EXPECT().SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

// mountAtContact walks a fresh wizard to step 3 with a valid form.
func mountAtContact(t *testing.T, manager usecase.OnboardingUsecase, userID uuid.UUID) {
	t.Helper()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	_, err = manager.UpdateForm(userID, usecase.UpdateFormInput{
		ShopName:   strPtr("Apple Cart"),
		Categories: []string{"Fruits"},
		Phone:      strPtr("9876543210"),
		UPIID:      strPtr("applecart@upi"),
	})
	require.NoError(t, err)

	state, err := manager.NextStep(userID)
	require.NoError(t, err)
	require.Equal(t, entity.StepLocation, state.Step)

	state, err = manager.NextStep(userID)
	require.NoError(t, err)
	require.Equal(t, entity.StepContact, state.Step)
}

func TestWizardManager_Mount_RequiresUser(t *testing.T) {
	manager, _ := createTestManager(t)

	_, err := manager.Mount(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)
}

func TestWizardManager_Mount_TwicePreservesForm(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	_, err = manager.UpdateForm(userID, usecase.UpdateFormInput{ShopName: strPtr("Apple Cart")})
	require.NoError(t, err)

	state, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Apple Cart", state.Form.ShopName)
	assert.Equal(t, entity.StepShopBasics, state.Step)
}

func TestWizardManager_CommandsRequireMount(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()

	_, err := manager.State(userID)
	assert.ErrorIs(t, err, domainerrors.ErrWizardNotMounted)

	_, err = manager.NextStep(userID)
	assert.ErrorIs(t, err, domainerrors.ErrWizardNotMounted)

	assert.ErrorIs(t, manager.Teardown(userID), domainerrors.ErrWizardNotMounted)
}

func TestWizardManager_NextStep_ValidBasicsAdvances(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	_, err = manager.UpdateForm(userID, usecase.UpdateFormInput{
		ShopName:   strPtr("Apple Cart"),
		Categories: []string{"Fruits"},
	})
	require.NoError(t, err)

	state, err := manager.NextStep(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepLocation, state.Step)
	assert.True(t, state.FieldErrors.IsZero())
}

func TestWizardManager_NextStep_EmptyNameBlocksWithSingleError(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	_, err = manager.UpdateForm(userID, usecase.UpdateFormInput{
		ShopName:   strPtr(""),
		Categories: []string{"Fruits"},
	})
	require.NoError(t, err)

	state, err := manager.NextStep(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepShopBasics, state.Step)
	assert.NotEmpty(t, state.FieldErrors.ShopName)
	assert.Empty(t, state.FieldErrors.Category)
}

func TestWizardManager_NextStep_BothGatesEvaluatedIndependently(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	_, err = manager.UpdateForm(userID, usecase.UpdateFormInput{ShopName: strPtr("   ")})
	require.NoError(t, err)

	state, err := manager.NextStep(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepShopBasics, state.Step)
	assert.NotEmpty(t, state.FieldErrors.ShopName)
	assert.NotEmpty(t, state.FieldErrors.Category)
}

func TestWizardManager_Step2ToStep3_Unconditional(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)

	// Reached step 3 with neither location nor photo set.
	state, err := manager.State(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepContact, state.Step)
	assert.Nil(t, state.Form.Location)
	assert.Empty(t, state.Form.Photo)
}

func TestWizardManager_PrevStep(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)

	state, err := manager.PrevStep(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepLocation, state.Step)

	state, err = manager.PrevStep(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepShopBasics, state.Step)

	_, err = manager.PrevStep(userID)
	assert.ErrorIs(t, err, domainerrors.ErrWizardStepInvalid)
}

func TestWizardManager_Locate_ResolvesAddress(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	point := orb.Point{77.5946, 12.9716}
	fixtures.locator.EXPECT().CurrentPosition(mock.Anything, service.GeolocationOptions{
		EnableHighAccuracy: true,
		TimeoutMs:          5000,
	}).Return(point, nil)
	fixtures.geocoder.EXPECT().Lookup(mock.Anything, point).Return("MG Road, Bengaluru", nil)

	state, err := manager.Locate(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, state.Form.Location)
	assert.Equal(t, point, *state.Form.Location)
	assert.Equal(t, "MG Road, Bengaluru", state.Form.Address)
}

func TestWizardManager_Locate_GeocodeFailureFallsBackToRawCoordinates(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	point := orb.Point{77.5946, 12.9716}
	fixtures.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).Return(point, nil)
	fixtures.geocoder.EXPECT().Lookup(mock.Anything, point).Return("", errors.New("nominatim down"))

	state, err := manager.Locate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "12.971600, 77.594600", state.Form.Address)
	require.NotNil(t, state.Form.Location)
}

func TestWizardManager_Locate_GeolocationFailureLeavesLocationUnset(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	fixtures.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		Return(orb.Point{}, errors.New("permission denied"))

	_, err = manager.Locate(context.Background(), userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGeolocationFailed)

	state, stateErr := manager.State(userID)
	require.NoError(t, stateErr)
	assert.Nil(t, state.Form.Location)
	assert.Empty(t, state.Form.Address)
}

func TestWizardManager_Teardown_DiscardsInFlightLocate(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	point := orb.Point{77.5946, 12.9716}
	fixtures.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, _ service.GeolocationOptions) (orb.Point, error) {
			// Teardown fires while the position request is in flight.
			require.NoError(t, manager.Teardown(userID))

			return point, nil
		})
	fixtures.geocoder.EXPECT().Lookup(mock.Anything, point).Return("MG Road, Bengaluru", nil).Maybe()

	_, err = manager.Locate(context.Background(), userID)
	require.Error(t, err)

	// The wizard is gone and the stale result was never applied.
	_, err = manager.State(userID)
	assert.ErrorIs(t, err, domainerrors.ErrWizardNotMounted)
}

func TestWizardManager_AttachPhoto(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	state, err := manager.AttachPhoto(userID, []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), state.Form.Photo)
	assert.Equal(t, "image/png", state.Form.PhotoMIME)
}

func TestWizardManager_Launch_Success(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)
	expectAnnounce(fixtures)

	var written *entity.Shop
	fixtures.shopRepo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, shop *entity.Shop) error {
			written = shop

			return nil
		})
	fixtures.userRepo.EXPECT().UpdateRole(mock.Anything, userID, entity.RoleMerchant).Return(nil)
	fixtures.sessions.EXPECT().RefreshProfile(mock.Anything).Return()

	result, err := manager.Launch(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchDone, result.Outcome)
	require.NotNil(t, result.Shop)

	require.NotNil(t, written)
	assert.Equal(t, userID, written.OwnerID)
	assert.Equal(t, "Apple Cart", written.Name)
	assert.Equal(t, []string{"Fruits"}, written.Categories)
	assert.Empty(t, written.LogoURL)

	state, err := manager.State(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepDone, state.Step)
}

func TestWizardManager_Launch_UpsertFailure_NoRoleChange(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)

	fixtures.shopRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	// No UpdateRole expectation: the promotion must never be attempted.

	result, err := manager.Launch(context.Background(), userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopUpsertFailed)
	require.NotNil(t, result)
	assert.Equal(t, usecase.LaunchFailed, result.Outcome)

	// Failed is not a dead end: the wizard is back on step 3.
	state, stateErr := manager.State(userID)
	require.NoError(t, stateErr)
	assert.Equal(t, entity.StepContact, state.Step)
	assert.Equal(t, "Apple Cart", state.Form.ShopName)
}

func TestWizardManager_Launch_PromotionFailure_RolePending(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)
	expectAnnounce(fixtures)

	fixtures.shopRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	fixtures.userRepo.EXPECT().UpdateRole(mock.Anything, userID, entity.RoleMerchant).
		Return(errors.New("update failed"))
	fixtures.sessions.EXPECT().RefreshProfile(mock.Anything).Return()

	result, err := manager.Launch(context.Background(), userID)
	require.NoError(t, err)

	// Shop row written, role not promoted. Surfaced, not rolled back; the
	// wizard still reaches Done.
	assert.Equal(t, usecase.LaunchRolePending, result.Outcome)

	state, stateErr := manager.State(userID)
	require.NoError(t, stateErr)
	assert.Equal(t, entity.StepDone, state.Step)
}

func TestWizardManager_Launch_UploadsLogo(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)
	expectAnnounce(fixtures)

	_, err := manager.AttachPhoto(userID, []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	fixtures.storage.EXPECT().StoreLogo(mock.Anything, mock.Anything, "image/png", []byte("png-bytes")).
		Return("https://cdn.example.com/shops/x/logo.png", nil)

	var written *entity.Shop
	fixtures.shopRepo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, shop *entity.Shop) error {
			written = shop

			return nil
		})
	fixtures.userRepo.EXPECT().UpdateRole(mock.Anything, userID, entity.RoleMerchant).Return(nil)
	fixtures.sessions.EXPECT().RefreshProfile(mock.Anything).Return()

	result, err := manager.Launch(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchDone, result.Outcome)
	require.NotNil(t, written)
	assert.Equal(t, "https://cdn.example.com/shops/x/logo.png", written.LogoURL)
}

func TestWizardManager_Launch_LogoUploadFailureIsNonFatal(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)
	expectAnnounce(fixtures)

	_, err := manager.AttachPhoto(userID, []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	fixtures.storage.EXPECT().StoreLogo(mock.Anything, mock.Anything, "image/png", []byte("png-bytes")).
		Return("", errors.New("bucket unavailable"))

	var written *entity.Shop
	fixtures.shopRepo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, shop *entity.Shop) error {
			written = shop

			return nil
		})
	fixtures.userRepo.EXPECT().UpdateRole(mock.Anything, userID, entity.RoleMerchant).Return(nil)
	fixtures.sessions.EXPECT().RefreshProfile(mock.Anything).Return()

	result, err := manager.Launch(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchDone, result.Outcome)
	require.NotNil(t, written)
	assert.Empty(t, written.LogoURL)
}

func TestWizardManager_Launch_WrongStepRejected(t *testing.T) {
	manager, _ := createTestManager(t)
	userID := uuid.New()

	_, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)

	_, err = manager.Launch(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrWizardStepInvalid)
}

func TestWizardManager_Launch_AnnouncesToMerchantTopic(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()
	mountAtContact(t, manager, userID)

	fixtures.shopRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	fixtures.userRepo.EXPECT().UpdateRole(mock.Anything, userID, entity.RoleMerchant).Return(nil)
	fixtures.sessions.EXPECT().RefreshProfile(mock.Anything).Return()
	fixtures.publisher.EXPECT().PublishSessionEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	notified := make(chan string, 1)
	fixtures.notifier.EXPECT().SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, topic, _, _ string, _ map[string]string) error {
			notified <- topic

			return nil
		})

	_, err := manager.Launch(context.Background(), userID)
	require.NoError(t, err)

	select {
	case topic := <-notified:
		assert.Equal(t, "merchant-"+userID.String(), topic)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a launch notification")
	}
}

func TestWizardManager_Launch_TwiceKeepsOneShopRow(t *testing.T) {
	manager, fixtures := createTestManager(t)
	userID := uuid.New()
	expectAnnounce(fixtures)

	// Owner-keyed store mimicking the unique owner_id index: a second
	// upsert for the same owner overwrites the row and reports the
	// original id back, never creating a second row.
	rows := make(map[uuid.UUID]entity.Shop)
	fixtures.shopRepo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, shop *entity.Shop) error {
			if existing, ok := rows[shop.OwnerID]; ok {
				shop.ID = existing.ID
				shop.CreatedAt = existing.CreatedAt
			}
			rows[shop.OwnerID] = *shop

			return nil
		})
	fixtures.userRepo.EXPECT().UpdateRole(mock.Anything, userID, entity.RoleMerchant).Return(nil)
	fixtures.sessions.EXPECT().RefreshProfile(mock.Anything).Return()

	mountAtContact(t, manager, userID)
	first, err := manager.Launch(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, usecase.LaunchDone, first.Outcome)

	// The wizard parks at Done; a returning owner discards it, mounts a
	// fresh one and relaunches with identical form data.
	require.NoError(t, manager.Teardown(userID))
	mountAtContact(t, manager, userID)
	second, err := manager.Launch(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, usecase.LaunchDone, second.Outcome)

	assert.Len(t, rows, 1)
	stored, ok := rows[userID]
	require.True(t, ok)
	assert.Equal(t, first.Shop.ID, stored.ID)
	assert.Equal(t, first.Shop.ID, second.Shop.ID)
	assert.Equal(t, "Apple Cart", stored.Name)
	assert.Equal(t, []string{"Fruits"}, stored.Categories)
}
