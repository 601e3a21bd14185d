package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// onboardingWizard is one user's wizard instance. Form state lives only in
// memory between Mount and Teardown; the wizard-scoped context cancels every
// in-flight assist when the wizard is torn down.
type onboardingWizard struct {
	userID uuid.UUID
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	step        entity.WizardStep
	form        entity.OnboardingForm
	fieldErrors entity.FieldErrors
}

func (w *onboardingWizard) snapshot() *usecase.WizardState {
	return &usecase.WizardState{
		Step:           w.step,
		Form:           w.form,
		FieldErrors:    w.fieldErrors,
		LocatedAddress: w.form.Address,
	}
}

// wizardManager implements the OnboardingUsecase interface, holding the
// per-user wizard instances.
type wizardManager struct {
	sessions  usecase.SessionUsecase
	txManager repository.TransactionManager
	storage   service.LogoStorage
	publisher service.EventPublisher
	notifier  service.NotificationService
	assist    *locationAssist
	logger    *slog.Logger

	mu      sync.RWMutex
	wizards map[uuid.UUID]*onboardingWizard
}

// WizardManagerParams holds dependencies for the wizard manager, injected by Fx.
type WizardManagerParams struct {
	fx.In

	Sessions  usecase.SessionUsecase
	TxManager repository.TransactionManager
	Storage   service.LogoStorage
	Publisher service.EventPublisher
	Notifier  service.NotificationService
	Locator   service.Geolocator
	Geocoder  service.ReverseGeocoder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewWizardManager is the constructor for wizardManager.
func NewWizardManager(params WizardManagerParams) usecase.OnboardingUsecase {
	return &wizardManager{
		sessions:  params.Sessions,
		txManager: params.TxManager,
		storage:   params.Storage,
		publisher: params.Publisher,
		notifier:  params.Notifier,
		assist:    newLocationAssist(params.Locator, params.Geocoder, params.Config, params.Logger),
		logger:    params.Logger,
		wizards:   make(map[uuid.UUID]*onboardingWizard),
	}
}

// Mount creates the wizard for the user. Mounting twice returns the existing
// instance unchanged, so a page reload does not wipe the form.
func (m *wizardManager) Mount(_ context.Context, userID uuid.UUID) (*usecase.WizardState, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrSessionRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if wizard, ok := m.wizards[userID]; ok {
		wizard.mu.Lock()
		defer wizard.mu.Unlock()

		return wizard.snapshot(), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	wizard := &onboardingWizard{
		userID: userID,
		ctx:    ctx,
		cancel: cancel,
		step:   entity.StepShopBasics,
	}
	m.wizards[userID] = wizard

	m.logger.Debug("Wizard mounted", slog.String("userID", userID.String()))

	return wizard.snapshot(), nil
}

// Teardown discards the wizard and cancels its context scope, so any
// in-flight location assist is dropped rather than applied.
func (m *wizardManager) Teardown(userID uuid.UUID) error {
	m.mu.Lock()
	wizard, ok := m.wizards[userID]
	if ok {
		delete(m.wizards, userID)
	}
	m.mu.Unlock()

	if !ok {
		return domainerrors.ErrWizardNotMounted
	}

	wizard.cancel()
	m.logger.Debug("Wizard torn down", slog.String("userID", userID.String()))

	return nil
}

func (m *wizardManager) wizard(userID uuid.UUID) (*onboardingWizard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wizard, ok := m.wizards[userID]
	if !ok {
		return nil, domainerrors.ErrWizardNotMounted
	}

	return wizard, nil
}

// State returns the current wizard snapshot.
func (m *wizardManager) State(userID uuid.UUID) (*usecase.WizardState, error) {
	wizard, err := m.wizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.mu.Lock()
	defer wizard.mu.Unlock()

	return wizard.snapshot(), nil
}

// UpdateForm applies partial form updates. Nil fields are left untouched.
func (m *wizardManager) UpdateForm(userID uuid.UUID, input usecase.UpdateFormInput) (*usecase.WizardState, error) {
	wizard, err := m.wizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.mu.Lock()
	defer wizard.mu.Unlock()

	if input.ShopName != nil {
		wizard.form.ShopName = *input.ShopName
	}
	if input.Categories != nil {
		wizard.form.Categories = input.Categories
	}
	if input.OtherCategory != nil {
		wizard.form.OtherCategory = *input.OtherCategory
	}
	if input.Address != nil {
		wizard.form.Address = *input.Address
	}
	if input.AddressDetails != nil {
		wizard.form.AddressDetails = *input.AddressDetails
	}
	if input.Phone != nil {
		wizard.form.Phone = *input.Phone
	}
	if input.Email != nil {
		wizard.form.Email = *input.Email
	}
	if input.UPIID != nil {
		wizard.form.UPIID = *input.UPIID
	}

	return wizard.snapshot(), nil
}

// NextStep advances the wizard. The step-1 gate evaluates the shop name and
// category checks independently, so both errors may be set at once; a failed
// gate keeps the step and is not an error. Step 2 to 3 is unconditional:
// location and photo are enrichments, not gates.
func (m *wizardManager) NextStep(userID uuid.UUID) (*usecase.WizardState, error) {
	wizard, err := m.wizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.mu.Lock()
	defer wizard.mu.Unlock()

	switch wizard.step {
	case entity.StepShopBasics:
		fieldErrors := validateShopBasics(wizard.form)
		wizard.fieldErrors = fieldErrors
		if fieldErrors.IsZero() {
			wizard.step = entity.StepLocation
		}

	case entity.StepLocation:
		wizard.fieldErrors = entity.FieldErrors{}
		wizard.step = entity.StepContact

	default:
		return nil, domainerrors.ErrWizardStepInvalid
	}

	return wizard.snapshot(), nil
}

// PrevStep moves the wizard one step back.
func (m *wizardManager) PrevStep(userID uuid.UUID) (*usecase.WizardState, error) {
	wizard, err := m.wizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.mu.Lock()
	defer wizard.mu.Unlock()

	switch wizard.step {
	case entity.StepLocation:
		wizard.step = entity.StepShopBasics
	case entity.StepContact:
		wizard.step = entity.StepLocation
	default:
		return nil, domainerrors.ErrWizardStepInvalid
	}

	return wizard.snapshot(), nil
}

// Locate runs the location assist under the wizard's own context scope, so a
// teardown while the lookup is in flight discards the result instead of
// writing stale address text.
func (m *wizardManager) Locate(_ context.Context, userID uuid.UUID) (*usecase.WizardState, error) {
	wizard, err := m.wizard(userID)
	if err != nil {
		return nil, err
	}

	point, address, err := m.assist.Acquire(wizard.ctx)
	if err != nil {
		return nil, err
	}

	wizard.mu.Lock()
	defer wizard.mu.Unlock()

	if wizard.ctx.Err() != nil {
		return nil, errors.WithStack(wizard.ctx.Err())
	}

	wizard.form.Location = &point
	wizard.form.Address = address

	return wizard.snapshot(), nil
}

// AttachPhoto stores the logo preview bytes in the form. Nothing is uploaded
// until Launch.
func (m *wizardManager) AttachPhoto(userID uuid.UUID, data []byte, contentType string) (*usecase.WizardState, error) {
	wizard, err := m.wizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.mu.Lock()
	defer wizard.mu.Unlock()

	wizard.form.Photo = data
	wizard.form.PhotoMIME = contentType

	return wizard.snapshot(), nil
}

// Launch runs the launch sequence from step 3:
//  1. Upload the logo bytes, when present. A failed upload is logged and the
//     launch continues without a logo.
//  2. Upsert the Shop row keyed by owner_id. Failure aborts with
//     LaunchFailed, no role change, wizard back on step 3.
//  3. Promote the stored role to merchant. Failure after a successful upsert
//     leaves a provisioned shop with an unpromoted role: the documented
//     LaunchRolePending outcome, surfaced but not rolled back.
//
// The two writes are deliberately separate transactions; collapsing them
// would erase the role-pending outcome that the rest of the system (route
// policy, session view) is built to tolerate.
func (m *wizardManager) Launch(ctx context.Context, userID uuid.UUID) (*usecase.LaunchResult, error) {
	wizard, err := m.wizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.mu.Lock()
	if wizard.step != entity.StepContact {
		wizard.mu.Unlock()

		return nil, domainerrors.ErrWizardStepInvalid
	}

	fieldErrors := validateShopBasics(wizard.form)
	if !fieldErrors.IsZero() {
		wizard.fieldErrors = fieldErrors
		wizard.mu.Unlock()

		return nil, domainerrors.ErrValidationFailed
	}

	wizard.step = entity.StepLaunching
	form := wizard.form
	wizard.mu.Unlock()

	shop := shopFromForm(userID, form)

	// 1. Upload the logo preview, if any. Non-fatal.
	if len(form.Photo) > 0 {
		logoURL, uploadErr := m.storage.StoreLogo(ctx, shop.ID, form.PhotoMIME, form.Photo)
		if uploadErr != nil {
			m.logger.Warn("Logo upload failed, launching without logo",
				slog.String("userID", userID.String()),
				slog.Any("error", uploadErr),
			)
		} else {
			shop.LogoURL = logoURL
		}
	}

	// 2. Upsert the shop row.
	err = m.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ShopRepo().Upsert(ctx, shop)
	})
	if err != nil {
		wizard.mu.Lock()
		wizard.step = entity.StepContact
		wizard.mu.Unlock()

		m.logger.Error("Shop upsert failed",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return &usecase.LaunchResult{Outcome: usecase.LaunchFailed},
			domainerrors.ErrShopUpsertFailed.WrapMessage(err.Error())
	}

	// 3. Promote the role.
	outcome := usecase.LaunchDone
	err = m.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().UpdateRole(ctx, userID, entity.RoleMerchant)
	})
	if err != nil {
		outcome = usecase.LaunchRolePending
		m.logger.Error("Role promotion failed after shop upsert",
			slog.String("userID", userID.String()),
			slog.String("shopID", shop.ID.String()),
			slog.Any("error", err),
		)
	}

	wizard.mu.Lock()
	wizard.step = entity.StepDone
	wizard.form = entity.OnboardingForm{}
	wizard.fieldErrors = entity.FieldErrors{}
	wizard.mu.Unlock()

	m.sessions.RefreshProfile(ctx)
	m.announceLaunch(userID, shop)

	return &usecase.LaunchResult{Outcome: outcome, Shop: shop}, nil
}

// announceLaunch publishes the launch event and notifies the merchant topic.
// Both are best effort and never affect the launch outcome.
func (m *wizardManager) announceLaunch(userID uuid.UUID, shop *entity.Shop) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if m.publisher != nil {
			event := &service.SessionEvent{
				EventType: constants.SessionEventShopLaunched,
				UserID:    userID.String(),
				Role:      entity.RoleMerchant.String(),
				ShopID:    shop.ID.String(),
			}
			if err := m.publisher.PublishSessionEvent(ctx, event); err != nil {
				m.logger.Warn("Failed to publish launch event", slog.Any("error", err))
			}
		}

		if m.notifier != nil {
			topic := "merchant-" + userID.String()
			err := m.notifier.SendTopicNotification(ctx, topic,
				"您的店鋪已上線", shop.Name+" 現在已開始營業",
				map[string]string{"shop_id": shop.ID.String()},
			)
			if err != nil {
				m.logger.Warn("Failed to send launch notification", slog.Any("error", err))
			}
		}
	}()
}

// validateShopBasics evaluates both step-1 gates independently so the
// snapshot can carry both field errors at once.
func validateShopBasics(form entity.OnboardingForm) entity.FieldErrors {
	fieldErrors := entity.FieldErrors{}
	if strings.TrimSpace(form.ShopName) == "" {
		fieldErrors.ShopName = domainerrors.ErrShopNameRequired.Message()
	}
	if len(form.Categories) == 0 {
		fieldErrors.Category = domainerrors.ErrCategoryRequired.Message()
	}

	return fieldErrors
}

// shopFromForm builds the storefront row written at launch time.
func shopFromForm(ownerID uuid.UUID, form entity.OnboardingForm) *entity.Shop {
	categories := make([]string, 0, len(form.Categories)+1)
	categories = append(categories, form.Categories...)
	if other := strings.TrimSpace(form.OtherCategory); other != "" {
		categories = append(categories, other)
	}

	address := strings.TrimSpace(form.Address)
	if details := strings.TrimSpace(form.AddressDetails); details != "" {
		if address != "" {
			address = details + ", " + address
		} else {
			address = details
		}
	}

	shop := &entity.Shop{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(form.ShopName),
		Categories: categories,
		Phone:      form.Phone,
		Email:      form.Email,
		UPIID:      form.UPIID,
		Address:    address,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if form.Location != nil {
		shop.Latitude = form.Location.Lat()
		shop.Longitude = form.Location.Lon()
	}

	return shop
}
