// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

// sessionStore implements the SessionUsecase interface. It is the single
// logical writer for identity state: all mutation happens under one mutex,
// and every other component observes the state through CurrentView or a
// subscription.
type sessionStore struct {
	backend   service.IdentityBackend
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger

	mu          sync.RWMutex
	view        entity.SessionView
	subscribers []usecase.SessionListener
}

// SessionStoreParams holds dependencies for the session store, injected by Fx.
type SessionStoreParams struct {
	fx.In

	Lc        fx.Lifecycle
	Backend   service.IdentityBackend
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSessionStore is the constructor for sessionStore. It subscribes to the
// identity backend's auth events and runs the initial session restore on
// application start.
func NewSessionStore(params SessionStoreParams) usecase.SessionUsecase {
	store := newSessionStore(params.Backend, params.TxManager, params.Publisher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store.Initialize(ctx)

			return nil
		},
	})

	return store
}

func newSessionStore(
	backend service.IdentityBackend,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) *sessionStore {
	store := &sessionStore{
		backend:   backend,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		view: entity.SessionView{
			Role:      entity.RoleGuest,
			IsLoading: true,
		},
	}

	backend.OnAuthStateChange(store.handleAuthEvent)

	return store
}

// Initialize performs the one-shot current-session restore. Whatever the
// outcome, IsLoading clears after this first attempt; screens gate on that
// before rendering protected content.
func (s *sessionStore) Initialize(ctx context.Context) {
	s.mu.RLock()
	refreshToken := ""
	if s.view.Session != nil {
		refreshToken = s.view.Session.RefreshToken
	}
	s.mu.RUnlock()

	session, err := s.backend.GetSession(ctx, refreshToken)
	if err != nil || session == nil {
		if err != nil {
			s.logger.Warn("Initial session fetch failed", slog.Any("error", err))
		}
		s.finishLoading()

		return
	}

	s.mu.Lock()
	s.view.Session = session
	s.mu.Unlock()

	s.resolveProfile(ctx, session.UserID)
}

// Signup registers the account. Success is followed by an asynchronous
// SIGNED_IN event; a rejection leaves state untouched.
func (s *sessionStore) Signup(ctx context.Context, input usecase.SignupInput) error {
	if err := s.backend.SignUp(ctx, input.Email, input.Password, input.Name); err != nil {
		return errors.Wrap(err, "signup rejected")
	}

	return nil
}

// Login verifies the credentials. The resolved role arrives through the
// SIGNED_IN event path, never through this return value.
func (s *sessionStore) Login(ctx context.Context, input usecase.LoginInput) error {
	if _, err := s.backend.SignInWithPassword(ctx, input.Email, input.Password); err != nil {
		return errors.Wrap(err, "login rejected")
	}

	return nil
}

// Logout revokes the current session. The SIGNED_OUT event clears the view.
func (s *sessionStore) Logout(ctx context.Context) error {
	s.mu.RLock()
	session := s.view.Session
	s.mu.RUnlock()

	if err := s.backend.SignOut(ctx, session); err != nil {
		return errors.Wrap(err, "logout failed")
	}

	return nil
}

// RefreshProfile re-resolves the profile for the current session. It is
// unfenced against the SIGNED_IN resolve; whichever write lands last wins.
func (s *sessionStore) RefreshProfile(ctx context.Context) {
	s.mu.RLock()
	session := s.view.Session
	s.mu.RUnlock()

	if session == nil {
		return
	}

	s.resolveProfile(ctx, session.UserID)
}

// CurrentView returns a copy of the session view.
func (s *sessionStore) CurrentView() entity.SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view
}

// Decide evaluates the route policy for the screen against the current view.
func (s *sessionStore) Decide(screen policy.Screen) policy.Decision {
	return policy.Decide(screen, policy.ViewOf(s.CurrentView()))
}

// Subscribe registers a listener notified after every state update.
func (s *sessionStore) Subscribe(listener usecase.SessionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, listener)
}

// handleAuthEvent consumes identity backend events. SIGNED_IN triggers the
// profile resolve; SIGNED_OUT clears every identity field within a single
// state update before subscribers are told to navigate to root.
func (s *sessionStore) handleAuthEvent(event entity.AuthEvent) {
	switch event.Type {
	case entity.AuthEventSignedIn:
		if event.Session == nil {
			s.logger.Warn("SIGNED_IN event without session, ignoring")

			return
		}

		s.mu.Lock()
		s.view.Session = event.Session
		s.mu.Unlock()

		s.publishEvent(constants.SessionEventSignedIn, event.Session.UserID, "")
		s.resolveProfile(context.Background(), event.Session.UserID)

	case entity.AuthEventSignedOut:
		s.mu.Lock()
		userID := uuid.Nil
		if s.view.Session != nil {
			userID = s.view.Session.UserID
		}
		s.view.Session = nil
		s.view.User = nil
		s.view.Role = entity.RoleGuest
		s.view.MerchantProfile = nil
		view := s.view
		s.mu.Unlock()

		s.notify(view)
		s.publishEvent(constants.SessionEventSignedOut, userID, "")

	default:
		s.logger.Warn("Unknown auth event type", slog.String("type", string(event.Type)))
	}
}

// resolveProfile fetches the profile row and, for merchants, the shop row.
// A profile fetch failure degrades silently: the state simply does not
// advance past whatever it already was, though IsLoading still clears. A
// shop fetch failure leaves the merchant in the merchant-pending state with
// no automatic retry.
//
// Resolves are deliberately unfenced. A SIGNED_IN resolve and a manual
// RefreshProfile may run concurrently and the last writer wins, even when it
// carries the staler row.
func (s *sessionStore) resolveProfile(ctx context.Context, userID uuid.UUID) {
	defer s.finishLoading()

	var user *entity.User
	var shop *entity.Shop

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		if user.Role != entity.RoleMerchant {
			return nil
		}

		foundShop, err := repoFactory.ShopRepo().FindByOwnerID(ctx, userID)
		if err != nil {
			// Merchant-pending: the role is known but no storefront row
			// loaded. Tolerated, not retried.
			if !errors.Is(err, repository.ErrShopNotFound) {
				s.logger.Warn("Shop fetch failed, merchant left pending",
					slog.String("userID", userID.String()),
					slog.Any("error", err),
				)
			}

			return nil
		}
		shop = foundShop

		return nil
	})

	if err != nil {
		s.logger.Warn("Profile resolution failed",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.mu.Lock()
	if s.view.Session == nil || s.view.Session.UserID != userID {
		// The session changed while we were resolving; drop the result.
		s.mu.Unlock()

		return
	}
	s.view.User = user
	s.view.Role = user.Role
	s.view.MerchantProfile = shop
	view := s.view
	s.mu.Unlock()

	s.notify(view)
}

// finishLoading flips IsLoading exactly once, after the first resolution
// attempt, and notifies subscribers of the transition.
func (s *sessionStore) finishLoading() {
	s.mu.Lock()
	if !s.view.IsLoading {
		s.mu.Unlock()

		return
	}
	s.view.IsLoading = false
	view := s.view
	s.mu.Unlock()

	s.notify(view)
}

// notify delivers the snapshot to subscribers outside the store's lock so a
// listener may read the store without deadlocking.
func (s *sessionStore) notify(view entity.SessionView) {
	s.mu.RLock()
	subscribers := make([]usecase.SessionListener, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()

	for _, listener := range subscribers {
		listener(view)
	}
}

// publishEvent forwards the lifecycle event to the message queue. Best
// effort: a publish failure is logged and never blocks a state transition.
func (s *sessionStore) publishEvent(eventType string, userID uuid.UUID, shopID string) {
	if s.publisher == nil {
		return
	}

	event := &service.SessionEvent{
		EventType: eventType,
		UserID:    userID.String(),
		ShopID:    shopID,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := s.publisher.PublishSessionEvent(ctx, event); err != nil {
			s.logger.Warn("Failed to publish session event",
				slog.String("eventType", eventType),
				slog.Any("error", err),
			)
		}
	}()
}
