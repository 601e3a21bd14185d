// Package identity implements the credential backend that issues sessions
// and broadcasts auth state changes to subscribers.
package identity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventBuffer bounds the per-listener queue. Listeners receive events in
// emission order; a slow listener only delays itself.
const eventBuffer = 16

// identityBackend implements the service.IdentityBackend interface.
type identityBackend struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger

	mu        sync.RWMutex
	listeners []chan entity.AuthEvent
	closed    bool
}

// Params holds dependencies for the identity backend, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// New is the constructor for identityBackend.
func New(params Params) service.IdentityBackend {
	backend := &identityBackend{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			backend.close()

			return nil
		},
	})

	return backend
}

// OnAuthStateChange registers a listener for sign-in/sign-out events.
// Each listener gets its own queue and drain goroutine, so delivery is
// asynchronous but ordered per listener.
func (b *identityBackend) OnAuthStateChange(listener service.AuthStateListener) {
	ch := make(chan entity.AuthEvent, eventBuffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return
	}
	b.listeners = append(b.listeners, ch)
	b.mu.Unlock()

	go func() {
		for event := range ch {
			listener(event)
		}
	}()
}

// emit fans the event out to every registered listener queue.
func (b *identityBackend) emit(event entity.AuthEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, ch := range b.listeners {
		ch <- event
	}
}

func (b *identityBackend) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.listeners {
		close(ch)
	}
}

// SignUp orchestrates the complete registration process and signs the new
// user in. The issued session travels to subscribers via the SIGNED_IN event.
func (b *identityBackend) SignUp(ctx context.Context, email, password, displayName string) error {
	b.logger.Info("Starting registration", slog.String("email", email))

	if err := b.hasher.ValidatePasswordStrength(password); err != nil {
		b.logger.Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	// 1. Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := b.hasher.Hash(password)
	if err != nil {
		b.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during registration")
	}

	// 2. Create the user row and its credential atomically.
	var registeredUser *entity.User
	err = b.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser := &entity.User{
			DisplayName: displayName,
			Email:       email,
			Role:        entity.RoleUser,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		b.logger.Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute registration transaction")
	}

	// 3. Issue a session immediately. Registration doubles as the first sign-in.
	session, err := b.issueSession(ctx, registeredUser)
	if err != nil {
		return errors.Wrap(err, "failed to issue session after registration")
	}

	b.emit(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: session})
	b.logger.Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return nil
}

// SignInWithPassword verifies the email credential and issues a session.
func (b *identityBackend) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	b.logger.Debug("Starting sign-in", slog.String("email", email))

	authRecord, err := b.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			b.logger.Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !b.hasher.Check(password, authRecord.PasswordHash) {
		b.logger.Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	user, err := b.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for sign-in")
	}

	session, err := b.issueSession(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	b.emit(entity.AuthEvent{Type: entity.AuthEventSignedIn, Session: session})
	b.logger.Debug("User signed in", slog.Any("userID", user.ID))

	return session, nil
}

// SignOut revokes the session's refresh token and broadcasts SIGNED_OUT.
// A token that is already gone still counts as a successful sign-out.
func (b *identityBackend) SignOut(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return nil
	}
	b.logger.Info("Signing out", slog.Any("userID", session.UserID))

	tokenHash := b.tokenService.HashToken(session.RefreshToken)
	if err := b.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			b.logger.Error("Failed to delete refresh token", slog.Any("error", err))

			return errors.Wrap(err, "failed to delete refresh token")
		}
		b.logger.Warn("Sign-out with unknown refresh token", slog.Any("userID", session.UserID))
	}

	b.emit(entity.AuthEvent{Type: entity.AuthEventSignedOut})

	return nil
}

// GetSession restores a session from a persisted refresh token. A missing,
// expired, or malformed token yields a guest result, not an error.
func (b *identityBackend) GetSession(ctx context.Context, refreshToken string) (*entity.Session, error) {
	if refreshToken == "" {
		return nil, nil
	}

	claims, err := b.tokenService.ValidateToken(refreshToken)
	if err != nil {
		b.logger.Debug("Session restore with invalid token", slog.Any("error", err))

		return nil, nil
	}

	tokenHash := b.tokenService.HashToken(refreshToken)
	stored, err := b.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := b.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for session restore")
	}

	// Only a fresh access token is minted; the refresh token stays unchanged.
	accessToken, _, err := b.tokenService.GenerateTokens(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &entity.Session{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    stored.ExpiresAt,
	}, nil
}

// issueSession generates a token pair and persists the refresh token row.
func (b *identityBackend) issueSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	accessToken, refreshTokenString, err := b.tokenService.GenerateTokens(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	expiresAt := time.Now().Add(b.tokenService.GetRefreshTokenDuration())
	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: b.tokenService.HashToken(refreshTokenString),
		ExpiresAt: expiresAt,
	}
	if err := b.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.Session{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		ExpiresAt:    expiresAt,
	}, nil
}
