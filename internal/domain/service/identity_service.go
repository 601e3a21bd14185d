package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// AuthStateListener receives identity backend state change events.
// Events are delivered asynchronously but in order per listener.
type AuthStateListener func(event entity.AuthEvent)

// IdentityBackend is the collaborator contract the session store consumes.
// It issues sessions and emits SIGNED_IN / SIGNED_OUT events; it never
// resolves roles itself — role becomes known only through the profile
// resolver after the SIGNED_IN event.
type IdentityBackend interface {
	// SignUp registers a credential and immediately signs the user in.
	// The display name travels as metadata alongside the credential.
	SignUp(ctx context.Context, email, password, displayName string) error

	// SignInWithPassword verifies the credential and issues a session.
	// A SIGNED_IN event follows asynchronously on success.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut revokes the given session. A SIGNED_OUT event follows.
	SignOut(ctx context.Context, session *entity.Session) error

	// GetSession restores the current session from a persisted refresh
	// token, returning nil (and no error) when none exists.
	GetSession(ctx context.Context, refreshToken string) (*entity.Session, error)

	// OnAuthStateChange registers a listener for sign-in/sign-out events.
	OnAuthStateChange(listener AuthStateListener)
}
