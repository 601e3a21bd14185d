// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionListener receives a snapshot of the session view after every state
// update. The SIGNED_OUT notification doubles as the navigate-to-root signal.
type SessionListener func(view entity.SessionView)

// SessionUsecase is the single authority over identity state. Only this
// component mutates role, user and merchantProfile; every other component
// reads the view and issues commands.
//
// Login and Signup delegate to the identity backend and report only
// credential acceptance. They never set the role themselves: role becomes
// known through the asynchronous SIGNED_IN event and the profile resolve it
// triggers, so callers that need the resolved role must await the state
// change, not the command's return value.
type SessionUsecase interface {
	// Initialize performs the one-shot current-session restore. IsLoading
	// transitions to false exactly once, after this first resolution
	// attempt completes, whatever its outcome.
	Initialize(ctx context.Context)

	Signup(ctx context.Context, input SignupInput) error
	Login(ctx context.Context, input LoginInput) error
	Logout(ctx context.Context) error

	// RefreshProfile re-runs the profile resolve for the current session.
	// It is unfenced against the SIGNED_IN resolve: whichever finishes
	// last wins. Failures degrade silently.
	RefreshProfile(ctx context.Context)

	// CurrentView returns a copy of the session view.
	CurrentView() entity.SessionView

	// Decide evaluates the route policy for the screen against the
	// current view.
	Decide(screen policy.Screen) policy.Decision

	// Subscribe registers a listener notified after every state update.
	Subscribe(listener SessionListener)
}
