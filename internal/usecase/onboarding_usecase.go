// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateFormInput carries partial form updates. Nil fields are left
// untouched, which lets each wizard screen submit only what it owns.
type UpdateFormInput struct {
	ShopName       *string
	Categories     []string
	OtherCategory  *string
	Address        *string
	AddressDetails *string
	Phone          *string
	Email          *string
	UPIID          *string
}

// WizardState is the snapshot returned to the delivery layer after every
// wizard command.
type WizardState struct {
	Step        entity.WizardStep
	Form        entity.OnboardingForm
	FieldErrors entity.FieldErrors
	// LocatedAddress mirrors Form.Address after a successful Locate; kept
	// separate so the client can distinguish assist results from typed input.
	LocatedAddress string
}

// LaunchOutcome names the three possible results of the Launch operation.
type LaunchOutcome string

const (
	// LaunchDone means both writes succeeded; the storefront is live.
	LaunchDone LaunchOutcome = "done"
	// LaunchRolePending means the shop row was written but the role
	// promotion failed. The storefront exists while the stored role is
	// still "user"; the wizard still reaches Done and the condition is
	// surfaced in the result rather than rolled back.
	LaunchRolePending LaunchOutcome = "role-pending"
	// LaunchFailed means the shop upsert failed. No role change was
	// attempted and the wizard returns to step 3.
	LaunchFailed LaunchOutcome = "failed"
)

// LaunchResult reports the outcome of a Launch invocation.
type LaunchResult struct {
	Outcome LaunchOutcome
	Shop    *entity.Shop // Set unless the launch failed outright.
}

// OnboardingUsecase manages per-user onboarding wizard instances.
// A wizard holds ephemeral form state between Mount and Teardown; teardown
// cancels the wizard's context scope, so an in-flight location assist is
// discarded instead of writing stale state.
type OnboardingUsecase interface {
	// Mount creates the wizard for the user, or returns the existing one.
	Mount(ctx context.Context, userID uuid.UUID) (*WizardState, error)

	// Teardown discards the wizard and cancels its context scope.
	Teardown(userID uuid.UUID) error

	// State returns the current wizard snapshot.
	State(userID uuid.UUID) (*WizardState, error)

	// UpdateForm applies partial form updates.
	UpdateForm(userID uuid.UUID, input UpdateFormInput) (*WizardState, error)

	// NextStep advances the wizard. The step-1 gate checks the trimmed
	// shop name and the category count independently, so both field
	// errors can be set at once; a gate violation leaves the step
	// unchanged and is not an error.
	NextStep(userID uuid.UUID) (*WizardState, error)

	// PrevStep moves the wizard one step back.
	PrevStep(userID uuid.UUID) (*WizardState, error)

	// Locate runs the location assist: one-shot geolocation, then a
	// best-effort reverse geocode with a "lat, lon" fallback.
	Locate(ctx context.Context, userID uuid.UUID) (*WizardState, error)

	// AttachPhoto stores the logo preview bytes in the form. Nothing is
	// uploaded until Launch.
	AttachPhoto(userID uuid.UUID, data []byte, contentType string) (*WizardState, error)

	// Launch runs the two-write launch from step 3.
	Launch(ctx context.Context, userID uuid.UUID) (*LaunchResult, error)
}
