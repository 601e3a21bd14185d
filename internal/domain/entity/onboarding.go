// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/paulmach/orb"

// WizardStep identifies a state of the onboarding wizard state machine.
type WizardStep int

const (
	// StepShopBasics collects the shop name and categories.
	StepShopBasics WizardStep = 1
	// StepLocation collects the optional location, address and photo.
	StepLocation WizardStep = 2
	// StepContact collects contact and payment details and hosts Launch.
	StepContact WizardStep = 3
	// StepLaunching is the transient state while the Launch writes run.
	StepLaunching WizardStep = 4
	// StepDone is the terminal success state.
	StepDone WizardStep = 5
)

// String returns a human-readable name for the step.
func (s WizardStep) String() string {
	switch s {
	case StepShopBasics:
		return "step1"
	case StepLocation:
		return "step2"
	case StepContact:
		return "step3"
	case StepLaunching:
		return "launching"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// OnboardingForm is the ephemeral form state owned by the onboarding wizard.
// It is created on wizard mount and discarded on teardown or successful Launch.
type OnboardingForm struct {
	ShopName       string
	Categories     []string
	OtherCategory  string
	Location       *orb.Point // Nil until location assist succeeds.
	Address        string
	AddressDetails string
	Phone          string
	Email          string
	UPIID          string
	Photo          []byte // In-memory logo preview, uploaded only at Launch time.
	PhotoMIME      string
}

// FieldErrors carries per-field validation messages for the current step.
// Both step-1 gates are evaluated independently, so both may be set at once.
type FieldErrors struct {
	ShopName string `json:"shopName,omitempty"`
	Category string `json:"category,omitempty"`
}

// IsZero reports whether no field error is set.
func (e FieldErrors) IsZero() bool {
	return e == FieldErrors{}
}
