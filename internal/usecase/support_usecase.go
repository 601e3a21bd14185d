// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/service"
)

// SupportUsecase hosts the support-screen conversation proxy. It sits outside
// the session/onboarding core and carries no state between calls.
type SupportUsecase interface {
	// Chat forwards the message and prior history to the assistant and
	// returns the reply text.
	Chat(ctx context.Context, message string, history []service.AssistantMessage) (string, error)
}
