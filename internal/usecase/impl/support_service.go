package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supportService implements the SupportUsecase interface. It is a thin proxy
// around the assistant collaborator; each call is stateless aside from the
// client-supplied history.
type supportService struct {
	assistant service.AssistantService
	logger    *slog.Logger
}

// SupportServiceParams holds dependencies for the support service, injected by Fx.
type SupportServiceParams struct {
	fx.In

	Assistant service.AssistantService
	Logger    *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(params SupportServiceParams) usecase.SupportUsecase {
	return &supportService{
		assistant: params.Assistant,
		logger:    params.Logger,
	}
}

// Chat forwards the message and history to the assistant.
func (srv *supportService) Chat(ctx context.Context, message string, history []service.AssistantMessage) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("message is empty")
	}

	reply, err := srv.assistant.Reply(ctx, message, history)
	if err != nil {
		return "", errors.Wrap(err, "assistant reply failed")
	}

	return reply, nil
}
