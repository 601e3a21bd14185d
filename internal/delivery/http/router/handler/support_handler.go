package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupportHandler proxies the support-screen conversation.
type SupportHandler struct {
	support usecase.SupportUsecase
	logger  *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(support usecase.SupportUsecase, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		support: support,
		logger:  logger,
	}
}

// ChatMessageDTO is one prior turn of the conversation, supplied by the client.
type ChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest carries the new support message plus the conversation so far.
type ChatRequest struct {
	Message string           `json:"message" validate:"required"`
	History []ChatMessageDTO `json:"history" validate:"dive"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat forwards the message to the assistant and returns its reply.
func (h *SupportHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	history := make([]service.AssistantMessage, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, service.AssistantMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	reply, err := h.support.Chat(c.Request().Context(), req.Message, history)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ChatResponse{Reply: reply}, "Reply generated")
}
