// Package assistant proxies support-screen conversations to an external
// assistant endpoint.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAssistantTimeout = 30 * time.Second

type httpAssistant struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the assistant client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAssistantClient creates the HTTP-backed assistant service.
func NewAssistantClient(params Params) service.AssistantService {
	endpoint := ""
	timeout := defaultAssistantTimeout
	if params.Config != nil && params.Config.Assistant != nil {
		endpoint = params.Config.Assistant.Endpoint
		if params.Config.Assistant.Timeout > 0 {
			timeout = params.Config.Assistant.Timeout
		}
	}

	return &httpAssistant{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}
}

type assistantRequest struct {
	Message string                     `json:"message"`
	History []service.AssistantMessage `json:"history,omitempty"`
}

type assistantResponse struct {
	Reply string `json:"reply"`
}

// Reply sends the message plus prior history and returns the reply text.
func (a *httpAssistant) Reply(ctx context.Context, message string, history []service.AssistantMessage) (string, error) {
	if a.endpoint == "" {
		return "", errors.New("assistant endpoint not configured")
	}

	body, err := json.Marshal(assistantRequest{
		Message: message,
		History: history,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "assistant request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("assistant endpoint returned status %d", resp.StatusCode)
	}

	var result assistantResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode assistant response")
	}

	if result.Reply == "" {
		return "", errors.New("assistant returned an empty reply")
	}

	a.logger.Debug("Assistant replied",
		slog.Int("historyLen", len(history)),
		slog.Int("replyLen", len(result.Reply)),
	)

	return result.Reply, nil
}
