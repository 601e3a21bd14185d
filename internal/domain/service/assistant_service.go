package service

import "context"

// AssistantMessage is one turn of the support conversation, supplied by the
// client; the endpoint itself is stateless per call.
type AssistantMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// AssistantService is the conversational assistant collaborator hosted by the
// Support screen. Not part of the session/onboarding core.
type AssistantService interface {
	// Reply sends the message plus prior history and returns the reply text.
	Reply(ctx context.Context, message string, history []AssistantMessage) (string, error)
}
