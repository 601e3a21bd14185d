package service

import (
	"context"
)

// SessionEvent is the payload published when identity state changes.
// Downstream services (analytics, notification fan-out) consume it from the
// message queue; publishing is best effort and never blocks state updates.
type SessionEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`           // "SIGNED_IN", "SIGNED_OUT" or "SHOP_LAUNCHED"
	UserID    string `json:"user_id"`
	Role      string `json:"role,omitempty"`
	ShopID    string `json:"shop_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSessionEvent publishes a session lifecycle event for async processing
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
