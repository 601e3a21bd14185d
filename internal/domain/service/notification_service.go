package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendTopicNotification sends a push notification to a topic, e.g. the
	// per-merchant topic notified when a storefront goes live.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
