// Package notification implements push delivery through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// Params holds dependencies for the notification service, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates the FCM-backed notification service.
// Firebase is optional: without config the service is absent and launch
// announcements are skipped.
func NewFirebaseService(params Params) (service.NotificationService, error) {
	if params.Config == nil || params.Config.Firebase == nil {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return nil, nil
	}

	opt := option.WithCredentialsFile(params.Config.Firebase.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID: params.Config.Firebase.ProjectID,
	}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: params.Logger,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.Debug("Notification sent", slog.String("messageId", messageID))

	return nil
}

// SendTopicNotification sends a push notification to every device subscribed
// to the topic. Used for storefront launch announcements.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send topic notification")
	}

	s.logger.Debug("Topic notification sent",
		slog.String("topic", topic),
		slog.String("messageId", messageID),
	)

	return nil
}
