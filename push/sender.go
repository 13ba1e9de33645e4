package push

import (
	"context"
	"fmt"

	"unifix/models"

	"firebase.google.com/go/v4/messaging"
)

// Sender delivers one notification to one device token.
type Sender interface {
	Send(ctx context.Context, token string, msg models.PushMessage) error
}

// FCMSender implements Sender on Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender wraps an initialized Messaging client.
func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

// Send issues one FCM message. Both delivery channels get fixed high-priority
// hints so the transport does not silently deprioritize the payload.
func (s *FCMSender) Send(ctx context.Context, token string, msg models.PushMessage) error {
	fcmMsg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
		},
	}

	if _, err := s.client.Send(ctx, fcmMsg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
