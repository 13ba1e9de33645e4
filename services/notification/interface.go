package notification

import (
	"context"
	"fmt"

	"unifix/database"
	"unifix/models"
	"unifix/push"

	"go.uber.org/zap"
)

// Dispatcher converts a resolved recipient and payload into zero or one
// outbound send. Recipients that cannot or should not receive the message
// (no such user, pushes disabled, no device token) are silently skipped.
type Dispatcher interface {
	SendToUser(ctx context.Context, userID string, msg models.PushMessage) error
	SendToToken(ctx context.Context, token string, msg models.PushMessage) error
}

// DefaultDispatcher is the production implementation.
type DefaultDispatcher struct {
	Store  database.DocumentStore
	Sender push.Sender
	Logger *zap.Logger
}

func NewDefaultDispatcher(store database.DocumentStore, sender push.Sender, logger *zap.Logger) (*DefaultDispatcher, error) {
	if store == nil || sender == nil {
		return nil, fmt.Errorf("dispatcher initialization error: store or sender is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDispatcher{Store: store, Sender: sender, Logger: logger}, nil
}

// SendToUser resolves a user id to a device token, applies the user's
// notification preferences, and sends. Every skip condition is a normal
// outcome, not an error.
func (d *DefaultDispatcher) SendToUser(ctx context.Context, userID string, msg models.PushMessage) error {
	if userID == "" {
		return nil
	}

	data, err := d.Store.Get(ctx, models.CollectionUsers, userID)
	if err != nil {
		return fmt.Errorf("SendToUser: could not fetch user %s: %w", userID, err)
	}
	if data == nil {
		return nil
	}

	user, err := models.DecodeUser(data)
	if err != nil {
		return fmt.Errorf("SendToUser: could not decode user %s: %w", userID, err)
	}

	if !user.PushEnabled() {
		d.Logger.Debug("push disabled, skipping", zap.String("userId", userID))
		return nil
	}
	if msg.News && !user.NewsEnabled() {
		d.Logger.Debug("news disabled, skipping", zap.String("userId", userID))
		return nil
	}
	if user.FCMToken == "" {
		d.Logger.Debug("no device token, skipping", zap.String("userId", userID))
		return nil
	}

	return d.SendToToken(ctx, user.FCMToken, msg)
}

// SendToToken sends to a raw device token with no user lookup or preference
// check.
func (d *DefaultDispatcher) SendToToken(ctx context.Context, token string, msg models.PushMessage) error {
	if token == "" {
		return nil
	}
	if err := d.Sender.Send(ctx, token, msg); err != nil {
		return fmt.Errorf("SendToToken: %w", err)
	}
	return nil
}
