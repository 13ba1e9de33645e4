package notification

import (
	"context"
	"fmt"

	"unifix/database"
	"unifix/models"

	"go.uber.org/zap"
)

// Engine resolves confirmed domain transitions to recipient sets and fans the
// resulting sends out through the Dispatcher. One method per trigger binding.
type Engine struct {
	Store      database.DocumentStore
	Dispatcher Dispatcher
	Logger     *zap.Logger
}

func NewEngine(store database.DocumentStore, dispatcher Dispatcher, logger *zap.Logger) (*Engine, error) {
	if store == nil || dispatcher == nil {
		return nil, fmt.Errorf("engine initialization error: store or dispatcher is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{Store: store, Dispatcher: dispatcher, Logger: logger}, nil
}

// delivery is one resolved recipient with its payload.
type delivery struct {
	userID string
	msg    models.PushMessage
}

// fanOut issues every delivery concurrently and waits for all of them.
// Individual failures are settled, joined, and returned together.
func (e *Engine) fanOut(ctx context.Context, deliveries []delivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	tasks := make([]task, len(deliveries))
	for i, d := range deliveries {
		d := d
		tasks[i] = task{
			name: fmt.Sprintf("send to user %s", d.userID),
			run: func(ctx context.Context) error {
				return e.Dispatcher.SendToUser(ctx, d.userID, d.msg)
			},
		}
	}
	return joinOutcomes(settleAll(ctx, tasks))
}

// admins looks up every user whose role matches an admin variant.
func (e *Engine) admins(ctx context.Context) ([]database.Document, error) {
	docs, err := e.Store.FindFieldIn(ctx, models.CollectionUsers, "role", adminRoleVariants)
	if err != nil {
		return nil, fmt.Errorf("admin audience lookup: %w", err)
	}
	return docs, nil
}

// broadcast builds one delivery per audience document.
func broadcast(audience []database.Document, msg models.PushMessage) []delivery {
	deliveries := make([]delivery, 0, len(audience))
	for _, doc := range audience {
		deliveries = append(deliveries, delivery{userID: doc.ID, msg: msg})
	}
	return deliveries
}

func (e *Engine) warnLookupFailed(what string, err error) {
	e.Logger.Warn("display data lookup failed, using fallback",
		zap.String("lookup", what), zap.Error(err))
}
