package notification

import (
	"context"

	"unifix/models"

	"go.uber.org/zap"
)

// HandlerFunc handles one relayed change event.
type HandlerFunc func(ctx context.Context, ev models.ChangeEvent) error

type routeKey struct {
	collection string
	kind       models.ChangeKind
}

type binding struct {
	name string
	fn   HandlerFunc
}

// Router maps (collection, change kind) to the handlers bound to it. Every
// bound handler runs concurrently for a matching event; outcomes are settled
// per handler so one failure never aborts its siblings.
type Router struct {
	routes map[routeKey][]binding
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{routes: make(map[routeKey][]binding), logger: logger}
}

// Handle binds a named handler to a collection and change kind.
func (r *Router) Handle(collection string, kind models.ChangeKind, name string, fn HandlerFunc) {
	key := routeKey{collection: collection, kind: kind}
	r.routes[key] = append(r.routes[key], binding{name: name, fn: fn})
}

// Dispatch runs every handler bound to the event and returns the settled
// outcomes. An unbound event yields no outcomes.
func (r *Router) Dispatch(ctx context.Context, ev models.ChangeEvent) []Outcome {
	bindings := r.routes[routeKey{collection: ev.Collection, kind: ev.Kind}]
	if len(bindings) == 0 {
		r.logger.Debug("no handlers bound",
			zap.String("collection", ev.Collection), zap.String("kind", string(ev.Kind)))
		return nil
	}

	tasks := make([]task, len(bindings))
	for i, b := range bindings {
		b := b
		tasks[i] = task{name: b.name, run: func(ctx context.Context) error {
			return b.fn(ctx, ev)
		}}
	}

	outcomes := settleAll(ctx, tasks)
	for _, o := range outcomes {
		if o.Err != nil {
			r.logger.Error("handler failed",
				zap.String("handler", o.Name),
				zap.String("collection", ev.Collection),
				zap.String("documentId", ev.ID),
				zap.Error(o.Err))
		}
	}
	return outcomes
}

// NewDefaultRouter binds the engine's handlers to the collections they watch.
func NewDefaultRouter(e *Engine, logger *zap.Logger) *Router {
	r := NewRouter(logger)

	r.Handle(models.CollectionReports, models.ChangeCreated, "notifyAdminsOnReportCreated", e.NotifyAdminsOnReportCreated)
	r.Handle(models.CollectionReports, models.ChangeUpdated, "notifyCreatorOnStatusChanged", e.NotifyCreatorOnStatusChanged)
	r.Handle(models.CollectionReports, models.ChangeUpdated, "notifyFirmsOnReportSent", e.NotifyFirmsOnReportSent)
	r.Handle(models.CollectionReports, models.ChangeUpdated, "notifyFirmOnSelected", e.NotifyFirmOnSelected)
	r.Handle(models.CollectionReports, models.ChangeUpdated, "notifyWorkersOnAssigned", e.NotifyWorkersOnAssigned)
	r.Handle(models.CollectionReports, models.ChangeUpdated, "notifyAdminsOnWorkCancelled", e.NotifyAdminsOnWorkCancelled)
	r.Handle(models.CollectionReports, models.ChangeUpdated, "notifyOnWorkCompleted", e.NotifyOnWorkCompleted)

	r.Handle(models.CollectionFirmApplications, models.ChangeCreated, "notifyAdminsOnFirmApplication", e.NotifyAdminsOnFirmApplication)

	r.Handle(models.CollectionAnnouncements, models.ChangeCreated, "notifyUsersOnAnnouncement", e.NotifyUsersOnAnnouncement)

	r.Handle(models.CollectionWhitelistApplications, models.ChangeCreated, "notifyAdminsOnWhitelistApplication", e.NotifyAdminsOnWhitelistApplication)

	r.Handle(models.CollectionUsers, models.ChangeUpdated, "notifyUserOnWhitelistApproved", e.NotifyUserOnWhitelistApproved)
	r.Handle(models.CollectionUsers, models.ChangeUpdated, "notifyUserOnWhitelistRejected", e.NotifyUserOnWhitelistRejected)

	r.Handle(models.CollectionDebugPushQueue, models.ChangeCreated, "sendDebugPush", e.SendDebugPush)

	return r
}
