package notification

import (
	"context"
	"fmt"

	"unifix/models"
)

// NotifyAdminsOnWhitelistApplication notifies every admin about a new
// whitelist access request.
func (e *Engine) NotifyAdminsOnWhitelistApplication(ctx context.Context, ev models.ChangeEvent) error {
	application, err := models.DecodeWhitelistApplication(ev.After)
	if err != nil {
		return err
	}
	if application == nil {
		return nil
	}

	fullName := application.FullName
	if fullName == "" {
		fullName = "Unknown user"
	}
	email := application.Email
	if email == "" {
		email = "No email"
	}
	album := application.Album
	if album == "" {
		album = "-"
	}

	admins, err := e.admins(ctx)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		return nil
	}

	msg := models.PushMessage{
		Title: "New whitelist request",
		Body:  fmt.Sprintf("%s (%s) requested whitelist access", fullName, album),
		Data: map[string]string{
			"type":   models.TypeWhitelistRequest,
			"userId": ev.ID,
			"email":  email,
		},
	}
	return e.fanOut(ctx, broadcast(admins, msg))
}

// NotifyUserOnWhitelistApproved notifies the user when their application
// status first becomes approved.
func (e *Engine) NotifyUserOnWhitelistApproved(ctx context.Context, ev models.ChangeEvent) error {
	return e.notifyOnApplicationStatus(ctx, ev, "approved", models.PushMessage{
		Title: "Whitelist approved",
		Body:  "Your account has been approved. Welcome!",
		Data: map[string]string{
			"type": models.TypeWhitelistApproved,
		},
	})
}

// NotifyUserOnWhitelistRejected notifies the user when their application
// status first becomes rejected.
func (e *Engine) NotifyUserOnWhitelistRejected(ctx context.Context, ev models.ChangeEvent) error {
	return e.notifyOnApplicationStatus(ctx, ev, "rejected", models.PushMessage{
		Title: "Whitelist request rejected",
		Body:  "Unfortunately, your whitelist request was rejected.",
		Data: map[string]string{
			"type": models.TypeWhitelistRejected,
		},
	})
}

func (e *Engine) notifyOnApplicationStatus(ctx context.Context, ev models.ChangeEvent, terminal string, msg models.PushMessage) error {
	before, err := models.DecodeUser(ev.Before)
	if err != nil {
		return err
	}
	after, err := models.DecodeUser(ev.After)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return nil
	}
	if !terminalStatusEdge(before.ApplicationStatus, after.ApplicationStatus, terminal) {
		return nil
	}

	return e.Dispatcher.SendToUser(ctx, ev.ID, msg)
}
