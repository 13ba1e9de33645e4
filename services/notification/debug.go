package notification

import (
	"context"
	"fmt"

	"unifix/models"
)

// SendDebugPush sends a test push to the user named by a debug queue
// document, then deletes the document. A failed send leaves the document in
// place so the failure stays visible.
func (e *Engine) SendDebugPush(ctx context.Context, ev models.ChangeEvent) error {
	debug, err := models.DecodeDebugPush(ev.After)
	if err != nil {
		return err
	}
	if debug == nil || debug.UserID == "" {
		return nil
	}

	title := debug.Title
	if title == "" {
		title = "Debug"
	}
	body := debug.Body
	if body == "" {
		body = "Debug push"
	}

	err = e.Dispatcher.SendToUser(ctx, debug.UserID, models.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type": models.TypeDebugPush,
		},
	})
	if err != nil {
		return err
	}

	if err := e.Store.Delete(ctx, models.CollectionDebugPushQueue, ev.ID); err != nil {
		return fmt.Errorf("debug push cleanup: %w", err)
	}
	return nil
}
