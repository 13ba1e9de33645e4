package notification

import (
	"context"
	"fmt"

	"unifix/models"
)

// announcementBodyLimit caps the notification body; longer texts are cut and
// suffixed with an ellipsis.
const announcementBodyLimit = 120

// NotifyUsersOnAnnouncement broadcasts a new announcement to every
// regular-role user. The payload is news-flagged so the dispatcher honors
// each user's announcement opt-out on top of the push master switch.
func (e *Engine) NotifyUsersOnAnnouncement(ctx context.Context, ev models.ChangeEvent) error {
	announcement, err := models.DecodeAnnouncement(ev.After)
	if err != nil {
		return err
	}
	if announcement == nil {
		return nil
	}

	title := announcement.Title
	if title == "" {
		title = "New announcement"
	}

	level := announcement.Type
	if level == "" {
		level = "info"
	}

	users, err := e.Store.FindFieldIn(ctx, models.CollectionUsers, "role", announcementRoleVariants)
	if err != nil {
		return fmt.Errorf("announcement audience lookup: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	msg := models.PushMessage{
		Title: title,
		Body:  truncateBody(announcement.Text),
		News:  true,
		Data: map[string]string{
			"type":           models.TypeAnnouncement,
			"level":          level,
			"announcementId": ev.ID,
		},
	}
	return e.fanOut(ctx, broadcast(users, msg))
}

func truncateBody(text string) string {
	runes := []rune(text)
	if len(runes) <= announcementBodyLimit {
		return text
	}
	return string(runes[:announcementBodyLimit-3]) + "..."
}
