package notification

import (
	"context"
	"fmt"

	"unifix/models"
)

// NotifyAdminsOnReportCreated notifies every admin about a new report.
func (e *Engine) NotifyAdminsOnReportCreated(ctx context.Context, ev models.ChangeEvent) error {
	report, err := models.DecodeReport(ev.After)
	if err != nil {
		return err
	}
	if report == nil {
		return nil
	}

	admins, err := e.admins(ctx)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		return nil
	}

	msg := models.PushMessage{
		Title: "New report created",
		Body:  report.TitleOr("A new maintenance report was created"),
		Data: map[string]string{
			"type":     models.TypeReportCreated,
			"reportId": ev.ID,
		},
	}
	return e.fanOut(ctx, broadcast(admins, msg))
}

// NotifyCreatorOnStatusChanged notifies the report creator when the status
// value changes.
func (e *Engine) NotifyCreatorOnStatusChanged(ctx context.Context, ev models.ChangeEvent) error {
	before, err := models.DecodeReport(ev.Before)
	if err != nil {
		return err
	}
	after, err := models.DecodeReport(ev.After)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return nil
	}
	if !statusChanged(before, after) {
		return nil
	}

	creator := after.CreatorID()
	if creator == "" {
		return nil
	}

	return e.Dispatcher.SendToUser(ctx, creator, models.PushMessage{
		Title: "Report status updated",
		Body:  fmt.Sprintf("New status: %s", after.Status),
		Data: map[string]string{
			"type":     models.TypeReportStatusChanged,
			"reportId": ev.ID,
		},
	})
}

// NotifyFirmsOnReportSent notifies matching firms when a report is sent out.
// Each firm's owner gets a payload with an "open detail" routing hint; each
// worker gets one without it.
func (e *Engine) NotifyFirmsOnReportSent(ctx context.Context, ev models.ChangeEvent) error {
	before, err := models.DecodeReport(ev.Before)
	if err != nil {
		return err
	}
	after, err := models.DecodeReport(ev.After)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return nil
	}
	if !isSentToFirmsTransition(before, after) {
		return nil
	}
	if after.Category == "" {
		return nil
	}

	firms, err := e.Store.FindArrayContains(ctx, models.CollectionFirms, "categories", after.Category)
	if err != nil {
		return fmt.Errorf("firm category lookup: %w", err)
	}
	if len(firms) == 0 {
		return nil
	}

	body := after.TitleOr(fmt.Sprintf("Category: %s", after.Category))

	var deliveries []delivery
	for _, firmDoc := range firms {
		firm, err := models.DecodeFirm(firmDoc.Data)
		if err != nil {
			return fmt.Errorf("decode firm %s: %w", firmDoc.ID, err)
		}

		if firm.OwnerID != "" {
			deliveries = append(deliveries, delivery{
				userID: firm.OwnerID,
				msg: models.PushMessage{
					Title: "New report available",
					Body:  body,
					Data: map[string]string{
						"type":     models.TypeReportSentToFirms,
						"reportId": ev.ID,
						"firmId":   firmDoc.ID,
						"open":     "detail",
					},
				},
			})
		}

		for _, workerID := range firm.WorkerIDs {
			deliveries = append(deliveries, delivery{
				userID: workerID,
				msg: models.PushMessage{
					Title: "New job available",
					Body:  body,
					Data: map[string]string{
						"type":     models.TypeReportSentToFirms,
						"reportId": ev.ID,
						"firmId":   firmDoc.ID,
					},
				},
			})
		}
	}
	return e.fanOut(ctx, deliveries)
}

// NotifyFirmOnSelected notifies the owner of the firm whose application was
// selected. The selected application id is dereferenced to a firm id, then
// the firm to its owner; any missing hop ends resolution with no recipients.
func (e *Engine) NotifyFirmOnSelected(ctx context.Context, ev models.ChangeEvent) error {
	before, err := models.DecodeReport(ev.Before)
	if err != nil {
		return err
	}
	after, err := models.DecodeReport(ev.After)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return nil
	}
	if !selectionChanged(before, after) {
		return nil
	}

	appData, err := e.Store.Get(ctx, models.CollectionFirmApplications, after.SelectedApplicationID)
	if err != nil {
		return fmt.Errorf("selected application lookup: %w", err)
	}
	if appData == nil {
		return nil
	}
	application, err := models.DecodeFirmApplication(appData)
	if err != nil {
		return err
	}

	firmID := application.FirmID
	if firmID == "" {
		firmID = after.AssignedFirmID
	}
	if firmID == "" {
		return nil
	}

	firmData, err := e.Store.Get(ctx, models.CollectionFirms, firmID)
	if err != nil {
		return fmt.Errorf("selected firm lookup: %w", err)
	}
	if firmData == nil {
		return nil
	}
	firm, err := models.DecodeFirm(firmData)
	if err != nil {
		return err
	}
	if firm.OwnerID == "" {
		return nil
	}

	body := "Your firm was selected for a report"
	if after.Title != "" {
		body = fmt.Sprintf("Your firm was selected for %q", after.Title)
	}

	return e.Dispatcher.SendToUser(ctx, firm.OwnerID, models.PushMessage{
		Title: "Your firm was selected",
		Body:  body,
		Data: map[string]string{
			"type":     models.TypeFirmSelected,
			"reportId": ev.ID,
			"firmId":   firmID,
		},
	})
}

// NotifyWorkersOnAssigned notifies each worker newly added to the report's
// assigned worker list, one notification per added id.
func (e *Engine) NotifyWorkersOnAssigned(ctx context.Context, ev models.ChangeEvent) error {
	before, err := models.DecodeReport(ev.Before)
	if err != nil {
		return err
	}
	after, err := models.DecodeReport(ev.After)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return nil
	}

	added := newlyAssignedWorkers(before, after)
	if len(added) == 0 {
		return nil
	}

	body := "You were assigned to a new job"
	if after.Title != "" {
		body = fmt.Sprintf("You were assigned to %q", after.Title)
	}

	deliveries := make([]delivery, 0, len(added))
	for _, workerID := range added {
		deliveries = append(deliveries, delivery{
			userID: workerID,
			msg: models.PushMessage{
				Title: "New job assigned",
				Body:  body,
				Data: map[string]string{
					"type":     models.TypeWorkerAssigned,
					"reportId": ev.ID,
					"firmId":   after.AssignedFirmID,
				},
			},
		})
	}
	return e.fanOut(ctx, deliveries)
}

// NotifyAdminsOnWorkCancelled notifies admins when a cancellation timestamp
// first appears on the report.
func (e *Engine) NotifyAdminsOnWorkCancelled(ctx context.Context, ev models.ChangeEvent) error {
	before, err := models.DecodeReport(ev.Before)
	if err != nil {
		return err
	}
	after, err := models.DecodeReport(ev.After)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return nil
	}
	if !timestampEdge(before.CancelledAt, after.CancelledAt) {
		return nil
	}

	admins, err := e.admins(ctx)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		return nil
	}

	body := "A firm cancelled the work on a report"
	if after.Title != "" {
		body = fmt.Sprintf("Cancelled: %s", after.Title)
	}

	msg := models.PushMessage{
		Title: "Work cancelled by firm",
		Body:  body,
		Data: map[string]string{
			"type":     models.TypeWorkCancelled,
			"reportId": ev.ID,
			"firmId":   after.AssignedFirmID,
		},
	}
	return e.fanOut(ctx, broadcast(admins, msg))
}

// NotifyOnWorkCompleted notifies admins and the report creator when a
// completion timestamp first appears.
func (e *Engine) NotifyOnWorkCompleted(ctx context.Context, ev models.ChangeEvent) error {
	before, err := models.DecodeReport(ev.Before)
	if err != nil {
		return err
	}
	after, err := models.DecodeReport(ev.After)
	if err != nil {
		return err
	}
	if before == nil || after == nil {
		return nil
	}
	if !timestampEdge(before.CompletedAt, after.CompletedAt) {
		return nil
	}

	admins, err := e.admins(ctx)
	if err != nil {
		return err
	}

	data := map[string]string{
		"type":     models.TypeWorkCompleted,
		"reportId": ev.ID,
		"firmId":   after.AssignedFirmID,
	}

	adminBody := "A firm marked a job as completed"
	creatorBody := "Work on your report was completed"
	if after.Title != "" {
		adminBody = fmt.Sprintf("Completed: %s", after.Title)
		creatorBody = adminBody
	}

	deliveries := broadcast(admins, models.PushMessage{
		Title: "Work completed",
		Body:  adminBody,
		Data:  data,
	})

	if creator := after.CreatorID(); creator != "" {
		deliveries = append(deliveries, delivery{
			userID: creator,
			msg: models.PushMessage{
				Title: "Work completed",
				Body:  creatorBody,
				Data:  data,
			},
		})
	}
	return e.fanOut(ctx, deliveries)
}
