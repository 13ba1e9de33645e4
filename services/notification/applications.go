package notification

import (
	"context"
	"fmt"

	"unifix/models"
)

// NotifyAdminsOnFirmApplication notifies every admin about a new firm
// application. The related report title and firm name are looked up purely
// to enrich the body text; lookup failures degrade to fallbacks.
func (e *Engine) NotifyAdminsOnFirmApplication(ctx context.Context, ev models.ChangeEvent) error {
	application, err := models.DecodeFirmApplication(ev.After)
	if err != nil {
		return err
	}
	if application == nil {
		return nil
	}

	admins, err := e.admins(ctx)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		return nil
	}

	reportTitle := "A report"
	firmName := "A firm"

	if application.ReportID != "" {
		if data, err := e.Store.Get(ctx, models.CollectionReports, application.ReportID); err != nil {
			e.warnLookupFailed("report title", err)
		} else if report, err := models.DecodeReport(data); err != nil {
			e.warnLookupFailed("report title", err)
		} else if report != nil && report.Title != "" {
			reportTitle = report.Title
		}
	}

	if application.FirmID != "" {
		if data, err := e.Store.Get(ctx, models.CollectionFirms, application.FirmID); err != nil {
			e.warnLookupFailed("firm name", err)
		} else if firm, err := models.DecodeFirm(data); err != nil {
			e.warnLookupFailed("firm name", err)
		} else if firm != nil && firm.Name != "" {
			firmName = firm.Name
		}
	}

	msg := models.PushMessage{
		Title: "New firm application",
		Body:  fmt.Sprintf("%s applied for %q", firmName, reportTitle),
		Data: map[string]string{
			"type":          models.TypeFirmAppliedToReport,
			"applicationId": ev.ID,
			"reportId":      application.ReportID,
			"firmId":        application.FirmID,
		},
	}
	return e.fanOut(ctx, broadcast(admins, msg))
}
