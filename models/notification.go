package models

// Notification type discriminators, consumed by the mobile client for routing.
const (
	TypeReportCreated       = "REPORT_CREATED"
	TypeReportStatusChanged = "REPORT_STATUS_CHANGED"
	TypeReportSentToFirms   = "REPORT_SENT_TO_FIRMS"
	TypeFirmAppliedToReport = "FIRM_APPLIED_TO_REPORT"
	TypeFirmSelected        = "FIRM_SELECTED"
	TypeWorkerAssigned      = "WORKER_ASSIGNED"
	TypeWorkCancelled       = "WORK_CANCELLED"
	TypeWorkCompleted       = "WORK_COMPLETED"
	TypeAnnouncement        = "ANNOUNCEMENT"
	TypeWhitelistRequest    = "WHITELIST_REQUEST"
	TypeWhitelistApproved   = "WHITELIST_APPROVED"
	TypeWhitelistRejected   = "WHITELIST_REJECTED"
	TypeDebugPush           = "DEBUG_PUSH"
)

// PushMessage is one outbound notification: a display pair plus an opaque
// data map the client uses for routing. News marks announcement-category
// messages, which users can opt out of independently of the push master
// switch.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
	News  bool
}
