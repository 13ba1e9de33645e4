package notification

import (
	"strings"
	"time"

	"unifix/models"
)

// Role variants treated as equivalent when matching audiences. Historical
// data is inconsistent about casing and spelling, so matching on a single
// spelling would partition users arbitrarily. The underlying "in" query
// accepts at most ten literals; the store truncates longer lists.
var (
	adminRoleVariants = []string{"admin", "Admin", "ADMIN"}

	announcementRoleVariants = []string{
		"user",
		"User",
		"usernau",
		"userNAU",
		"user_nau",
		"user nau",
	}
)

// normalizeStatus produces the canonical form of a status value.
func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// statusChanged reports a generic status transition: both values present and
// different.
func statusChanged(before, after *models.Report) bool {
	return before.Status != "" && after.Status != "" && before.Status != after.Status
}

// isSentToFirmsTransition decides whether the mutation represents the report
// being sent out to firms. Upstream writers are inconsistent about which of
// three redundant signals they set (status value, boolean flag, timestamp),
// so any one of them firing is sufficient.
func isSentToFirmsTransition(before, after *models.Report) bool {
	beforeStatus := normalizeStatus(before.Status)
	afterStatus := normalizeStatus(after.Status)

	statusTriggered := beforeStatus != afterStatus &&
		(afterStatus == "senttofirms" || afterStatus == "sent to firms")

	flagTriggered := !before.SentToFirms && after.SentToFirms

	timestampTriggered := before.SentToFirmsAt == nil && after.SentToFirmsAt != nil

	return statusTriggered || flagTriggered || timestampTriggered
}

// selectionChanged reports a transition to a newly selected application.
// Clearing the selection, or no prior selection appearing unchanged, does
// not notify.
func selectionChanged(before, after *models.Report) bool {
	return before.SelectedApplicationID != after.SelectedApplicationID &&
		after.SelectedApplicationID != ""
}

// newlyAssignedWorkers returns the worker ids present in the after list but
// not the before list, preserving after-list order. Absent or malformed
// lists read as empty.
func newlyAssignedWorkers(before, after *models.Report) []string {
	known := make(map[string]bool, len(before.AssignedWorkerIDs))
	for _, id := range before.AssignedWorkerIDs {
		known[id] = true
	}

	var added []string
	for _, id := range after.AssignedWorkerIDs {
		if !known[id] {
			added = append(added, id)
		}
	}
	return added
}

// timestampEdge fires only on the absent-to-present transition. Rewrites of
// an already-set timestamp are suppressed so redelivered or duplicated
// mutations produce a single notification.
func timestampEdge(before, after *time.Time) bool {
	return before == nil && after != nil
}

// terminalStatusEdge fires only when the value first reaches the terminal
// state, not on repeat writes of the same value.
func terminalStatusEdge(before, after, terminal string) bool {
	return before != terminal && after == terminal
}
