package models

// ChangeKind tells whether a document was created or updated.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
)

// Collection names the engine reacts to or reads from.
const (
	CollectionUsers                 = "users"
	CollectionReports               = "reports"
	CollectionFirms                 = "firms"
	CollectionFirmApplications      = "firmApplications"
	CollectionAnnouncements         = "announcements"
	CollectionWhitelistApplications = "whitelistApplications"
	CollectionDebugPushQueue        = "debugPushQueue"
)

// ChangeEvent is one relayed document mutation. Before is nil for creation
// events; both snapshots are raw field maps until a handler decodes them.
type ChangeEvent struct {
	Collection string                 `json:"collection"`
	ID         string                 `json:"documentId"`
	Kind       ChangeKind             `json:"kind"`
	Before     map[string]interface{} `json:"before,omitempty"`
	After      map[string]interface{} `json:"after,omitempty"`
}
