package database

import "context"

// MaxInValues is the underlying store's limit on literals in a field-in
// query. FindFieldIn truncates longer value lists.
const MaxInValues = 10

// Document is one stored document: its id plus the raw field map.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// DocumentStore defines the read operations the dispatch engine needs from
// the document store, plus the single delete used by the debug push queue.
// Absent documents and empty query results are normal outcomes, never errors.
type DocumentStore interface {
	// Get retrieves one document by collection and id. Returns nil data
	// (and nil error) when the document does not exist.
	Get(ctx context.Context, collection, id string) (map[string]interface{}, error)
	// FindFieldIn retrieves documents whose field equals any of the given
	// values (at most MaxInValues are used).
	FindFieldIn(ctx context.Context, collection, field string, values []string) ([]Document, error)
	// FindArrayContains retrieves documents whose array field contains the
	// given value.
	FindArrayContains(ctx context.Context, collection, field, value string) ([]Document, error)
	// Delete removes a document by collection and id.
	Delete(ctx context.Context, collection, id string) error
}
