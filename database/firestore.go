package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements DocumentStore on Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get retrieves one document, mapping "not found" to a nil result.
func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", collection, id, err)
	}
	return snap.Data(), nil
}

// FindFieldIn runs an "in" query, truncating the value list to the
// Firestore limit.
func (s *FirestoreStore) FindFieldIn(ctx context.Context, collection, field string, values []string) ([]Document, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) > MaxInValues {
		values = values[:MaxInValues]
	}
	iter := s.client.Collection(collection).Where(field, "in", values).Documents(ctx)
	return collect(collection, iter)
}

// FindArrayContains runs an "array-contains" query.
func (s *FirestoreStore) FindArrayContains(ctx context.Context, collection, field, value string) ([]Document, error) {
	iter := s.client.Collection(collection).Where(field, "array-contains", value).Documents(ctx)
	return collect(collection, iter)
}

// Delete removes a document. Deleting an absent document is not an error.
func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func collect(collection string, iter *firestore.DocumentIterator) ([]Document, error) {
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}
