package database

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory DocumentStore used by tests and local runs.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]map[string]interface{})}
}

// Put inserts or replaces a document.
func (s *MemoryStore) Put(collection, id string, data map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	s.collections[collection][id] = data
}

// Get retrieves one document, nil when absent.
func (s *MemoryStore) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return data, nil
}

// FindFieldIn retrieves documents whose field equals any of the given values,
// honoring the MaxInValues truncation of the real store.
func (s *MemoryStore) FindFieldIn(ctx context.Context, collection, field string, values []string) ([]Document, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) > MaxInValues {
		values = values[:MaxInValues]
	}
	wanted := make(map[string]bool, len(values))
	for _, v := range values {
		wanted[v] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []Document
	for id, data := range s.collections[collection] {
		if v, ok := data[field].(string); ok && wanted[v] {
			docs = append(docs, Document{ID: id, Data: data})
		}
	}
	sortDocs(docs)
	return docs, nil
}

// FindArrayContains retrieves documents whose array field contains the value.
func (s *MemoryStore) FindArrayContains(ctx context.Context, collection, field, value string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []Document
	for id, data := range s.collections[collection] {
		if arrayHas(data[field], value) {
			docs = append(docs, Document{ID: id, Data: data})
		}
	}
	sortDocs(docs)
	return docs, nil
}

// Delete removes a document; deleting an absent document is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

// Has reports whether a document exists.
func (s *MemoryStore) Has(collection, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.collections[collection][id]
	return ok
}

func arrayHas(field interface{}, value string) bool {
	switch arr := field.(type) {
	case []string:
		for _, v := range arr {
			if v == value {
				return true
			}
		}
	case []interface{}:
		for _, v := range arr {
			if str, ok := v.(string); ok && str == value {
				return true
			}
		}
	}
	return false
}

func sortDocs(docs []Document) {
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
}
