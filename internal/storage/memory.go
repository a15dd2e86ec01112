package storage

import (
	"ticketo/internal/models"
)

// InMemoryStore holds the document in memory. It backs the "memory" store
// driver and doubles as the test store. Load returns a deep copy so callers
// can mutate their snapshot freely, mirroring the read-decode cycle of the
// durable stores.
type InMemoryStore struct {
	doc *models.Document
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// NewInMemoryStoreWith starts from a prepared document instead of the seed.
func NewInMemoryStoreWith(doc *models.Document) *InMemoryStore {
	return &InMemoryStore{doc: doc.Clone()}
}

func (s *InMemoryStore) Load() (*models.Document, error) {
	if s.doc == nil {
		s.doc = DefaultDocument()
	}
	return s.doc.Clone(), nil
}

func (s *InMemoryStore) Save(doc *models.Document) error {
	if err := validateDocument(doc); err != nil {
		return err
	}
	s.doc = doc.Clone()
	return nil
}
