package storage

import (
	"sync"

	"ticketo/internal/models"
)

// SingleWriter serializes every load-mutate-save cycle against one Store.
// Stores themselves do not lock, so without this two concurrent bookings
// could both load the same snapshot and the second save would silently drop
// the first booking. All services go through the same SingleWriter.
type SingleWriter struct {
	mu    sync.Mutex
	store Store
}

func NewSingleWriter(store Store) *SingleWriter {
	return &SingleWriter{store: store}
}

// View runs fn on a loaded snapshot without saving. Mutations fn makes are
// discarded.
func (w *SingleWriter) View(fn func(doc *models.Document) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, err := w.store.Load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn on a loaded snapshot and saves the result. If fn returns an
// error nothing is saved, so a failed operation leaves no partial state
// behind.
func (w *SingleWriter) Update(fn func(doc *models.Document) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, err := w.store.Load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return w.store.Save(doc)
}
