package storage

import (
	"fmt"

	"ticketo/internal/models"
)

// validateDocument rejects malformed persisted data at the store boundary so
// the pricing path never has to coerce bad numbers at call time.
func validateDocument(doc *models.Document) error {
	for i, ev := range doc.Events {
		if ev.ID == "" {
			return fmt.Errorf("events[%d] has an empty id", i)
		}
		if ev.Price < 0 {
			return fmt.Errorf("event %s has negative price %v", ev.ID, ev.Price)
		}
	}
	for i, promo := range doc.Promotions {
		if promo.ID == "" {
			return fmt.Errorf("promotions[%d] has an empty id", i)
		}
		if promo.Discount < 0 || promo.Discount > 100 {
			return fmt.Errorf("promotion %s has discount %v outside 0-100", promo.ID, promo.Discount)
		}
	}
	for i, b := range doc.Bookings {
		if b.ID == "" {
			return fmt.Errorf("bookings[%d] has an empty id", i)
		}
		if b.Total < 0 {
			return fmt.Errorf("booking %s has negative total %v", b.ID, b.Total)
		}
	}
	return nil
}
