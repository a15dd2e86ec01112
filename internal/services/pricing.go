package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"ticketo/internal/models"
)

const (
	MinTickets = 1
	MaxTickets = 10
)

// CoerceTickets turns whatever a client sent as the ticket count into an int
// in [MinTickets, MaxTickets]. Missing, zero or unparsable values become 1.
// Out-of-range counts are clamped, never rejected.
func CoerceTickets(v interface{}) int {
	n := 1.0
	switch t := v.(type) {
	case nil:
	case float64:
		n = t
	case int:
		n = float64(t)
	case json.Number:
		if parsed, err := t.Float64(); err == nil {
			n = parsed
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			n = parsed
		}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 1
	}

	q := int(math.Round(n))
	if q < MinTickets {
		q = MinTickets
	}
	if q > MaxTickets {
		q = MaxTickets
	}
	return q
}

// Price computes the subtotal and the promotion-discounted total for a
// booking. Pure: no I/O, no clock. The total is rounded to cents only when a
// discount actually applies, so an undiscounted total is exactly
// price * quantity.
func Price(event *models.Event, quantity int, promo *models.Promotion) (subtotal, total float64) {
	subtotal = event.Price * float64(quantity)
	total = subtotal
	if promo != nil && promo.Discount != 0 {
		total = round2(subtotal * (1 - promo.Discount/100))
	}
	return subtotal, total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
