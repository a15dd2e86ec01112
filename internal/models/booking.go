package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a purchase of tickets against one event. Title, venue, time,
// image and date are denormalized snapshots so the record stays historically
// accurate if the event is later edited or deleted. Total is always computed
// server-side from the event price, never taken from the client.
type Booking struct {
	ID       string        `json:"id"`
	EventID  FlexID        `json:"eventId"`
	Title    string        `json:"title"`
	Venue    string        `json:"venue"`
	Time     string        `json:"time"`
	Image    string        `json:"image"`
	Date     string        `json:"date"`
	Tickets  int           `json:"tickets"`
	Total    float64       `json:"total"`
	Promo    *string       `json:"promo"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Status   BookingStatus `json:"status"`
	BookedAt time.Time     `json:"bookedAt"`
}

// BookingRequest is the POST /api/bookings payload. Tickets is untyped on
// purpose: clients send numbers, numeric strings, or nothing at all, and the
// pricing layer coerces whatever arrives into the 1..10 range.
type BookingRequest struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	EventID   FlexID      `json:"eventId"`
	Tickets   interface{} `json:"tickets"`
	PromoCode string      `json:"promoCode"`
}

// StatusUpdateRequest is the PUT /api/bookings/:id payload.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// BookingEvent is the message published to Kafka after a booking changes.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id"`
	Booking   *Booking  `json:"booking,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
