package models

// Event is a ticketed occurrence in the catalog. Lat/Lng are optional map
// coordinates carried by the extended seed data.
type Event struct {
	ID          FlexID   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	City        string   `json:"city"`
	Venue       string   `json:"venue"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Promotion   bool     `json:"promotion,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// EventInput is the payload for catalog create and update. Numeric fields are
// flexible because admin forms submit them as strings; pointer fields make a
// merge-update distinguish "not sent" from "set to zero value".
type EventInput struct {
	ID          *FlexID    `json:"id"`
	Title       *string    `json:"title"`
	Category    *string    `json:"category"`
	City        *string    `json:"city"`
	Venue       *string    `json:"venue"`
	Date        *string    `json:"date"`
	Time        *string    `json:"time"`
	Price       *FlexFloat `json:"price"`
	Image       *string    `json:"image"`
	Description *string    `json:"description"`
	Promotion   *bool      `json:"promotion"`
	Lat         *FlexFloat `json:"lat"`
	Lng         *FlexFloat `json:"lng"`
}

// Promotion is a percentage discount code. The code itself is the id and is
// matched case-insensitively. Bookings never mutate promotions.
type Promotion struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Discount float64 `json:"discount"`
	Active   bool    `json:"active"`
}
