package storage

import (
	"errors"

	"ticketo/internal/models"
)

// Store persists the whole document as one unit. After Save returns, a
// subsequent Load observes either the fully-old or fully-new document, never
// a mix, even across a crash mid-write.
//
// Stores do no locking of their own: callers serialize load-mutate-save
// cycles through SingleWriter.
type Store interface {
	Load() (*models.Document, error)
	Save(doc *models.Document) error
}

// ErrCorrupt marks persisted state that exists but cannot be decoded. Loads
// never silently reset corrupt state; the operator has to intervene.
var ErrCorrupt = errors.New("stored document is corrupt")

func float64Ptr(f float64) *float64 { return &f }

// DefaultDocument is the seed written on first run, before any request is
// served.
func DefaultDocument() *models.Document {
	return &models.Document{
		Events: []models.Event{
			{
				ID:          "1",
				Title:       "Abdul Majeed Abdullah Concert",
				Category:    "Concerts",
				City:        "Riyadh",
				Venue:       "Riyadh Boulevard",
				Date:        "2025-11-15",
				Time:        "20:00",
				Price:       350,
				Image:       "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?w=800&h=600&fit=crop",
				Description: "Legendary evening at Riyadh Boulevard.",
				Promotion:   true,
				Lat:         float64Ptr(24.7465),
				Lng:         float64Ptr(46.6653),
			},
			{
				ID:          "2",
				Title:       "The Godfather - Classic Cinema",
				Category:    "Movies",
				City:        "Jeddah",
				Venue:       "VOX Cinemas Red Sea Mall",
				Date:        "2025-10-20",
				Time:        "19:30",
				Price:       45,
				Image:       "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800&h=600&fit=crop",
				Description: "Timeless masterpiece on big screen.",
				Lat:         float64Ptr(21.5505),
				Lng:         float64Ptr(39.1505),
			},
			{
				ID:          "3",
				Title:       "Al Nassr vs Al Ittihad",
				Category:    "Sports",
				City:        "Riyadh",
				Venue:       "King Fahd International Stadium",
				Date:        "2025-10-25",
				Time:        "18:00",
				Price:       150,
				Image:       "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800&h=600&fit=crop",
				Description: "Epic clash between Al Nassr and Al Ittihad.",
				Promotion:   true,
				Lat:         float64Ptr(24.6895),
				Lng:         float64Ptr(46.6908),
			},
			{
				ID:          "4",
				Title:       "Riyadh Season Festival",
				Category:    "Festivals",
				City:        "Riyadh",
				Venue:       "Boulevard Riyadh City",
				Date:        "2025-12-01",
				Time:        "17:00",
				Price:       80,
				Image:       "https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=800&h=600&fit=crop",
				Description: "The biggest entertainment festival in the region.",
				Lat:         float64Ptr(24.7536),
				Lng:         float64Ptr(46.6753),
			},
		},
		Promotions: []models.Promotion{
			{ID: "SAUDIDAY25", Title: "Saudi Day 25% Off", Discount: 25, Active: true},
			{ID: "STUDENT15", Title: "Student 15% Off", Discount: 15, Active: true},
		},
		Users: []models.User{
			{ID: "u1", Name: "Admin", Email: "admin@ticketo.sa", Password: "admin", Role: models.RoleAdmin},
		},
		Bookings: []models.Booking{},
	}
}
