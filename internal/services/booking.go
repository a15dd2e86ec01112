package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ticketo/internal/kafka"
	"ticketo/internal/logger"
	"ticketo/internal/mailer"
	"ticketo/internal/models"
	"ticketo/internal/storage"
	"ticketo/internal/utils"
)

// BookingService orchestrates the booking transaction: validate, resolve the
// event and promotion, price, build the record, and commit it. The whole
// cycle runs inside one SingleWriter.Update window, so a concurrent booking
// can never load a snapshot that is about to be overwritten.
type BookingService struct {
	writer     *storage.SingleWriter
	producer   *kafka.Producer
	mail       *mailer.Mailer
	log        *logger.Logger
	positional bool
}

func NewBookingService(writer *storage.SingleWriter, producer *kafka.Producer, mail *mailer.Mailer, log *logger.Logger, positional bool) *BookingService {
	return &BookingService{
		writer:     writer,
		producer:   producer,
		mail:       mail,
		log:        log,
		positional: positional,
	}
}

// CreateBooking is all-or-nothing: if the save fails, no booking exists even
// though validation and pricing succeeded.
func (s *BookingService) CreateBooking(req *models.BookingRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.EventID.String() == "" {
		return nil, ErrMissingFields
	}

	quantity := CoerceTickets(req.Tickets)

	var booking *models.Booking
	err := s.writer.Update(func(doc *models.Document) error {
		event := FindEvent(doc.Events, req.EventID.String(), s.positional)
		if event == nil {
			return ErrEventNotFound
		}

		promo := ResolvePromotion(doc.Promotions, req.PromoCode)
		_, total := Price(event, quantity, promo)

		var promoID *string
		if promo != nil {
			promoID = &promo.ID
		}

		b := models.Booking{
			ID:       utils.GenerateBookingID(),
			EventID:  event.ID,
			Title:    event.Title,
			Venue:    event.Venue,
			Time:     event.Time,
			Image:    event.Image,
			Date:     event.Date,
			Tickets:  quantity,
			Total:    total,
			Promo:    promoID,
			Name:     req.Name,
			Email:    req.Email,
			Status:   models.StatusConfirmed,
			BookedAt: time.Now().UTC(),
		}
		doc.Bookings = append(doc.Bookings, b)
		booking = &b
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			s.log.LogBooking("REJECTED", req.EventID.String(), "Event not found")
			return nil, err
		}
		s.log.Error("BOOKING", fmt.Sprintf("Failed to persist booking for event %s: %v", req.EventID, err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.log.LogBooking("CREATED", booking.ID, fmt.Sprintf("%d ticket(s) for %q, total %.2f", booking.Tickets, booking.Title, booking.Total))

	s.publishBookingEvent("booking.confirmed", booking)
	if s.mail != nil {
		go s.mail.SendBookingConfirmation(booking)
	}
	return booking, nil
}

func (s *BookingService) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.writer.View(func(doc *models.Document) error {
		bookings = doc.Bookings
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// UpdateStatus replaces the status of one booking, located by exact id
// match. Unlike event lookup there is no positional fallback here. The store
// accepts any status string; enum validation is the API boundary's job.
func (s *BookingService) UpdateStatus(bookingID, status string) (*models.Booking, error) {
	var updated *models.Booking
	err := s.writer.Update(func(doc *models.Document) error {
		for i := range doc.Bookings {
			if doc.Bookings[i].ID == bookingID {
				doc.Bookings[i].Status = models.BookingStatus(status)
				cp := doc.Bookings[i]
				updated = &cp
				return nil
			}
		}
		return ErrBookingNotFound
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.log.LogBooking("STATUS", updated.ID, fmt.Sprintf("Status set to %s", updated.Status))
	if updated.Status == models.StatusCancelled {
		s.publishBookingEvent("booking.cancelled", updated)
	}
	return updated, nil
}

var errNothingRemoved = errors.New("nothing removed")

// DeleteBooking removes a booking if present and reports whether a removal
// occurred. Deleting an unknown id yields false, not an error, so the call
// is idempotent in effect.
func (s *BookingService) DeleteBooking(bookingID string) (bool, error) {
	var removed *models.Booking
	err := s.writer.Update(func(doc *models.Document) error {
		kept := doc.Bookings[:0]
		for _, b := range doc.Bookings {
			if b.ID == bookingID {
				cp := b
				removed = &cp
				continue
			}
			kept = append(kept, b)
		}
		if removed == nil {
			// Abort the save: an unchanged document has no reason to be
			// rewritten.
			return errNothingRemoved
		}
		doc.Bookings = kept
		return nil
	})
	if errors.Is(err, errNothingRemoved) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete booking: %w", err)
	}

	s.log.LogBooking("DELETED", removed.ID, "Booking removed")
	s.publishBookingEvent("booking.deleted", removed)
	return true, nil
}

// publishBookingEvent never fails the calling operation: the booking is
// already committed, so a broker hiccup is logged and absorbed.
func (s *BookingService) publishBookingEvent(eventType string, booking *models.Booking) {
	event := &models.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		Booking:   booking,
		Timestamp: time.Now(),
	}
	if err := s.producer.PublishBookingEvent(event); err != nil {
		s.log.Error("KAFKA", fmt.Sprintf("Failed to publish %s for booking %s: %v", eventType, booking.ID, err))
	}
}
