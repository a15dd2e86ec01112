package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ticketo/internal/logger"
	"ticketo/internal/models"
	rediscache "ticketo/internal/redis"
	"ticketo/internal/storage"
)

// FindEvent resolves an event by flexible identifier. The chain, each step
// tried only when the previous one misses:
//
//  1. exact string match on the id
//  2. numeric match when rawID parses as a number
//  3. 1-based positional index into the collection (legacy fallback,
//     gated by the positional flag because it can silently resolve to an
//     unrelated event)
func FindEvent(events []models.Event, rawID string, positional bool) *models.Event {
	for i := range events {
		if events[i].ID.String() == rawID {
			return &events[i]
		}
	}

	n, err := strconv.ParseFloat(rawID, 64)
	if err != nil {
		return nil
	}
	for i := range events {
		if num, ok := events[i].ID.Numeric(); ok && num == n {
			return &events[i]
		}
	}

	if positional {
		idx := int(n)
		if float64(idx) == n && idx >= 1 && idx <= len(events) {
			return &events[idx-1]
		}
	}
	return nil
}

// EventService owns catalog reads and admin CRUD. Every write goes through
// the shared SingleWriter and invalidates the redis cache.
type EventService struct {
	writer     *storage.SingleWriter
	cache      *rediscache.EventCache
	log        *logger.Logger
	positional bool
}

func NewEventService(writer *storage.SingleWriter, cache *rediscache.EventCache, log *logger.Logger, positional bool) *EventService {
	return &EventService{
		writer:     writer,
		cache:      cache,
		log:        log,
		positional: positional,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	if events, ok := s.cache.GetEvents(ctx); ok {
		s.log.Debug("CACHE", "Event catalog served from redis")
		return events, nil
	}

	var events []models.Event
	err := s.writer.View(func(doc *models.Document) error {
		events = doc.Events
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	s.cache.SetEvents(ctx, events)
	return events, nil
}

func (s *EventService) GetEvent(rawID string) (*models.Event, error) {
	var event *models.Event
	err := s.writer.View(func(doc *models.Document) error {
		if found := FindEvent(doc.Events, rawID, s.positional); found != nil {
			cp := *found
			event = &cp
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// CreateEvent assigns the next id as 1 + the highest numeric id already in
// the catalog (string ids don't participate).
func (s *EventService) CreateEvent(input *models.EventInput) (*models.Event, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return nil, ErrMissingFields
	}

	var created *models.Event
	err := s.writer.Update(func(doc *models.Document) error {
		maxID := 0.0
		for _, ev := range doc.Events {
			if n, ok := ev.ID.Numeric(); ok && n > maxID {
				maxID = n
			}
		}
		event := models.Event{
			ID: models.FlexID(strconv.Itoa(int(maxID) + 1)),
		}
		applyEventInput(&event, input)
		doc.Events = append(doc.Events, event)
		created = &event
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background())
	s.log.LogDatabase("CREATE", "events", fmt.Sprintf("Event %s created: %s", created.ID, created.Title))
	return created, nil
}

// UpdateEvent merges the provided fields into the stored event. The id is
// immutable: one supplied in the payload is ignored.
func (s *EventService) UpdateEvent(rawID string, input *models.EventInput) (*models.Event, error) {
	var updated *models.Event
	err := s.writer.Update(func(doc *models.Document) error {
		event := FindEvent(doc.Events, rawID, s.positional)
		if event == nil {
			return ErrEventNotFound
		}
		applyEventInput(event, input)
		cp := *event
		updated = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background())
	s.log.LogDatabase("UPDATE", "events", fmt.Sprintf("Event %s updated", updated.ID))
	return updated, nil
}

func (s *EventService) DeleteEvent(rawID string) error {
	var deletedID models.FlexID
	err := s.writer.Update(func(doc *models.Document) error {
		event := FindEvent(doc.Events, rawID, s.positional)
		if event == nil {
			return ErrEventNotFound
		}
		deletedID = event.ID
		kept := doc.Events[:0]
		for _, ev := range doc.Events {
			if ev.ID != deletedID {
				kept = append(kept, ev)
			}
		}
		doc.Events = kept
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(context.Background())
	s.log.LogDatabase("DELETE", "events", fmt.Sprintf("Event %s deleted", deletedID))
	return nil
}

// applyEventInput copies the fields present in the payload onto the event,
// leaving everything else (including the id) alone.
func applyEventInput(event *models.Event, input *models.EventInput) {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Category != nil {
		event.Category = *input.Category
	}
	if input.City != nil {
		event.City = *input.City
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Time != nil {
		event.Time = *input.Time
	}
	if input.Price != nil {
		event.Price = float64(*input.Price)
	}
	if input.Image != nil {
		event.Image = *input.Image
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Promotion != nil {
		event.Promotion = *input.Promotion
	}
	if input.Lat != nil {
		lat := float64(*input.Lat)
		event.Lat = &lat
	}
	if input.Lng != nil {
		lng := float64(*input.Lng)
		event.Lng = &lng
	}
}
