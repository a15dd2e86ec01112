package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketo/internal/logger"
	"ticketo/internal/models"
	"ticketo/internal/storage"
)

func newEventService(t *testing.T, doc *models.Document, positional bool) (*EventService, *storage.InMemoryStore) {
	t.Helper()
	store := storage.NewInMemoryStoreWith(doc)
	svc := NewEventService(storage.NewSingleWriter(store), nil, logger.NewLogger(), positional)
	return svc, store
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *models.FlexFloat {
	v := models.FlexFloat(f)
	return &v
}

func TestFindEventResolutionChain(t *testing.T) {
	events := []models.Event{
		{ID: "10", Title: "first"},
		{ID: "abc", Title: "second"},
		{ID: "2", Title: "third"},
	}

	t.Run("exact string match wins", func(t *testing.T) {
		found := FindEvent(events, "abc", true)
		require.NotNil(t, found)
		assert.Equal(t, "second", found.Title)
	})

	t.Run("numeric match", func(t *testing.T) {
		found := FindEvent(events, "2", true)
		require.NotNil(t, found)
		assert.Equal(t, "third", found.Title)
	})

	t.Run("positional fallback for numeric miss", func(t *testing.T) {
		// "1" matches no id, so the legacy rule returns events[0].
		found := FindEvent(events, "1", true)
		require.NotNil(t, found)
		assert.Equal(t, "first", found.Title)
	})

	t.Run("positional fallback disabled", func(t *testing.T) {
		assert.Nil(t, FindEvent(events, "1", false))
	})

	t.Run("positional fallback out of range", func(t *testing.T) {
		assert.Nil(t, FindEvent(events, "99", true))
		assert.Nil(t, FindEvent(events, "0", true))
		assert.Nil(t, FindEvent(events, "-1", true))
	})

	t.Run("fractional index never matches positionally", func(t *testing.T) {
		assert.Nil(t, FindEvent(events, "1.5", true))
	})

	t.Run("non-numeric miss", func(t *testing.T) {
		assert.Nil(t, FindEvent(events, "zzz", true))
	})
}

func TestCreateEventAssignsNextNumericID(t *testing.T) {
	svc, _ := newEventService(t, &models.Document{
		Events: []models.Event{
			{ID: "3", Title: "a"},
			{ID: "weird", Title: "b"},
			{ID: "7", Title: "c"},
		},
	}, true)

	created, err := svc.CreateEvent(&models.EventInput{
		Title: strPtr("New Show"),
		Price: floatPtr(120),
	})
	require.NoError(t, err)
	assert.Equal(t, models.FlexID("8"), created.ID)
	assert.Equal(t, 120.0, created.Price)
}

func TestCreateEventOnEmptyCatalog(t *testing.T) {
	svc, _ := newEventService(t, &models.Document{}, true)

	created, err := svc.CreateEvent(&models.EventInput{Title: strPtr("First")})
	require.NoError(t, err)
	assert.Equal(t, models.FlexID("1"), created.ID)
}

func TestCreateEventRequiresTitle(t *testing.T) {
	svc, _ := newEventService(t, &models.Document{}, true)

	_, err := svc.CreateEvent(&models.EventInput{Price: floatPtr(10)})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.CreateEvent(&models.EventInput{Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateEventMergesAndKeepsID(t *testing.T) {
	svc, store := newEventService(t, &models.Document{
		Events: []models.Event{{ID: "1", Title: "Old", City: "Riyadh", Price: 100}},
	}, true)

	suppliedID := models.FlexID("999")
	updated, err := svc.UpdateEvent("1", &models.EventInput{
		ID:    &suppliedID, // must be ignored
		Title: strPtr("New"),
		Price: floatPtr(250),
		Lat:   floatPtr(24.7),
	})
	require.NoError(t, err)

	assert.Equal(t, models.FlexID("1"), updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Riyadh", updated.City, "absent fields stay untouched")
	assert.Equal(t, 250.0, updated.Price)
	require.NotNil(t, updated.Lat)
	assert.Equal(t, 24.7, *updated.Lat)

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "New", doc.Events[0].Title)
}

func TestUpdateEventUnknownID(t *testing.T) {
	svc, _ := newEventService(t, &models.Document{
		Events: []models.Event{{ID: "1", Title: "Only"}},
	}, false)

	_, err := svc.UpdateEvent("42", &models.EventInput{Title: strPtr("X")})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEvent(t *testing.T) {
	svc, store := newEventService(t, &models.Document{
		Events: []models.Event{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}},
	}, false)

	require.NoError(t, svc.DeleteEvent("1"))

	doc, err := store.Load()
	require.NoError(t, err)
	require.Len(t, doc.Events, 1)
	assert.Equal(t, models.FlexID("2"), doc.Events[0].ID)

	assert.ErrorIs(t, svc.DeleteEvent("1"), ErrEventNotFound)
}

func TestGetEventCopiesOutOfSnapshot(t *testing.T) {
	svc, store := newEventService(t, &models.Document{
		Events: []models.Event{{ID: "1", Title: "Original"}},
	}, true)

	event, err := svc.GetEvent("1")
	require.NoError(t, err)

	event.Title = "mutated by caller"

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Original", doc.Events[0].Title)
}

func TestListEventsEmptyCatalogIsEmptySlice(t *testing.T) {
	svc, _ := newEventService(t, &models.Document{}, true)

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestStringEventIDParsingSurvivesEventUpdates(t *testing.T) {
	// An event referenced by a booking keeps its snapshot even after the
	// catalog entry changes.
	doc := testDocument()
	store := storage.NewInMemoryStoreWith(doc)
	writer := storage.NewSingleWriter(store)
	log := logger.NewLogger()
	eventSvc := NewEventService(writer, nil, log, true)
	bookingSvc := newBookingServiceWith(t, writer, log)

	booking, err := bookingSvc.CreateBooking(&models.BookingRequest{
		Name: "Sara", Email: "sara@example.com", EventID: "1", Tickets: float64(2),
	})
	require.NoError(t, err)

	_, err = eventSvc.UpdateEvent("1", &models.EventInput{Title: strPtr("Renamed")})
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Bookings, 1)
	assert.Equal(t, booking.Title, loaded.Bookings[0].Title)
	assert.NotEqual(t, "Renamed", loaded.Bookings[0].Title)
}
