package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketo/internal/kafka"
	"ticketo/internal/logger"
	"ticketo/internal/models"
	"ticketo/internal/services"
	"ticketo/internal/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.InMemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewInMemoryStoreWith(&models.Document{
		Events: []models.Event{
			{ID: "1", Title: "Concert", Venue: "Boulevard", Time: "20:00", Date: "2025-11-15", Price: 350, Image: "img"},
		},
		Promotions: []models.Promotion{
			{ID: "SAUDIDAY25", Title: "Saudi Day 25% Off", Discount: 25, Active: true},
			{ID: "EXPIRED10", Title: "Old", Discount: 10, Active: false},
		},
		Users:    []models.User{{ID: "u1", Name: "Admin", Email: "admin@ticketo.sa", Password: "admin", Role: models.RoleAdmin}},
		Bookings: []models.Booking{},
	})
	writer := storage.NewSingleWriter(store)
	log := logger.NewLogger()

	producer, err := kafka.NewProducer(nil, true, log)
	require.NoError(t, err)

	eventHandler := NewEventHandler(services.NewEventService(writer, nil, log, true))
	promotionHandler := NewPromotionHandler(services.NewPromotionService(writer, log))
	bookingHandler := NewBookingHandler(services.NewBookingService(writer, producer, nil, log, true))
	authHandler := NewAuthHandler(services.NewAuthService(writer, log))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/:id", eventHandler.GetEvent)
	api.POST("/events", eventHandler.CreateEvent)
	api.PUT("/events/:id", eventHandler.UpdateEvent)
	api.DELETE("/events/:id", eventHandler.DeleteEvent)
	api.GET("/promotions", promotionHandler.ListPromotions)
	api.GET("/bookings", bookingHandler.ListBookings)
	api.POST("/bookings", bookingHandler.CreateBooking)
	api.PUT("/bookings/:id", bookingHandler.UpdateStatus)
	api.DELETE("/bookings/:id", bookingHandler.DeleteBooking)
	api.POST("/auth/login", authHandler.Login)
	return router, store
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	router, store := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"name":      "Sara",
		"email":     "sara@example.com",
		"eventId":   1,
		"tickets":   3,
		"promoCode": "saudiday25",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		OK   bool           `json:"ok"`
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 787.50, resp.Data.Total)
	assert.Equal(t, 3, resp.Data.Tickets)
	assert.Equal(t, models.StatusConfirmed, resp.Data.Status)

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Bookings, 1)
}

func TestCreateBookingEndpointIgnoresClientTotal(t *testing.T) {
	router, _ := newTestRouter(t)

	// A tampered total field is simply not part of the request model.
	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"name":    "Eve",
		"email":   "eve@example.com",
		"eventId": 1,
		"tickets": 2,
		"total":   0.01,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 700.0, resp.Data.Total)
}

func TestCreateBookingEndpointErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{"email": "a@b.c"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown event", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
			"name": "Sara", "email": "a@b.c", "eventId": "nosuch",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("string tickets are accepted", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
			"name": "Sara", "email": "a@b.c", "eventId": 1, "tickets": "99",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Data models.Booking `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.Data.Tickets)
	})
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"name": "Sara", "email": "sara@example.com", "eventId": 1, "tickets": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID

	t.Run("update status", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/bookings/"+id, gin.H{"status": "cancelled"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data models.Booking `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.StatusCancelled, resp.Data.Status)
		assert.Equal(t, created.Data.Total, resp.Data.Total)
	})

	t.Run("missing status is 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/bookings/"+id, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/bookings/bload", gin.H{"status": "cancelled"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/api/bookings/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodDelete, "/api/bookings/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBookingsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK   bool             `json:"ok"`
		Data []models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Data)

	for i := 0; i < 3; i++ {
		doJSON(router, http.MethodPost, "/api/bookings", gin.H{
			"name": fmt.Sprintf("Guest %d", i), "email": "g@example.com", "eventId": 1,
		})
	}

	w = doJSON(router, http.MethodGet, "/api/bookings", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}
