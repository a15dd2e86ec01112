package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketo/internal/logger"
	"ticketo/internal/models"
	"ticketo/internal/storage"
)

func TestResolvePromotion(t *testing.T) {
	promotions := []models.Promotion{
		{ID: "SAUDIDAY25", Title: "Saudi Day 25% Off", Discount: 25, Active: true},
		{ID: "EXPIRED10", Title: "Old promo", Discount: 10, Active: false},
	}

	t.Run("case-insensitive match", func(t *testing.T) {
		promo := ResolvePromotion(promotions, "saudiday25")
		require.NotNil(t, promo)
		assert.Equal(t, "SAUDIDAY25", promo.ID)
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		promo := ResolvePromotion(promotions, "  SaudiDay25  ")
		require.NotNil(t, promo)
		assert.Equal(t, "SAUDIDAY25", promo.ID)
	})

	t.Run("empty code is no promotion, not an error", func(t *testing.T) {
		assert.Nil(t, ResolvePromotion(promotions, ""))
		assert.Nil(t, ResolvePromotion(promotions, "   "))
	})

	t.Run("inactive promotion never matches", func(t *testing.T) {
		assert.Nil(t, ResolvePromotion(promotions, "EXPIRED10"))
	})

	t.Run("unknown code yields nil", func(t *testing.T) {
		assert.Nil(t, ResolvePromotion(promotions, "NOPE"))
	})
}

func TestListActiveFiltersInactive(t *testing.T) {
	store := storage.NewInMemoryStoreWith(&models.Document{
		Promotions: []models.Promotion{
			{ID: "SAUDIDAY25", Discount: 25, Active: true},
			{ID: "EXPIRED10", Discount: 10, Active: false},
			{ID: "STUDENT15", Discount: 15, Active: true},
		},
	})
	svc := NewPromotionService(storage.NewSingleWriter(store), logger.NewLogger())

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "SAUDIDAY25", active[0].ID)
	assert.Equal(t, "STUDENT15", active[1].ID)
}
