package services

import (
	"fmt"
	"strings"

	"ticketo/internal/logger"
	"ticketo/internal/models"
	"ticketo/internal/storage"
)

// ResolvePromotion finds an active promotion by case-insensitive code. An
// empty code, an unknown code, or an inactive one all yield nil rather than
// an error: a stale discount code never blocks a booking, it just prices at
// full.
func ResolvePromotion(promotions []models.Promotion, code string) *models.Promotion {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil
	}
	for i := range promotions {
		if promotions[i].Active && strings.ToUpper(promotions[i].ID) == normalized {
			return &promotions[i]
		}
	}
	return nil
}

type PromotionService struct {
	writer *storage.SingleWriter
	log    *logger.Logger
}

func NewPromotionService(writer *storage.SingleWriter, log *logger.Logger) *PromotionService {
	return &PromotionService{writer: writer, log: log}
}

// ListActive returns only promotions currently toggled on.
func (s *PromotionService) ListActive() ([]models.Promotion, error) {
	var active []models.Promotion
	err := s.writer.View(func(doc *models.Document) error {
		for _, promo := range doc.Promotions {
			if promo.Active {
				active = append(active, promo)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions: %w", err)
	}
	if active == nil {
		active = []models.Promotion{}
	}
	return active, nil
}
