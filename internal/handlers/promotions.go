package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketo/internal/services"
	"ticketo/internal/utils"
)

type PromotionHandler struct {
	promotions *services.PromotionService
}

func NewPromotionHandler(promotions *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

// ListPromotions returns active promotions only; inactive codes stay
// internal.
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.promotions.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to load promotions", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Promotions retrieved", promotions))
}
