package api

import (
	"errors"
	"net/http"

	resdto "savoria-api/internal/handler/dto/response"
	"savoria-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerQueries queries.OfferQueries
}

func NewOfferHandler(offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{offerQueries: offerQueries}
}

// @Summary List active offers
// @Description List all active offers regardless of temporal validity
// @Tags offers
// @Produce json
// @Success 200 {array} resdto.OfferResponse
// @Router /offers [get]
func (h *OfferHandler) ListActive(c *gin.Context) {
	views, err := h.offerQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.OfferResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOfferView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List rewards for a menu item
// @Description Active offers targeting the item, shown even outside their validity window
// @Tags offers
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id}/rewards [get]
func (h *OfferHandler) RewardsForItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID format"})
		return
	}

	views, err := h.offerQueries.RewardsForItem(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMenuItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	response := make([]*resdto.OfferResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOfferView(v)
	}
	c.JSON(http.StatusOK, response)
}
