package api

import (
	"errors"
	"net/http"

	resdto "savoria-api/internal/handler/dto/response"
	"savoria-api/internal/handler/middleware"
	"savoria-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	menuQueries queries.MenuQueries
}

func NewMenuHandler(menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{menuQueries: menuQueries}
}

// @Summary List menu
// @Description List menu items with currently applicable offers and the best offer per item
// @Tags menu
// @Produce json
// @Param X-Customer-ID header string false "Customer ID (enables birthday/anniversary offers)"
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	views, err := h.menuQueries.List(c.Request.Context(), middleware.OptionalCustomerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.MenuItemResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromMenuItemView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get menu item
// @Description Get one menu item with its evaluated offers
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Param X-Customer-ID header string false "Customer ID"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID format"})
		return
	}

	view, err := h.menuQueries.Get(c.Request.Context(), id, middleware.OptionalCustomerID(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMenuItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemView(view))
}
