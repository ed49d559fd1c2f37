package api

import (
	"errors"
	"net/http"

	reqdto "savoria-api/internal/handler/dto/request"
	resdto "savoria-api/internal/handler/dto/response"
	"savoria-api/internal/handler/middleware"
	"savoria-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartQueries queries.CartQueries
}

func NewCartHandler(cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{cartQueries: cartQueries}
}

// @Summary Quote a cart
// @Description Price a cart with the best applicable offer per line. No state is written.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteCartRequest true "Cart lines"
// @Param X-Customer-ID header string false "Customer ID"
// @Success 200 {object} resdto.CartQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/quote [post]
func (h *CartHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.cartQueries.Quote(c.Request.Context(), req.ToQuoteLines(), middleware.OptionalCustomerID(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownMenuItem):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown menu item in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartQuoteView(view))
}
