package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerIDHeader is set by the gateway in front of this service after it
// has authenticated the caller. Authentication itself does not live here.
const CustomerIDHeader = "X-Customer-ID"

const customerIDKey = "customer_id"

// CustomerContext parses the gateway-supplied customer ID into the gin
// context. The header is optional; anonymous browsing is allowed.
func CustomerContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(CustomerIDHeader)
		if raw == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid customer ID format",
			})
			return
		}

		c.Set(customerIDKey, id)
		c.Next()
	}
}

// RequireCustomer rejects requests without an identified customer; used on
// endpoints that act on someone's behalf (ordering, order history).
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCustomerID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Customer identity required",
			})
			return
		}
		c.Next()
	}
}

func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(customerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// OptionalCustomerID returns a pointer for query paths where anonymous
// callers simply get no profile-gated offers.
func OptionalCustomerID(c *gin.Context) *uuid.UUID {
	if id, ok := GetCustomerID(c); ok {
		return &id
	}
	return nil
}
