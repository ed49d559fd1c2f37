//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"testing"

	"savoria-api/internal/handler/dto/request"
	"savoria-api/internal/handler/dto/response"
	"savoria-api/tests/common/dbtest"
	"savoria-api/tests/common/httptest"
	"savoria-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL = "/api/orders"
	quoteURL  = "/api/cart/quote"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func (s *OrderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func orderHeaders(customerID uuid.UUID, idempotencyKey string) map[string]string {
	headers := map[string]string{"X-Customer-ID": customerID.String()}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	return headers
}

// Seeds a menu with two items and always-on offers whose validity does not
// depend on the wall clock: a 10% discount on the pizza and a buy-2-get-1
// on the soda.
func (s *OrderSuite) seedMenuWithOffers(t *testing.T) (pizzaID, sodaID uuid.UUID) {
	categoryID := dbtest.CreateTestCategory(t, s.DB, "Pizzas")
	pizzaID = dbtest.CreateTestMenuItem(t, s.DB, "Margherita", dec("10.00"), &categoryID)
	sodaID = dbtest.CreateTestMenuItem(t, s.DB, "Lemon Soda", dec("2.00"), nil)

	dbtest.CreateTestOffer(t, s.DB, dbtest.OfferRow{
		Title:         "Ten Percent Off Pizza",
		Type:          "percentage",
		DiscountValue: dec("10"),
		Scope:         "item",
		ItemID:        &pizzaID,
		Active:        true,
	})
	dbtest.CreateTestOffer(t, s.DB, dbtest.OfferRow{
		Title:       "Soda Buy 2 Get 1",
		Type:        "bxgy",
		BuyQuantity: 2,
		GetQuantity: 1,
		Scope:       "item",
		ItemID:      &sodaID,
		Active:      true,
	})
	return pizzaID, sodaID
}

func placeOrderBody(pizzaID, sodaID uuid.UUID) request.PlaceOrderRequest {
	return request.PlaceOrderRequest{
		Items: []request.OrderItemRequest{
			{MenuItemID: pizzaID, Quantity: 2},
			{MenuItemID: sodaID, Quantity: 6},
		},
	}
}

func (s *OrderSuite) TestPlaceOrder() {
	s.Run("Normal case: order totals are computed server-side", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "diner@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			placeOrderBody(pizzaID, sodaID), orderHeaders(customerID, uuid.New().String()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var order response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &order))

		require.Equal(t, customerID, order.CustomerID)
		require.Equal(t, "placed", order.Status)
		// 2x10.00 + 6x2.00 = 32.00; 10% of 20.00 + two free sodas = 6.00
		require.True(t, dec("32.00").Equal(order.Subtotal), "subtotal: %s", order.Subtotal)
		require.True(t, dec("6.00").Equal(order.TotalDiscount), "discount: %s", order.TotalDiscount)
		require.True(t, dec("26.00").Equal(order.GrandTotal), "grand total: %s", order.GrandTotal)

		require.Len(t, order.Items, 2)
		pizzaLine := order.Items[0]
		require.Equal(t, pizzaID, pizzaLine.MenuItemID)
		require.Equal(t, "Margherita", pizzaLine.MenuItemName)
		require.True(t, dec("2.00").Equal(pizzaLine.Discount))
		require.NotNil(t, pizzaLine.AppliedOfferID)

		sodaLine := order.Items[1]
		require.Equal(t, sodaID, sodaLine.MenuItemID)
		require.True(t, dec("4.00").Equal(sodaLine.Discount))
	})

	s.Run("Normal case: quote preview matches the placed order", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "previewer@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)
		body := placeOrderBody(pizzaID, sodaID)

		qw := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL,
			request.QuoteCartRequest{Items: body.Items},
			map[string]string{"X-Customer-ID": customerID.String()})
		require.Equal(t, http.StatusOK, qw.Code, qw.Body.String())

		var quote response.CartQuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &quote))

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(customerID, uuid.New().String()))
		require.Equal(t, http.StatusCreated, ow.Code)

		var order response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &order))

		require.True(t, quote.Subtotal.Equal(order.Subtotal))
		require.True(t, quote.TotalDiscount.Equal(order.TotalDiscount))
		require.True(t, quote.GrandTotal.Equal(order.GrandTotal))
	})

	s.Run("Idempotency: replaying the same key returns the original order", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "replayer@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)
		body := placeOrderBody(pizzaID, sodaID)
		key := uuid.New().String()

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(customerID, key))
		require.Equal(t, http.StatusCreated, w1.Code)

		var first response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(customerID, key))
		require.Equal(t, http.StatusOK, w2.Code, "replay should not create a second order")

		var replayed response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &replayed))
		require.Equal(t, first.ID, replayed.ID)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM orders WHERE customer_id = $1", customerID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Idempotency: a completed key wins over a changed body", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "conflicter@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)
		key := uuid.New().String()

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			placeOrderBody(pizzaID, sodaID), orderHeaders(customerID, key))
		require.Equal(t, http.StatusCreated, w1.Code)

		var first response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		// Once stored, the key identifies the request; a changed body replays
		// the original order rather than creating a second one.
		altered := request.PlaceOrderRequest{
			Items: []request.OrderItemRequest{{MenuItemID: pizzaID, Quantity: 1}},
		}
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			altered, orderHeaders(customerID, key))
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		var replayed response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &replayed))
		require.Equal(t, first.ID, replayed.ID)
		require.True(t, first.GrandTotal.Equal(replayed.GrandTotal))
	})

	s.Run("Idempotency: the same key is scoped per customer", func() {
		t := s.T()

		firstCustomer := dbtest.CreateTestCustomer(t, s.DB, "alice@example.com", nil, nil)
		secondCustomer := dbtest.CreateTestCustomer(t, s.DB, "bob@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)
		body := placeOrderBody(pizzaID, sodaID)
		key := uuid.New().String()

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(firstCustomer, key))
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(secondCustomer, key))
		require.Equal(t, http.StatusCreated, w2.Code, "another customer may reuse the key")
	})

	s.Run("Error case: missing idempotency key is rejected", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "forgetful@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			placeOrderBody(pizzaID, sodaID), orderHeaders(customerID, ""))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: missing customer identity is unauthorized", func() {
		t := s.T()

		pizzaID, sodaID := s.seedMenuWithOffers(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			placeOrderBody(pizzaID, sodaID),
			map[string]string{"Idempotency-Key": uuid.New().String()})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: unknown menu item", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "ghost@example.com", nil, nil)

		body := request.PlaceOrderRequest{
			Items: []request.OrderItemRequest{{MenuItemID: uuid.New(), Quantity: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(customerID, uuid.New().String()))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: unavailable menu item", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "latecomer@example.com", nil, nil)
		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Sold Out Special", dec("8.00"), nil)
		_, err := s.DB.Exec(context.Background(),
			"UPDATE menu_items SET available = false WHERE id = $1", itemID)
		require.NoError(t, err)

		body := request.PlaceOrderRequest{
			Items: []request.OrderItemRequest{{MenuItemID: itemID, Quantity: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(customerID, uuid.New().String()))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: empty item list fails validation", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "empty@example.com", nil, nil)

		body := request.PlaceOrderRequest{Items: []request.OrderItemRequest{}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			body, orderHeaders(customerID, uuid.New().String()))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *OrderSuite) TestGetOrder() {
	s.Run("Normal case: placed order can be fetched by ID", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, "fetcher@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			placeOrderBody(pizzaID, sodaID), orderHeaders(customerID, uuid.New().String()))
		require.Equal(t, http.StatusCreated, w.Code)

		var placed response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &placed))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			ordersURL+"/"+placed.ID.String(), nil, nil)
		require.Equal(t, http.StatusOK, gw.Code)

		var fetched response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &fetched))
		require.Equal(t, placed.ID, fetched.ID)
		require.True(t, placed.GrandTotal.Equal(fetched.GrandTotal))
		require.Len(t, fetched.Items, 2)
	})

	s.Run("Error case: unknown order ID", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			ordersURL+"/"+uuid.New().String(), nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *OrderSuite) TestListOrders() {
	s.Run("Normal case: customer sees only their own orders", func() {
		t := s.T()

		firstCustomer := dbtest.CreateTestCustomer(t, s.DB, "mine@example.com", nil, nil)
		secondCustomer := dbtest.CreateTestCustomer(t, s.DB, "theirs@example.com", nil, nil)
		pizzaID, sodaID := s.seedMenuWithOffers(t)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			placeOrderBody(pizzaID, sodaID), orderHeaders(firstCustomer, uuid.New().String()))
		require.Equal(t, http.StatusCreated, w1.Code)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			placeOrderBody(pizzaID, sodaID), orderHeaders(secondCustomer, uuid.New().String()))
		require.Equal(t, http.StatusCreated, w2.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil,
			map[string]string{"X-Customer-ID": firstCustomer.String()})
		require.Equal(t, http.StatusOK, lw.Code)

		var orders []response.OrderListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &orders))
		require.Len(t, orders, 1)
		require.True(t, dec("26.00").Equal(orders[0].GrandTotal))
	})

	s.Run("Error case: listing without customer identity is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
