package order

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitchef-backend/constants"
	"fitchef-backend/middleware"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
)

// --- Fake order store ---

type fakeOrderStore struct {
	createOrderFn     func(userID uint, items []orderstore.ItemInput, requestedDeliveryDate string) (*orderModel.Order, error)
	userOrdersFn      func(userID uint, status string, limit, offset int) ([]orderModel.Order, int64, error)
	orderDetailFn     func(userID uint, orderID string) (*orderModel.Order, error)
	deliveredOrdersFn func(userID uint, limit, offset int) ([]orderModel.Order, int64, error)
}

func (f *fakeOrderStore) CreateOrder(userID uint, items []orderstore.ItemInput, requestedDeliveryDate string) (*orderModel.Order, error) {
	if f.createOrderFn != nil {
		return f.createOrderFn(userID, items, requestedDeliveryDate)
	}
	return nil, orderstore.ErrEmptyItems
}

func (f *fakeOrderStore) UserOrders(userID uint, status string, limit, offset int) ([]orderModel.Order, int64, error) {
	if f.userOrdersFn != nil {
		return f.userOrdersFn(userID, status, limit, offset)
	}
	return []orderModel.Order{}, 0, nil
}

func (f *fakeOrderStore) UserOrderDetail(userID uint, orderID string) (*orderModel.Order, error) {
	if f.orderDetailFn != nil {
		return f.orderDetailFn(userID, orderID)
	}
	return nil, orderstore.ErrOrderNotFound
}

func (f *fakeOrderStore) UserDeliveredOrders(userID uint, limit, offset int) ([]orderModel.Order, int64, error) {
	if f.deliveredOrdersFn != nil {
		return f.deliveredOrdersFn(userID, limit, offset)
	}
	return []orderModel.Order{}, 0, nil
}

// --- Helpers ---

const testUserID uint = 11

func newOrderApp(store orderStore) *fiber.App {
	oc := NewOrderController(store, nil)
	app := fiber.New()
	grp := app.Group("/api/user", middleware.Authenticate(), middleware.RequireRole(constants.RoleCustomer))
	grp.Post("/orders", oc.CreateOrder)
	grp.Get("/orders", oc.ListOrders)
	grp.Get("/orders/delivered", oc.DeliveredOrders)
	grp.Get("/orders/:id", oc.GetOrder)
	return app
}

func doUserRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, types.ApiResponse) {
	t.Helper()

	token, err := middleware.GenerateToken(testUserID, "user@example.com", constants.RoleCustomer)
	require.NoError(t, err)

	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope types.ApiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func cartBody(deliveryDate string) fiber.Map {
	return fiber.Map{
		"items": []fiber.Map{
			{"dish_id": 1, "quantity": 2},
			{"dish_id": 3, "quantity": 1},
		},
		"requested_delivery_date": deliveryDate,
	}
}

// --- Tests ---

func TestCreateOrderHappyPath(t *testing.T) {
	store := &fakeOrderStore{
		createOrderFn: func(userID uint, items []orderstore.ItemInput, requestedDeliveryDate string) (*orderModel.Order, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "2026-09-15", requestedDeliveryDate)
			if assert.Len(t, items, 2) {
				assert.Equal(t, orderstore.ItemInput{DishID: 1, Quantity: 2}, items[0])
				assert.Equal(t, orderstore.ItemInput{DishID: 3, Quantity: 1}, items[1])
			}
			return &orderModel.Order{ID: "ord-1", UserID: userID, Status: orderModel.StatusOpen}, nil
		},
	}

	resp, envelope := doUserRequest(t, newOrderApp(store), "POST", "/api/user/orders", cartBody("2026-09-15"))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Order placed successfully", envelope.Message)
}

func TestCreateOrderValidatesCart(t *testing.T) {
	tests := []struct {
		name    string
		body    fiber.Map
		message string
	}{
		{
			name:    "empty cart",
			body:    fiber.Map{"items": []fiber.Map{}, "requested_delivery_date": "2026-09-15"},
			message: "at least one item is required",
		},
		{
			name: "zero quantity",
			body: fiber.Map{
				"items":                   []fiber.Map{{"dish_id": 1, "quantity": 0}},
				"requested_delivery_date": "2026-09-15",
			},
			message: "quantity must be at least 1",
		},
		{
			name: "missing dish id",
			body: fiber.Map{
				"items":                   []fiber.Map{{"quantity": 1}},
				"requested_delivery_date": "2026-09-15",
			},
			message: "dish_id is required for every item",
		},
		{
			name:    "missing delivery date",
			body:    cartBody(""),
			message: "please select a delivery date (at least 24 hours from now)",
		},
	}

	app := newOrderApp(&fakeOrderStore{
		createOrderFn: func(uint, []orderstore.ItemInput, string) (*orderModel.Order, error) {
			t.Error("store must not be reached when validation fails")
			return nil, orderstore.ErrEmptyItems
		},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, envelope := doUserRequest(t, app, "POST", "/api/user/orders", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.message, envelope.Message)
		})
	}
}

func TestCreateOrderUnavailableDish(t *testing.T) {
	store := &fakeOrderStore{
		createOrderFn: func(uint, []orderstore.ItemInput, string) (*orderModel.Order, error) {
			return nil, &orderstore.DishError{DishID: 9}
		},
	}

	resp, envelope := doUserRequest(t, newOrderApp(store), "POST", "/api/user/orders", cartBody("2026-09-15"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid or unavailable dish: 9", envelope.Message)
}

func TestCreateOrderSameDayDeliveryRejected(t *testing.T) {
	store := &fakeOrderStore{
		createOrderFn: func(uint, []orderstore.ItemInput, string) (*orderModel.Order, error) {
			return nil, orderstore.ErrInvalidDeliveryDate
		},
	}

	resp, envelope := doUserRequest(t, newOrderApp(store), "POST", "/api/user/orders", cartBody("2026-09-01"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, orderstore.ErrInvalidDeliveryDate.Error(), envelope.Message)
}

func TestListOrdersUnknownStatus(t *testing.T) {
	resp, envelope := doUserRequest(t, newOrderApp(&fakeOrderStore{}), "GET", "/api/user/orders?status=Shipped", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unknown order status", envelope.Message)
}

func TestListOrdersPaginates(t *testing.T) {
	store := &fakeOrderStore{
		userOrdersFn: func(userID uint, status string, limit, offset int) ([]orderModel.Order, int64, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "Delivered", status)
			assert.Equal(t, 5, limit)
			assert.Equal(t, 5, offset)
			return []orderModel.Order{{ID: "a"}}, 12, nil
		},
	}

	resp, envelope := doUserRequest(t, newOrderApp(store), "GET", "/api/user/orders?status=Delivered&page=2&limit=5", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	paged, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(12), paged["total"])
	assert.Equal(t, float64(2), paged["page"])
	assert.Equal(t, float64(5), paged["limit"])
}

func TestGetOrderNotFound(t *testing.T) {
	store := &fakeOrderStore{
		orderDetailFn: func(userID uint, orderID string) (*orderModel.Order, error) {
			assert.Equal(t, testUserID, userID)
			return nil, orderstore.ErrOrderNotFound
		},
	}

	resp, envelope := doUserRequest(t, newOrderApp(store), "GET", "/api/user/orders/someone-elses", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Order not found", envelope.Message)
}

func TestOrdersRequireAuthentication(t *testing.T) {
	app := newOrderApp(&fakeOrderStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/user/orders", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
