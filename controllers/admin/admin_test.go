package admin

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
	"fitchef-backend/services/notification"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
)

// --- Fake order store ---

type fakeOpenOrderStore struct {
	confirmOrderFn func(orderID string, chefID *uint, deliveryTimeSlot string) (*orderModel.Order, error)
	assignChefFn   func(orderID string, chefID uint) error
	ordersFn       func(status string, limit, offset int) ([]orderModel.Order, int64, error)
	orderDetailFn  func(orderID string) (*orderModel.Order, error)
}

func (f *fakeOpenOrderStore) ConfirmOrder(orderID string, chefID *uint, deliveryTimeSlot string) (*orderModel.Order, error) {
	if f.confirmOrderFn != nil {
		return f.confirmOrderFn(orderID, chefID, deliveryTimeSlot)
	}
	return nil, orderstore.ErrOrderNotFound
}

func (f *fakeOpenOrderStore) AssignChef(orderID string, chefID uint) error {
	if f.assignChefFn != nil {
		return f.assignChefFn(orderID, chefID)
	}
	return orderstore.ErrOrderNotFound
}

func (f *fakeOpenOrderStore) AdminOrders(status string, limit, offset int) ([]orderModel.Order, int64, error) {
	if f.ordersFn != nil {
		return f.ordersFn(status, limit, offset)
	}
	return []orderModel.Order{}, 0, nil
}

func (f *fakeOpenOrderStore) AdminOrderDetail(orderID string) (*orderModel.Order, error) {
	if f.orderDetailFn != nil {
		return f.orderDetailFn(orderID)
	}
	return nil, orderstore.ErrOrderNotFound
}

// --- Recording notifier ---

type note struct {
	recipient uint
	orderID   string
	message   string
}

type fakeNotifier struct {
	userNotes []note
}

func (f *fakeNotifier) NotifyUser(userID uint, orderID, message string) {
	f.userNotes = append(f.userNotes, note{userID, orderID, message})
}

// --- Helpers ---

func newAdminApp(store openOrderStore, n notifier) *fiber.App {
	ac := NewAdminController(nil, store, n, nil)
	app := fiber.New()
	grp := app.Group("/api/admin", middleware.Authenticate(), middleware.RequireRole(constants.AdminRoles...))
	grp.Get("/open-orders", ac.ListOpenOrders)
	grp.Get("/open-orders/:id", ac.GetOpenOrder)
	grp.Patch("/open-orders/:id/confirm", ac.ConfirmOrder)
	grp.Patch("/open-orders/:id/assign", ac.AssignChef)
	return app
}

func doAdminRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, types.ApiResponse) {
	t.Helper()

	token, err := middleware.GenerateToken(3, "admin@fitchef.in", constants.RoleAdmin)
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

// --- Tests ---

func TestConfirmOrderDefaultChef(t *testing.T) {
	const orderID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	store := &fakeOpenOrderStore{
		confirmOrderFn: func(id string, chefID *uint, slot string) (*orderModel.Order, error) {
			assert.Equal(t, orderID, id)
			assert.Nil(t, chefID, "empty body means first available chef")
			assert.Empty(t, slot)
			return &orderModel.Order{ID: orderID, UserID: 11, Status: orderModel.StatusConfirmed}, nil
		},
	}
	notifier := &fakeNotifier{}

	resp, envelope := doAdminRequest(t, newAdminApp(store, notifier),
		"PATCH", "/api/admin/open-orders/"+orderID+"/confirm", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Order confirmed successfully", envelope.Message)

	require.Len(t, notifier.userNotes, 1)
	assert.Equal(t, uint(11), notifier.userNotes[0].recipient)
	assert.Equal(t, orderID, notifier.userNotes[0].orderID)
	assert.Equal(t, notification.OrderConfirmedMessage(), notifier.userNotes[0].message)
}

func TestConfirmOrderExplicitChefAndSlot(t *testing.T) {
	store := &fakeOpenOrderStore{
		confirmOrderFn: func(id string, chefID *uint, slot string) (*orderModel.Order, error) {
			if assert.NotNil(t, chefID) {
				assert.Equal(t, uint(4), *chefID)
			}
			assert.Equal(t, "12:00 - 14:00", slot)
			return &orderModel.Order{ID: id, UserID: 11, Status: orderModel.StatusConfirmed}, nil
		},
	}

	resp, _ := doAdminRequest(t, newAdminApp(store, &fakeNotifier{}),
		"PATCH", "/api/admin/open-orders/ord-1/confirm",
		fiber.Map{"chef_id": 4, "delivery_time_slot": "12:00 - 14:00"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestConfirmOrderAlreadyConfirmedConflicts(t *testing.T) {
	store := &fakeOpenOrderStore{
		confirmOrderFn: func(string, *uint, string) (*orderModel.Order, error) {
			return nil, &orderstore.StateError{Expected: orderModel.StatusOpen}
		},
	}
	notifier := &fakeNotifier{}

	resp, envelope := doAdminRequest(t, newAdminApp(store, notifier),
		"PATCH", "/api/admin/open-orders/ord-1/confirm", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Order is not in Open status", envelope.Message)
	assert.Empty(t, notifier.userNotes)
}

func TestConfirmOrderNoChefAvailable(t *testing.T) {
	store := &fakeOpenOrderStore{
		confirmOrderFn: func(string, *uint, string) (*orderModel.Order, error) {
			return nil, orderstore.ErrNoChefAvailable
		},
	}

	resp, envelope := doAdminRequest(t, newAdminApp(store, &fakeNotifier{}),
		"PATCH", "/api/admin/open-orders/ord-1/confirm", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, orderstore.ErrNoChefAvailable.Error(), envelope.Message)
}

func TestConfirmOrderUnknownOrder(t *testing.T) {
	resp, _ := doAdminRequest(t, newAdminApp(&fakeOpenOrderStore{}, &fakeNotifier{}),
		"PATCH", "/api/admin/open-orders/missing/confirm", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAssignChefRequiresChefID(t *testing.T) {
	resp, envelope := doAdminRequest(t, newAdminApp(&fakeOpenOrderStore{}, &fakeNotifier{}),
		"PATCH", "/api/admin/open-orders/ord-1/assign", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "chef_id is required", envelope.Message)
}

func TestAssignChefUnknownChef(t *testing.T) {
	store := &fakeOpenOrderStore{
		assignChefFn: func(string, uint) error { return orderstore.ErrChefNotFound },
	}

	resp, _ := doAdminRequest(t, newAdminApp(store, &fakeNotifier{}),
		"PATCH", "/api/admin/open-orders/ord-1/assign", fiber.Map{"chef_id": 99})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAssignChefHappyPath(t *testing.T) {
	store := &fakeOpenOrderStore{
		assignChefFn: func(orderID string, chefID uint) error {
			assert.Equal(t, "ord-1", orderID)
			assert.Equal(t, uint(4), chefID)
			return nil
		},
	}

	resp, envelope := doAdminRequest(t, newAdminApp(store, &fakeNotifier{}),
		"PATCH", "/api/admin/open-orders/ord-1/assign", fiber.Map{"chef_id": 4})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Chef assigned successfully", envelope.Message)
}

func TestListOpenOrdersDefaultsToOpen(t *testing.T) {
	var seenStatus string
	store := &fakeOpenOrderStore{
		ordersFn: func(status string, limit, offset int) ([]orderModel.Order, int64, error) {
			seenStatus = status
			return nil, 0, nil
		},
	}
	app := newAdminApp(store, &fakeNotifier{})

	resp, _ := doAdminRequest(t, app, "GET", "/api/admin/open-orders", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, string(orderModel.StatusOpen), seenStatus)

	// "all" lifts the filter entirely.
	resp, _ = doAdminRequest(t, app, "GET", "/api/admin/open-orders?status=all", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "", seenStatus)
}

func TestListOpenOrdersUnknownStatus(t *testing.T) {
	resp, envelope := doAdminRequest(t, newAdminApp(&fakeOpenOrderStore{}, &fakeNotifier{}),
		"GET", "/api/admin/open-orders?status=Shipped", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unknown order status", envelope.Message)
}

func TestSuperAdminMayAccessBackOffice(t *testing.T) {
	app := newAdminApp(&fakeOpenOrderStore{ordersFn: func(string, int, int) ([]orderModel.Order, int64, error) {
		return nil, 0, nil
	}}, &fakeNotifier{})

	token, err := middleware.GenerateToken(1, "root@fitchef.in", constants.RoleSuperAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/open-orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
