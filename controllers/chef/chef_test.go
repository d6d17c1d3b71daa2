package chef

import (
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
	"fitchef-backend/models/dish"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/services/notification"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
)

// --- Fake order store ---

type fakeChefStore struct {
	markReadyFn       func(orderID string, chefID uint) (*orderModel.Order, error)
	openOrdersFn      func(chefID uint) ([]orderstore.ChefOrderView, error)
	completedOrdersFn func(chefID uint, w orderstore.Window) ([]orderstore.ChefOrderView, error)
	firstAdminIDFn    func() (uint, error)
}

func (f *fakeChefStore) MarkReady(orderID string, chefID uint) (*orderModel.Order, error) {
	if f.markReadyFn != nil {
		return f.markReadyFn(orderID, chefID)
	}
	return nil, orderstore.ErrOrderNotFound
}

func (f *fakeChefStore) ChefOpenOrders(chefID uint) ([]orderstore.ChefOrderView, error) {
	if f.openOrdersFn != nil {
		return f.openOrdersFn(chefID)
	}
	return []orderstore.ChefOrderView{}, nil
}

func (f *fakeChefStore) ChefCompletedOrders(chefID uint, w orderstore.Window) ([]orderstore.ChefOrderView, error) {
	if f.completedOrdersFn != nil {
		return f.completedOrdersFn(chefID, w)
	}
	return []orderstore.ChefOrderView{}, nil
}

func (f *fakeChefStore) FirstAdminID() (uint, error) {
	if f.firstAdminIDFn != nil {
		return f.firstAdminIDFn()
	}
	return 1, nil
}

// --- Recording notifier ---

type note struct {
	recipient uint
	orderID   string
	message   string
}

type fakeNotifier struct {
	userNotes  []note
	adminNotes []note
}

func (f *fakeNotifier) NotifyUser(userID uint, orderID, message string) {
	f.userNotes = append(f.userNotes, note{userID, orderID, message})
}

func (f *fakeNotifier) NotifyAdmin(adminID uint, orderID, message string) {
	f.adminNotes = append(f.adminNotes, note{adminID, orderID, message})
}

// --- Helpers ---

const testChefID uint = 7

func newChefApp(store chefOrderStore, n notifier) *fiber.App {
	cc := NewChefController(nil, store, n, nil)
	app := fiber.New()
	grp := app.Group("/api/chef", middleware.Authenticate(), middleware.RequireRole(constants.RoleChef))
	grp.Get("/orders/open", cc.OpenOrders)
	grp.Get("/orders/completed", cc.CompletedOrders)
	grp.Patch("/orders/:id/ready", cc.MarkReady)
	return app
}

func doChefRequest(t *testing.T, app *fiber.App, method, path string) (*http.Response, types.ApiResponse) {
	t.Helper()

	token, err := middleware.GenerateToken(testChefID, "chef@fitchef.in", constants.RoleChef)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope types.ApiResponse
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}

func readyOrder(orderID string, userID uint) *orderModel.Order {
	return &orderModel.Order{
		ID:     orderID,
		UserID: userID,
		Status: orderModel.StatusReadyForDispatch,
		Items: []orderModel.OrderItem{
			{Dish: dish.Dish{Name: "Paneer Power Bowl"}},
			{Dish: dish.Dish{Name: "Dal Tadka"}},
		},
	}
}

// --- Tests ---

func TestMarkReadyHappyPath(t *testing.T) {
	const orderID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	store := &fakeChefStore{
		markReadyFn: func(id string, chefID uint) (*orderModel.Order, error) {
			assert.Equal(t, orderID, id)
			assert.Equal(t, testChefID, chefID)
			return readyOrder(orderID, 11), nil
		},
		firstAdminIDFn: func() (uint, error) { return 3, nil },
	}
	notifier := &fakeNotifier{}

	resp, envelope := doChefRequest(t, newChefApp(store, notifier), "PATCH", "/api/chef/orders/"+orderID+"/ready")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Order marked as ready for dispatch", envelope.Message)

	require.Len(t, notifier.userNotes, 1)
	assert.Equal(t, uint(11), notifier.userNotes[0].recipient)
	assert.Equal(t, orderID, notifier.userNotes[0].orderID)
	assert.Equal(t,
		notification.OrderReadyUserMessage("Paneer Power Bowl, Dal Tadka"),
		notifier.userNotes[0].message)

	require.Len(t, notifier.adminNotes, 1)
	assert.Equal(t, uint(3), notifier.adminNotes[0].recipient)
	assert.Equal(t,
		notification.OrderReadyAdminMessage(orderID, "Paneer Power Bowl, Dal Tadka"),
		notifier.adminNotes[0].message)
}

func TestMarkReadySomeoneElsesOrderReadsAsNotFound(t *testing.T) {
	store := &fakeChefStore{
		markReadyFn: func(string, uint) (*orderModel.Order, error) {
			return nil, orderstore.ErrOrderNotFound
		},
	}
	notifier := &fakeNotifier{}

	resp, envelope := doChefRequest(t, newChefApp(store, notifier), "PATCH", "/api/chef/orders/other/ready")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Order not found", envelope.Message)
	assert.Empty(t, notifier.userNotes)
	assert.Empty(t, notifier.adminNotes)
}

func TestMarkReadyWrongStatusConflicts(t *testing.T) {
	store := &fakeChefStore{
		markReadyFn: func(string, uint) (*orderModel.Order, error) {
			return nil, &orderstore.StateError{Expected: orderModel.StatusConfirmed}
		},
	}
	notifier := &fakeNotifier{}

	resp, envelope := doChefRequest(t, newChefApp(store, notifier), "PATCH", "/api/chef/orders/x/ready")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Order is not in Confirmed status", envelope.Message)
	assert.Empty(t, notifier.userNotes)
}

func TestMarkReadyWithoutAdminStillSucceeds(t *testing.T) {
	store := &fakeChefStore{
		markReadyFn: func(id string, chefID uint) (*orderModel.Order, error) {
			return readyOrder(id, 11), nil
		},
		firstAdminIDFn: func() (uint, error) { return 0, orderstore.ErrUserNotFound },
	}
	notifier := &fakeNotifier{}

	resp, _ := doChefRequest(t, newChefApp(store, notifier), "PATCH", "/api/chef/orders/x/ready")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, notifier.userNotes, 1)
	assert.Empty(t, notifier.adminNotes, "no admin on record means no admin notification")
}

func TestOpenOrdersScopedToSignedInChef(t *testing.T) {
	store := &fakeChefStore{
		openOrdersFn: func(chefID uint) ([]orderstore.ChefOrderView, error) {
			assert.Equal(t, testChefID, chefID)
			return []orderstore.ChefOrderView{{ID: "a"}, {ID: "b"}}, nil
		},
	}

	resp, envelope := doChefRequest(t, newChefApp(store, &fakeNotifier{}), "GET", "/api/chef/orders/open")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Orders fetched successfully", envelope.Message)
}

func TestCompletedOrdersWindowFilter(t *testing.T) {
	var seen orderstore.Window
	store := &fakeChefStore{
		completedOrdersFn: func(chefID uint, w orderstore.Window) ([]orderstore.ChefOrderView, error) {
			seen = w
			return nil, nil
		},
	}
	app := newChefApp(store, &fakeNotifier{})

	resp, _ := doChefRequest(t, app, "GET", "/api/chef/orders/completed?filter=week")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, orderstore.WindowWeek, seen)

	// Unknown filters degrade to the unwindowed list.
	resp, _ = doChefRequest(t, app, "GET", "/api/chef/orders/completed?filter=fortnight")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, orderstore.WindowAll, seen)
}

func TestChefRoutesRejectOtherRoles(t *testing.T) {
	app := newChefApp(&fakeChefStore{}, &fakeNotifier{})

	token, err := middleware.GenerateToken(5, "user@example.com", constants.RoleCustomer)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/chef/orders/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
