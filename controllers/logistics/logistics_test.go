package logistics

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
	agentModel "fitchef-backend/models/agent"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/services/notification"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
)

// --- Fake order store ---

type fakeLogisticsStore struct {
	assignAgentFn     func(orderID string, agentID uint) error
	outForDeliveryFn  func(orderID string) (*orderModel.Order, *agentModel.Agent, error)
	markDeliveredFn   func(orderID string) error
	openOrdersFn      func() ([]orderstore.LogisticsOrderView, error)
	readyOrdersFn     func() ([]orderstore.LogisticsOrderView, error)
	outOrdersFn       func() ([]orderstore.LogisticsOrderView, error)
	deliveredOrdersFn func(w orderstore.Window) ([]orderstore.LogisticsOrderView, error)
	overviewFn        func() (*orderstore.OverviewStats, error)
	listAgentsFn      func() ([]agentModel.Agent, error)
	firstAdminIDFn    func() (uint, error)
}

func (f *fakeLogisticsStore) AssignAgent(orderID string, agentID uint) error {
	if f.assignAgentFn != nil {
		return f.assignAgentFn(orderID, agentID)
	}
	return orderstore.ErrOrderNotFound
}

func (f *fakeLogisticsStore) OutForDelivery(orderID string) (*orderModel.Order, *agentModel.Agent, error) {
	if f.outForDeliveryFn != nil {
		return f.outForDeliveryFn(orderID)
	}
	return nil, nil, orderstore.ErrOrderNotFound
}

func (f *fakeLogisticsStore) MarkDelivered(orderID string) error {
	if f.markDeliveredFn != nil {
		return f.markDeliveredFn(orderID)
	}
	return orderstore.ErrOrderNotFound
}

func (f *fakeLogisticsStore) LogisticsOpenOrders() ([]orderstore.LogisticsOrderView, error) {
	if f.openOrdersFn != nil {
		return f.openOrdersFn()
	}
	return []orderstore.LogisticsOrderView{}, nil
}

func (f *fakeLogisticsStore) LogisticsReadyOrders() ([]orderstore.LogisticsOrderView, error) {
	if f.readyOrdersFn != nil {
		return f.readyOrdersFn()
	}
	return []orderstore.LogisticsOrderView{}, nil
}

func (f *fakeLogisticsStore) LogisticsOutOrders() ([]orderstore.LogisticsOrderView, error) {
	if f.outOrdersFn != nil {
		return f.outOrdersFn()
	}
	return []orderstore.LogisticsOrderView{}, nil
}

func (f *fakeLogisticsStore) LogisticsDeliveredOrders(w orderstore.Window) ([]orderstore.LogisticsOrderView, error) {
	if f.deliveredOrdersFn != nil {
		return f.deliveredOrdersFn(w)
	}
	return []orderstore.LogisticsOrderView{}, nil
}

func (f *fakeLogisticsStore) Overview() (*orderstore.OverviewStats, error) {
	if f.overviewFn != nil {
		return f.overviewFn()
	}
	return &orderstore.OverviewStats{}, nil
}

func (f *fakeLogisticsStore) ListAgents() ([]agentModel.Agent, error) {
	if f.listAgentsFn != nil {
		return f.listAgentsFn()
	}
	return []agentModel.Agent{}, nil
}

func (f *fakeLogisticsStore) FirstAdminID() (uint, error) {
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

func newLogisticsApp(store logisticsOrderStore, n notifier) *fiber.App {
	lc := NewLogisticsController(store, n, nil)
	app := fiber.New()
	grp := app.Group("/api/logistics", middleware.Authenticate(), middleware.RequireRole(constants.RoleLogistics))
	grp.Get("/orders/open", lc.OpenOrders)
	grp.Get("/orders/ready", lc.ReadyOrders)
	grp.Get("/orders/out", lc.OutOrders)
	grp.Get("/orders/delivered", lc.DeliveredOrders)
	grp.Put("/orders/:id/assign-agent", lc.AssignAgent)
	grp.Put("/orders/:id/out-for-delivery", lc.OutForDelivery)
	grp.Put("/orders/:id/delivered", lc.MarkDelivered)
	grp.Get("/overview", lc.Overview)
	grp.Get("/agents", lc.Agents)
	return app
}

func doLogisticsRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, types.ApiResponse) {
	t.Helper()

	token, err := middleware.GenerateToken(2, "logistics@fitchef.in", constants.RoleLogistics)
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

func TestAssignAgentHappyPath(t *testing.T) {
	store := &fakeLogisticsStore{
		assignAgentFn: func(orderID string, agentID uint) error {
			assert.Equal(t, "ord-1", orderID)
			assert.Equal(t, uint(4), agentID)
			return nil
		},
	}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, &fakeNotifier{}),
		"PUT", "/api/logistics/orders/ord-1/assign-agent", fiber.Map{"agent_id": 4})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Agent assigned successfully", envelope.Message)
}

func TestAssignAgentRequiresAgentID(t *testing.T) {
	resp, envelope := doLogisticsRequest(t, newLogisticsApp(&fakeLogisticsStore{}, &fakeNotifier{}),
		"PUT", "/api/logistics/orders/ord-1/assign-agent", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "agent_id is required", envelope.Message)
}

func TestAssignAgentUnknownAgent(t *testing.T) {
	store := &fakeLogisticsStore{
		assignAgentFn: func(string, uint) error { return orderstore.ErrAgentNotFound },
	}

	resp, _ := doLogisticsRequest(t, newLogisticsApp(store, &fakeNotifier{}),
		"PUT", "/api/logistics/orders/ord-1/assign-agent", fiber.Map{"agent_id": 99})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAssignAgentWrongStatusConflicts(t *testing.T) {
	store := &fakeLogisticsStore{
		assignAgentFn: func(string, uint) error {
			return &orderstore.StateError{
				Expected: orderModel.StatusReadyForDispatch,
				Message:  "Order must be Ready for Dispatch to assign agent",
			}
		},
	}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, &fakeNotifier{}),
		"PUT", "/api/logistics/orders/ord-1/assign-agent", fiber.Map{"agent_id": 4})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Order must be Ready for Dispatch to assign agent", envelope.Message)
}

func TestOutForDeliveryHappyPath(t *testing.T) {
	const orderID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	store := &fakeLogisticsStore{
		outForDeliveryFn: func(id string) (*orderModel.Order, *agentModel.Agent, error) {
			assert.Equal(t, orderID, id)
			o := &orderModel.Order{ID: orderID, UserID: 11, Status: orderModel.StatusOutForDelivery}
			return o, &agentModel.Agent{Name: "Ravi Kumar"}, nil
		},
		firstAdminIDFn: func() (uint, error) { return 3, nil },
	}
	notifier := &fakeNotifier{}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, notifier),
		"PUT", "/api/logistics/orders/"+orderID+"/out-for-delivery", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Order is out for delivery", envelope.Message)

	require.Len(t, notifier.userNotes, 1)
	assert.Equal(t, uint(11), notifier.userNotes[0].recipient)
	assert.Equal(t, notification.OutForDeliveryUserMessage(orderID), notifier.userNotes[0].message)

	require.Len(t, notifier.adminNotes, 1)
	assert.Equal(t, uint(3), notifier.adminNotes[0].recipient)
	assert.Equal(t, notification.OutForDeliveryAdminMessage(orderID, "Ravi Kumar"), notifier.adminNotes[0].message)
}

func TestOutForDeliveryWithoutAgentAssigned(t *testing.T) {
	store := &fakeLogisticsStore{
		outForDeliveryFn: func(string) (*orderModel.Order, *agentModel.Agent, error) {
			return nil, nil, orderstore.ErrNoAgentAssigned
		},
	}
	notifier := &fakeNotifier{}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, notifier),
		"PUT", "/api/logistics/orders/ord-1/out-for-delivery", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Assign a delivery agent first", envelope.Message)
	assert.Empty(t, notifier.userNotes)
}

func TestOutForDeliveryWrongStatusConflicts(t *testing.T) {
	store := &fakeLogisticsStore{
		outForDeliveryFn: func(string) (*orderModel.Order, *agentModel.Agent, error) {
			return nil, nil, &orderstore.StateError{
				Expected: orderModel.StatusReadyForDispatch,
				Message:  "Order must be Ready for Dispatch",
			}
		},
	}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, &fakeNotifier{}),
		"PUT", "/api/logistics/orders/ord-1/out-for-delivery", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Order must be Ready for Dispatch", envelope.Message)
}

func TestMarkDeliveredHappyPath(t *testing.T) {
	store := &fakeLogisticsStore{
		markDeliveredFn: func(orderID string) error {
			assert.Equal(t, "ord-1", orderID)
			return nil
		},
	}
	notifier := &fakeNotifier{}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, notifier),
		"PUT", "/api/logistics/orders/ord-1/delivered", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Order marked as delivered", envelope.Message)

	// Delivery completion appends no notification; the order view itself
	// is the confirmation.
	assert.Empty(t, notifier.userNotes)
	assert.Empty(t, notifier.adminNotes)
}

func TestMarkDeliveredWrongStatusConflicts(t *testing.T) {
	store := &fakeLogisticsStore{
		markDeliveredFn: func(string) error {
			return &orderstore.StateError{
				Expected: orderModel.StatusOutForDelivery,
				Message:  "Order must be Out for Delivery to mark delivered",
			}
		},
	}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, &fakeNotifier{}),
		"PUT", "/api/logistics/orders/ord-1/delivered", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Order must be Out for Delivery to mark delivered", envelope.Message)
}

func TestDeliveredOrdersWindowFilter(t *testing.T) {
	var seen orderstore.Window
	store := &fakeLogisticsStore{
		deliveredOrdersFn: func(w orderstore.Window) ([]orderstore.LogisticsOrderView, error) {
			seen = w
			return nil, nil
		},
	}
	app := newLogisticsApp(store, &fakeNotifier{})

	resp, _ := doLogisticsRequest(t, app, "GET", "/api/logistics/orders/delivered?filter=today", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, orderstore.WindowToday, seen)
}

func TestOverview(t *testing.T) {
	avg := 42.5
	store := &fakeLogisticsStore{
		overviewFn: func() (*orderstore.OverviewStats, error) {
			return &orderstore.OverviewStats{
				OpenCount:            2,
				ReadyCount:           1,
				DeliveredTodayCount:  3,
				AvgDeliveryMinutes:   &avg,
				TotalDeliveredOrders: 40,
			}, nil
		},
	}

	resp, envelope := doLogisticsRequest(t, newLogisticsApp(store, &fakeNotifier{}),
		"GET", "/api/logistics/overview", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), stats["open_count"])
	assert.Equal(t, 42.5, stats["avg_delivery_minutes"])
}
