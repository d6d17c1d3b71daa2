package logistics

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fitchef-backend/logger"
	agentModel "fitchef-backend/models/agent"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/services/notification"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
	orderTypes "fitchef-backend/types/order"
	"fitchef-backend/utils"
)

// logisticsOrderStore is the slice of the order store the dispatch
// handlers need.
type logisticsOrderStore interface {
	AssignAgent(orderID string, agentID uint) error
	OutForDelivery(orderID string) (*orderModel.Order, *agentModel.Agent, error)
	MarkDelivered(orderID string) error
	LogisticsOpenOrders() ([]orderstore.LogisticsOrderView, error)
	LogisticsReadyOrders() ([]orderstore.LogisticsOrderView, error)
	LogisticsOutOrders() ([]orderstore.LogisticsOrderView, error)
	LogisticsDeliveredOrders(w orderstore.Window) ([]orderstore.LogisticsOrderView, error)
	Overview() (*orderstore.OverviewStats, error)
	ListAgents() ([]agentModel.Agent, error)
	FirstAdminID() (uint, error)
}

// notifier appends milestone notifications; appends are best effort.
type notifier interface {
	NotifyUser(userID uint, orderID, message string)
	NotifyAdmin(adminID uint, orderID, message string)
}

// LogisticsController handles dispatch: agent assignment, the
// out-for-delivery and delivered transitions, and the stage lists.
type LogisticsController struct {
	Store    logisticsOrderStore
	Notifier notifier
	Logger   *logger.AsyncLogger
}

// NewLogisticsController creates a new logistics controller
func NewLogisticsController(store logisticsOrderStore, notifier notifier, asyncLogger *logger.AsyncLogger) *LogisticsController {
	return &LogisticsController{
		Store:    store,
		Notifier: notifier,
		Logger:   asyncLogger,
	}
}

func (lc *LogisticsController) logAPIRequest(c *fiber.Ctx) {
	if lc.Logger != nil {
		lc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (lc *LogisticsController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	lc.logAPIRequest(c)
	return result
}

// AssignAgent sets the delivery agent on a Ready for Dispatch order.
func (lc *LogisticsController) AssignAgent(c *fiber.Ctx) error {
	var req orderTypes.AssignAgentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return lc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return lc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	if err := lc.Store.AssignAgent(c.Params("id"), req.AgentID); err != nil {
		return lc.orderErrorResponse(c, err, "Failed to assign agent")
	}

	return lc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Agent assigned successfully",
		Data:    nil,
	})
}

// OutForDelivery dispatches a Ready for Dispatch order that has an agent
// assigned, and notifies the customer and the first admin on record.
func (lc *LogisticsController) OutForDelivery(c *fiber.Ctx) error {
	dispatched, agent, err := lc.Store.OutForDelivery(c.Params("id"))
	if err != nil {
		return lc.orderErrorResponse(c, err, "Failed to dispatch order")
	}

	lc.Notifier.NotifyUser(dispatched.UserID, dispatched.ID,
		notification.OutForDeliveryUserMessage(dispatched.ID))
	if adminID, err := lc.Store.FirstAdminID(); err == nil {
		agentName := "Unassigned"
		if agent != nil {
			agentName = agent.Name
		}
		lc.Notifier.NotifyAdmin(adminID, dispatched.ID,
			notification.OutForDeliveryAdminMessage(dispatched.ID, agentName))
	} else {
		logger.Error("No admin found for dispatch notification", err)
	}

	return lc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order is out for delivery",
		Data:    dispatched,
	})
}

// MarkDelivered completes an Out for Delivery order. No notification is
// appended for this transition; the order view itself is the confirmation.
func (lc *LogisticsController) MarkDelivered(c *fiber.Ctx) error {
	if err := lc.Store.MarkDelivered(c.Params("id")); err != nil {
		return lc.orderErrorResponse(c, err, "Failed to mark order delivered")
	}

	return lc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order marked as delivered",
		Data:    nil,
	})
}

// OpenOrders lists confirmed orders still being prepared.
func (lc *LogisticsController) OpenOrders(c *fiber.Ctx) error {
	orders, err := lc.Store.LogisticsOpenOrders()
	return lc.listResponse(c, orders, err)
}

// ReadyOrders lists orders waiting for agent assignment and dispatch.
func (lc *LogisticsController) ReadyOrders(c *fiber.Ctx) error {
	orders, err := lc.Store.LogisticsReadyOrders()
	return lc.listResponse(c, orders, err)
}

// OutOrders lists orders currently on the road.
func (lc *LogisticsController) OutOrders(c *fiber.Ctx) error {
	orders, err := lc.Store.LogisticsOutOrders()
	return lc.listResponse(c, orders, err)
}

// DeliveredOrders lists completed deliveries, optionally windowed.
func (lc *LogisticsController) DeliveredOrders(c *fiber.Ctx) error {
	w := orderstore.ParseWindow(c.Query("filter"))
	orders, err := lc.Store.LogisticsDeliveredOrders(w)
	return lc.listResponse(c, orders, err)
}

func (lc *LogisticsController) listResponse(c *fiber.Ctx, orders []orderstore.LogisticsOrderView, err error) error {
	if err != nil {
		logger.Error("Failed to list logistics orders", err)
		return lc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Data:    nil,
		})
	}

	return lc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Data:    orders,
	})
}

// Overview returns the dispatch dashboard counters.
func (lc *LogisticsController) Overview(c *fiber.Ctx) error {
	stats, err := lc.Store.Overview()
	if err != nil {
		logger.Error("Failed to compute logistics overview", err)
		return lc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to compute overview",
			Data:    nil,
		})
	}

	return lc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Overview computed successfully",
		Data:    stats,
	})
}

// Agents feeds the assignment dropdown.
func (lc *LogisticsController) Agents(c *fiber.Ctx) error {
	agents, err := lc.Store.ListAgents()
	if err != nil {
		logger.Error("Failed to list agents", err)
		return lc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch agents",
			Data:    nil,
		})
	}

	return lc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Agents fetched successfully",
		Data:    agents,
	})
}

// orderErrorResponse maps order store errors onto HTTP statuses. The two
// out-for-delivery preconditions surface as distinct messages.
func (lc *LogisticsController) orderErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, orderstore.ErrOrderNotFound),
		errors.Is(err, orderstore.ErrAgentNotFound):
		return lc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: err.Error(),
			Data:    nil,
		})
	case errors.Is(err, orderstore.ErrNoAgentAssigned):
		return lc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Assign a delivery agent first",
			Data:    nil,
		})
	case errors.Is(err, orderstore.ErrInvalidState):
		return lc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: err.Error(),
			Data:    nil,
		})
	}
	logger.Error(fallback, err)
	return lc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: fallback,
		Data:    nil,
	})
}
