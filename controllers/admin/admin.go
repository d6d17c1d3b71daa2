package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/services/notification"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
	orderTypes "fitchef-backend/types/order"
	"fitchef-backend/utils"
)

// openOrderStore is the slice of the order store the admin transition
// handlers need.
type openOrderStore interface {
	ConfirmOrder(orderID string, chefID *uint, deliveryTimeSlot string) (*orderModel.Order, error)
	AssignChef(orderID string, chefID uint) error
	AdminOrders(status string, limit, offset int) ([]orderModel.Order, int64, error)
	AdminOrderDetail(orderID string) (*orderModel.Order, error)
}

// notifier appends milestone notifications; appends are best effort.
type notifier interface {
	NotifyUser(userID uint, orderID, message string)
}

// AdminController handles the back-office: the open-order pipeline plus
// CRUD over customers, chefs, dishes, agents, leads and legacy orders.
type AdminController struct {
	DB       *gorm.DB
	Store    openOrderStore
	Notifier notifier
	Logger   *logger.AsyncLogger
}

// NewAdminController creates a new admin controller
func NewAdminController(db *gorm.DB, store openOrderStore, notifier notifier, asyncLogger *logger.AsyncLogger) *AdminController {
	return &AdminController{
		DB:       db,
		Store:    store,
		Notifier: notifier,
		Logger:   asyncLogger,
	}
}

func (ac *AdminController) logAPIRequest(c *fiber.Ctx) {
	if ac.Logger != nil {
		ac.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (ac *AdminController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	ac.logAPIRequest(c)
	return result
}

// ListOpenOrders returns the order pipeline, default filtered to Open.
func (ac *AdminController) ListOpenOrders(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePagination(c, 10)

	status := c.Query("status", string(orderModel.StatusOpen))
	if status != "all" && !orderModel.Status(status).IsValid() {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown order status",
			Data:    nil,
		})
	}
	if status == "all" {
		status = ""
	}

	orders, total, err := ac.Store.AdminOrders(status, limit, offset)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Data: types.PagedResponse{
			Data:  orders,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

// GetOpenOrder returns one order with all associations.
func (ac *AdminController) GetOpenOrder(c *fiber.Ctx) error {
	o, err := ac.Store.AdminOrderDetail(c.Params("id"))
	if err != nil {
		if errors.Is(err, orderstore.ErrOrderNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch order", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Data:    o,
	})
}

// ConfirmOrder moves an Open order to Confirmed: snapshots the delivery
// address, assigns a chef, and notifies the customer.
func (ac *AdminController) ConfirmOrder(c *fiber.Ctx) error {
	var req orderTypes.ConfirmOrderRequest
	// Empty body is allowed: the first available chef is assigned.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.Error("Failed to parse request body", err)
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request body",
				Data:    nil,
			})
		}
	}

	orderID := c.Params("id")
	confirmed, err := ac.Store.ConfirmOrder(orderID, req.ChefID, req.DeliveryTimeSlot)
	if err != nil {
		return ac.orderErrorResponse(c, err, "Failed to confirm order")
	}

	ac.Notifier.NotifyUser(confirmed.UserID, confirmed.ID, notification.OrderConfirmedMessage())

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order confirmed successfully",
		Data:    confirmed,
	})
}

// AssignChef reassigns the chef on a Confirmed order.
func (ac *AdminController) AssignChef(c *fiber.Ctx) error {
	var req orderTypes.AssignChefRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	if err := ac.Store.AssignChef(c.Params("id"), req.ChefID); err != nil {
		return ac.orderErrorResponse(c, err, "Failed to assign chef")
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Chef assigned successfully",
		Data:    nil,
	})
}

// orderErrorResponse maps order store errors onto HTTP statuses.
func (ac *AdminController) orderErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, orderstore.ErrOrderNotFound),
		errors.Is(err, orderstore.ErrChefNotFound),
		errors.Is(err, orderstore.ErrUserNotFound):
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: err.Error(),
			Data:    nil,
		})
	case errors.Is(err, orderstore.ErrInvalidState):
		return ac.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: err.Error(),
			Data:    nil,
		})
	case errors.Is(err, orderstore.ErrNoChefAvailable):
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}
	logger.Error(fallback, err)
	return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: fallback,
		Data:    nil,
	})
}
