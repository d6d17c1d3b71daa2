package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fitchef-backend/logger"
	"fitchef-backend/middleware"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
	orderTypes "fitchef-backend/types/order"
	"fitchef-backend/utils"
)

// orderStore is the slice of the order store the customer handlers need.
type orderStore interface {
	CreateOrder(userID uint, items []orderstore.ItemInput, requestedDeliveryDate string) (*orderModel.Order, error)
	UserOrders(userID uint, status string, limit, offset int) ([]orderModel.Order, int64, error)
	UserOrderDetail(userID uint, orderID string) (*orderModel.Order, error)
	UserDeliveredOrders(userID uint, limit, offset int) ([]orderModel.Order, int64, error)
}

// OrderController handles the customer-facing order endpoints.
type OrderController struct {
	Store  orderStore
	Logger *logger.AsyncLogger
}

// NewOrderController creates a new order controller
func NewOrderController(store orderStore, asyncLogger *logger.AsyncLogger) *OrderController {
	return &OrderController{
		Store:  store,
		Logger: asyncLogger,
	}
}

func (oc *OrderController) logAPIRequest(c *fiber.Ctx) {
	if oc.Logger != nil {
		oc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (oc *OrderController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	oc.logAPIRequest(c)
	return result
}

// CreateOrder places a new order for the signed-in customer. Prices are
// captured now; later catalog edits do not change this order.
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return oc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var req orderTypes.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return oc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return oc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	items := make([]orderstore.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orderstore.ItemInput{DishID: it.DishID, Quantity: it.Quantity})
	}

	created, err := oc.Store.CreateOrder(userID, items, req.RequestedDeliveryDate)
	if err != nil {
		var dishErr *orderstore.DishError
		switch {
		case errors.As(err, &dishErr),
			errors.Is(err, orderstore.ErrEmptyItems),
			errors.Is(err, orderstore.ErrInvalidQuantity),
			errors.Is(err, orderstore.ErrInvalidDeliveryDate):
			return oc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
				Data:    nil,
			})
		}
		logger.Error("Failed to create order", err)
		return oc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order",
			Data:    nil,
		})
	}

	return oc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Order placed successfully",
		Data:    created,
	})
}

// ListOrders returns the customer's orders, newest first. An optional
// status query narrows the list.
func (oc *OrderController) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return oc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	page, limit, offset := utils.ParsePagination(c, 10)
	status := c.Query("status")
	if status != "" && !orderModel.Status(status).IsValid() {
		return oc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown order status",
			Data:    nil,
		})
	}

	orders, total, err := oc.Store.UserOrders(userID, status, limit, offset)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return oc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Data:    nil,
		})
	}

	return oc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
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

// GetOrder returns one of the customer's own orders. Someone else's order
// id reads as not found.
func (oc *OrderController) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return oc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	o, err := oc.Store.UserOrderDetail(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, orderstore.ErrOrderNotFound) {
			return oc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch order", err)
		return oc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
			Data:    nil,
		})
	}

	return oc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Data:    o,
	})
}

// DeliveredOrders is the customer's completed order history.
func (oc *OrderController) DeliveredOrders(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return oc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	page, limit, offset := utils.ParsePagination(c, 10)
	orders, total, err := oc.Store.UserDeliveredOrders(userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list delivered orders", err)
		return oc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Data:    nil,
		})
	}

	return oc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Delivered orders fetched successfully",
		Data: types.PagedResponse{
			Data:  orders,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}
