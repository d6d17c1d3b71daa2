package chef

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	"fitchef-backend/middleware"
	chefModel "fitchef-backend/models/chef"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/services/notification"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
	"fitchef-backend/utils"
)

// chefOrderStore is the slice of the order store the chef handlers need.
type chefOrderStore interface {
	MarkReady(orderID string, chefID uint) (*orderModel.Order, error)
	ChefOpenOrders(chefID uint) ([]orderstore.ChefOrderView, error)
	ChefCompletedOrders(chefID uint, w orderstore.Window) ([]orderstore.ChefOrderView, error)
	FirstAdminID() (uint, error)
}

// notifier appends milestone notifications; appends are best effort.
type notifier interface {
	NotifyUser(userID uint, orderID, message string)
	NotifyAdmin(adminID uint, orderID, message string)
}

// ChefController handles the chef's cooking queue.
type ChefController struct {
	DB       *gorm.DB
	Store    chefOrderStore
	Notifier notifier
	Logger   *logger.AsyncLogger
}

// NewChefController creates a new chef controller
func NewChefController(db *gorm.DB, store chefOrderStore, notifier notifier, asyncLogger *logger.AsyncLogger) *ChefController {
	return &ChefController{
		DB:       db,
		Store:    store,
		Notifier: notifier,
		Logger:   asyncLogger,
	}
}

func (cc *ChefController) logAPIRequest(c *fiber.Ctx) {
	if cc.Logger != nil {
		cc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (cc *ChefController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	cc.logAPIRequest(c)
	return result
}

// OpenOrders returns the chef's confirmed, admin-approved orders.
func (cc *ChefController) OpenOrders(c *fiber.Ctx) error {
	chefID, ok := middleware.ActorID(c)
	if !ok {
		return cc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	orders, err := cc.Store.ChefOpenOrders(chefID)
	if err != nil {
		logger.Error("Failed to list chef orders", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Data:    nil,
		})
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Data:    orders,
	})
}

// CompletedOrders returns what the chef already prepared, optionally
// windowed to today, the trailing week or the trailing month.
func (cc *ChefController) CompletedOrders(c *fiber.Ctx) error {
	chefID, ok := middleware.ActorID(c)
	if !ok {
		return cc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	w := orderstore.ParseWindow(c.Query("filter"))
	orders, err := cc.Store.ChefCompletedOrders(chefID, w)
	if err != nil {
		logger.Error("Failed to list completed orders", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Data:    nil,
		})
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Completed orders fetched successfully",
		Data:    orders,
	})
}

// MarkReady flags one of the chef's Confirmed orders as Ready for
// Dispatch and notifies the customer and the first admin on record. An
// order belonging to another chef reads as not found.
func (cc *ChefController) MarkReady(c *fiber.Ctx) error {
	chefID, ok := middleware.ActorID(c)
	if !ok {
		return cc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	ready, err := cc.Store.MarkReady(c.Params("id"), chefID)
	if err != nil {
		switch {
		case errors.Is(err, orderstore.ErrOrderNotFound):
			return cc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		case errors.Is(err, orderstore.ErrInvalidState):
			return cc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: err.Error(),
				Data:    nil,
			})
		}
		logger.Error("Failed to mark order ready", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to mark order ready",
			Data:    nil,
		})
	}

	dishes := ready.DishSummary()
	cc.Notifier.NotifyUser(ready.UserID, ready.ID, notification.OrderReadyUserMessage(dishes))
	if adminID, err := cc.Store.FirstAdminID(); err == nil {
		cc.Notifier.NotifyAdmin(adminID, ready.ID, notification.OrderReadyAdminMessage(ready.ID, dishes))
	} else {
		logger.Error("No admin found for ready notification", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order marked as ready for dispatch",
		Data:    ready,
	})
}

// Profile returns the signed-in chef's own record.
func (cc *ChefController) Profile(c *fiber.Ctx) error {
	chefID, ok := middleware.ActorID(c)
	if !ok {
		return cc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var ch chefModel.Chef
	if err := cc.DB.First(&ch, chefID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Chef not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch chef profile", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch profile",
			Data:    nil,
		})
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile fetched successfully",
		Data:    ch,
	})
}
