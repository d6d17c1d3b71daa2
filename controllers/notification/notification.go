package notification

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	"fitchef-backend/middleware"
	notificationModel "fitchef-backend/models/notification"
	"fitchef-backend/types"
	"fitchef-backend/utils"
)

// NotificationController serves the customer's notification feed.
type NotificationController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewNotificationController creates a new notification controller
func NewNotificationController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *NotificationController {
	return &NotificationController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (nc *NotificationController) logAPIRequest(c *fiber.Ctx) {
	if nc.Logger != nil {
		nc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (nc *NotificationController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	nc.logAPIRequest(c)
	return result
}

// List returns the latest 50 notifications for the signed-in customer.
func (nc *NotificationController) List(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return nc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var notifications []notificationModel.Notification
	err := nc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error
	if err != nil {
		logger.Error("Failed to list notifications", err)
		return nc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch notifications",
			Data:    nil,
		})
	}

	return nc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notifications fetched successfully",
		Data:    notifications,
	})
}

// MarkRead marks one of the customer's notifications as read. Already-read
// rows keep their original read time, so repeat calls are harmless.
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return nc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	res := nc.DB.Model(&notificationModel.Notification{}).
		Where("id = ? AND user_id = ?", c.Params("id"), userID).
		Update("read_at", gorm.Expr("COALESCE(read_at, CURRENT_TIMESTAMP)"))
	if res.Error != nil {
		logger.Error("Failed to mark notification read", res.Error)
		return nc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update notification",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return nc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Notification not found",
			Data:    nil,
		})
	}

	return nc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notification marked as read",
		Data:    nil,
	})
}
