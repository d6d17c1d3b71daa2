package user

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	"fitchef-backend/middleware"
	feedbackModel "fitchef-backend/models/feedback"
	orderModel "fitchef-backend/models/order"
	supportModel "fitchef-backend/models/support"
	userModel "fitchef-backend/models/user"
	"fitchef-backend/types"
	feedbackTypes "fitchef-backend/types/feedback"
	profileTypes "fitchef-backend/types/profile"
	supportTypes "fitchef-backend/types/support"
	"fitchef-backend/utils"
)

// UserController handles the customer's profile, feedback and support
// endpoints.
type UserController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (uc *UserController) logAPIRequest(c *fiber.Ctx) {
	if uc.Logger != nil {
		uc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (uc *UserController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	uc.logAPIRequest(c)
	return result
}

// GetProfile returns the signed-in customer's account and fitness profile.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return uc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var u userModel.User
	if err := uc.DB.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Account not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch profile", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch profile",
			Data:    nil,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile fetched successfully",
		Data:    u,
	})
}

// UpdateProfile applies a partial profile edit. Orders already confirmed
// keep their snapshotted delivery address.
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return uc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var req profileTypes.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if len(name) < 2 {
			return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "please enter your full name",
				Data:    nil,
			})
		}
		updates["full_name"] = name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "date_of_birth must be YYYY-MM-DD",
				Data:    nil,
			})
		}
		updates["date_of_birth"] = dob
	}
	if req.AddressLine1 != nil {
		updates["address_line1"] = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		updates["address_line2"] = *req.AddressLine2
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Pincode != nil {
		updates["pincode"] = *req.Pincode
	}
	if req.DeliveryInstructions != nil {
		updates["delivery_instructions"] = *req.DeliveryInstructions
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.TargetWeight != nil {
		updates["target_weight"] = *req.TargetWeight
	}
	if req.FitnessGoal != nil {
		updates["fitness_goal"] = *req.FitnessGoal
	}
	if req.DietaryPreference != nil {
		updates["dietary_preference"] = *req.DietaryPreference
	}
	if req.Allergies != nil {
		updates["allergies"] = *req.Allergies
	}
	if req.ProteinTarget != nil {
		updates["protein_target"] = *req.ProteinTarget
	}

	if len(updates) == 0 {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No profile fields to update",
			Data:    nil,
		})
	}

	if err := uc.DB.Model(&userModel.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		logger.Error("Failed to update profile", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update profile",
			Data:    nil,
		})
	}

	var u userModel.User
	if err := uc.DB.First(&u, userID).Error; err != nil {
		logger.Error("Failed to reload profile", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update profile",
			Data:    nil,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
		Data:    u,
	})
}

// CreateFeedback rates one of the customer's delivered orders.
func (uc *UserController) CreateFeedback(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return uc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var req feedbackTypes.FeedbackCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var o orderModel.Order
	err := uc.DB.Where("id = ? AND user_id = ?", req.OrderID, userID).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch order for feedback", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to submit feedback",
			Data:    nil,
		})
	}

	if o.Status != orderModel.StatusDelivered {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Feedback is only accepted for delivered orders",
			Data:    nil,
		})
	}

	fb := feedbackModel.Feedback{
		UserID:  userID,
		OrderID: req.OrderID,
		Rating:  req.Rating,
	}
	if comments := strings.TrimSpace(req.Comments); comments != "" {
		fb.Comments = &comments
	}

	if err := uc.DB.Create(&fb).Error; err != nil {
		logger.Error("Failed to save feedback", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to submit feedback",
			Data:    nil,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Feedback submitted successfully",
		Data:    fb,
	})
}

// CreateSupportTicket opens a support ticket for the signed-in customer.
func (uc *UserController) CreateSupportTicket(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return uc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var req supportTypes.TicketCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	ticket := supportModel.Ticket{
		UserID:  userID,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  "open",
	}
	if err := uc.DB.Create(&ticket).Error; err != nil {
		logger.Error("Failed to create support ticket", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create support ticket",
			Data:    nil,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Support ticket created successfully",
		Data:    ticket,
	})
}

// ListSupportTickets returns the customer's own tickets, newest first.
func (uc *UserController) ListSupportTickets(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return uc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Data:    nil,
		})
	}

	var tickets []supportModel.Ticket
	err := uc.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		logger.Error("Failed to list support tickets", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch support tickets",
			Data:    nil,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Support tickets fetched successfully",
		Data:    tickets,
	})
}
