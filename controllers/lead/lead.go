package lead

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	leadModel "fitchef-backend/models/lead"
	"fitchef-backend/types"
	leadTypes "fitchef-backend/types/lead"
	"fitchef-backend/utils"
)

// LeadController handles the public marketing capture forms. Submissions
// also sync into the back-office lead list.
type LeadController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewLeadController creates a new lead controller
func NewLeadController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *LeadController {
	return &LeadController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (lc *LeadController) logAPIRequest(c *fiber.Ctx) {
	if lc.Logger != nil {
		lc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (lc *LeadController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	lc.logAPIRequest(c)
	return result
}

// EarlyAccess records an early-access email. A repeat submission of the
// same email succeeds without a duplicate row.
func (lc *LeadController) EarlyAccess(c *fiber.Ctx) error {
	var req leadTypes.EarlyAccessRequest
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

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing leadModel.EarlyAccess
	err := lc.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return lc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "You're already on the early access list!",
			Data:    nil,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check early access entry", err)
		return lc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save your request",
			Data:    nil,
		})
	}

	err = lc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&leadModel.EarlyAccess{Email: email}).Error; err != nil {
			return err
		}
		return lc.syncLead(tx, nil, email, nil, leadModel.SourceEarlyAccess)
	})
	if err != nil {
		logger.Error("Failed to save early access entry", err)
		return lc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save your request",
			Data:    nil,
		})
	}

	return lc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "You're on the early access list!",
		Data:    nil,
	})
}

// Consultation records a free-consultation request.
func (lc *LeadController) Consultation(c *fiber.Ctx) error {
	var req leadTypes.ConsultationRequest
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

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	consultation := leadModel.Consultation{
		Name:  name,
		Email: email,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		consultation.Phone = &phone
	}
	if goal := strings.TrimSpace(req.Goal); goal != "" {
		consultation.Goal = &goal
	}
	if preferred := strings.TrimSpace(req.PreferredTime); preferred != "" {
		consultation.PreferredTime = &preferred
	}
	if message := strings.TrimSpace(req.Message); message != "" {
		consultation.Message = &message
	}

	err := lc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&consultation).Error; err != nil {
			return err
		}
		return lc.syncLead(tx, &name, email, consultation.Phone, leadModel.SourceConsultation)
	})
	if err != nil {
		logger.Error("Failed to save consultation request", err)
		return lc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save your request",
			Data:    nil,
		})
	}

	return lc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Consultation request received. We'll reach out soon!",
		Data:    consultation,
	})
}

// syncLead upserts the lead row for a capture-form email. An existing lead
// keeps its status; a new one starts as new.
func (lc *LeadController) syncLead(tx *gorm.DB, name *string, email string, phone *string, source string) error {
	var existing leadModel.Lead
	err := tx.Where("email = ?", email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&leadModel.Lead{
			Name:   name,
			Email:  email,
			Phone:  phone,
			Source: source,
			Status: leadModel.StatusNew,
		}).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if name != nil && existing.Name == nil {
		updates["name"] = *name
	}
	if phone != nil && existing.Phone == nil {
		updates["phone"] = *phone
	}
	if len(updates) == 0 {
		return nil
	}
	return tx.Model(&existing).Updates(updates).Error
}
