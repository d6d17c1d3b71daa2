package admin

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

// ListLeads returns the sales leads, filterable by status and source.
func (ac *AdminController) ListLeads(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePagination(c, 20)

	q := ac.DB.Model(&leadModel.Lead{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if source := c.Query("source"); source != "" {
		q = q.Where("source = ?", source)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logger.Error("Failed to count leads", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch leads",
			Data:    nil,
		})
	}

	var leads []leadModel.Lead
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error; err != nil {
		logger.Error("Failed to list leads", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch leads",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Leads fetched successfully",
		Data: types.PagedResponse{
			Data:  leads,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

// CreateLead inserts a manually entered lead.
func (ac *AdminController) CreateLead(c *fiber.Ctx) error {
	var req leadTypes.LeadUpsertRequest
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

	l := leadModel.Lead{
		Name:   req.Name,
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:  req.Phone,
		Source: leadModel.SourceManual,
		Status: leadModel.StatusNew,
		Notes:  req.Notes,
	}
	if req.Source != "" {
		l.Source = req.Source
	}
	if req.Status != "" {
		l.Status = req.Status
	}

	if err := ac.DB.Create(&l).Error; err != nil {
		logger.Error("Failed to create lead", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create lead",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Lead created successfully",
		Data:    l,
	})
}

// UpdateLead edits a lead's contact details, status or notes.
func (ac *AdminController) UpdateLead(c *fiber.Ctx) error {
	var req leadTypes.LeadUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var l leadModel.Lead
	if err := ac.DB.First(&l, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Lead not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch lead", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update lead",
			Data:    nil,
		})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		updates["email"] = strings.ToLower(email)
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Source != "" {
		updates["source"] = req.Source
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No fields to update",
			Data:    nil,
		})
	}

	if err := ac.DB.Model(&l).Updates(updates).Error; err != nil {
		logger.Error("Failed to update lead", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update lead",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Lead updated successfully",
		Data:    l,
	})
}

// DeleteLead removes a lead.
func (ac *AdminController) DeleteLead(c *fiber.Ctx) error {
	res := ac.DB.Delete(&leadModel.Lead{}, c.Params("id"))
	if res.Error != nil {
		logger.Error("Failed to delete lead", res.Error)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete lead",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Lead not found",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Lead deleted successfully",
		Data:    nil,
	})
}

// ListConsultations returns the consultation requests, newest first.
func (ac *AdminController) ListConsultations(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePagination(c, 20)

	var total int64
	if err := ac.DB.Model(&leadModel.Consultation{}).Count(&total).Error; err != nil {
		logger.Error("Failed to count consultations", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch consultations",
			Data:    nil,
		})
	}

	var consultations []leadModel.Consultation
	err := ac.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&consultations).Error
	if err != nil {
		logger.Error("Failed to list consultations", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch consultations",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Consultations fetched successfully",
		Data: types.PagedResponse{
			Data:  consultations,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}
