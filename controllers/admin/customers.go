package admin

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	userModel "fitchef-backend/models/user"
	"fitchef-backend/types"
	"fitchef-backend/utils"
)

// ListCustomers returns approved site customers, searchable by name,
// email or phone.
func (ac *AdminController) ListCustomers(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePagination(c, 20)

	q := ac.DB.Model(&userModel.User{}).
		Where("status = ? AND deleted_at IS NULL", userModel.StatusApproved)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logger.Error("Failed to count customers", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch customers",
			Data:    nil,
		})
	}

	var customers []userModel.User
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		logger.Error("Failed to list customers", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch customers",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customers fetched successfully",
		Data: types.PagedResponse{
			Data:  customers,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

// GetCustomer returns one customer record.
func (ac *AdminController) GetCustomer(c *fiber.Ctx) error {
	var u userModel.User
	if err := ac.DB.First(&u, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Customer not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch customer", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch customer",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customer fetched successfully",
		Data:    u,
	})
}

// DeleteCustomer soft-deletes a customer account. Their orders remain for
// reporting.
func (ac *AdminController) DeleteCustomer(c *fiber.Ctx) error {
	res := ac.DB.Model(&userModel.User{}).
		Where("id = ? AND deleted_at IS NULL", c.Params("id")).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if res.Error != nil {
		logger.Error("Failed to delete customer", res.Error)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete customer",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Customer not found",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customer deleted successfully",
		Data:    nil,
	})
}

// ListPendingSignups returns accounts waiting for approval, oldest first.
func (ac *AdminController) ListPendingSignups(c *fiber.Ctx) error {
	var pending []userModel.User
	err := ac.DB.Where("status = ?", userModel.StatusPending).
		Order("created_at").
		Find(&pending).Error
	if err != nil {
		logger.Error("Failed to list pending signups", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch pending signups",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending signups fetched successfully",
		Data:    pending,
	})
}

// ApproveSignup approves a pending account so the customer can sign in.
func (ac *AdminController) ApproveSignup(c *fiber.Ctx) error {
	return ac.resolveSignup(c, userModel.StatusApproved, "Signup approved successfully")
}

// RejectSignup rejects a pending account.
func (ac *AdminController) RejectSignup(c *fiber.Ctx) error {
	return ac.resolveSignup(c, userModel.StatusRejected, "Signup rejected")
}

// resolveSignup flips a pending account to its final status. Only pending
// accounts qualify; deciding twice reads as not found.
func (ac *AdminController) resolveSignup(c *fiber.Ctx, status, message string) error {
	res := ac.DB.Model(&userModel.User{}).
		Where("id = ? AND status = ?", c.Params("id"), userModel.StatusPending).
		Update("status", status)
	if res.Error != nil {
		logger.Error("Failed to resolve signup", res.Error)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update signup",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Pending signup not found",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Data:    nil,
	})
}
