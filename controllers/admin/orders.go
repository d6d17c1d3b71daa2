package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	orderModel "fitchef-backend/models/order"
	"fitchef-backend/types"
	adminTypes "fitchef-backend/types/admin"
	"fitchef-backend/utils"
)

// ListLegacyOrders returns the manually recorded back-office orders.
func (ac *AdminController) ListLegacyOrders(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePagination(c, 20)

	q := ac.DB.Model(&orderModel.AdminOrder{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logger.Error("Failed to count legacy orders", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Data:    nil,
		})
	}

	var orders []orderModel.AdminOrder
	if err := q.Order("order_date DESC, id DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		logger.Error("Failed to list legacy orders", err)
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

// CreateLegacyOrder inserts a back-office order. A duplicate order number
// is a conflict, not an internal error.
func (ac *AdminController) CreateLegacyOrder(c *fiber.Ctx) error {
	var req adminTypes.AdminOrderCreateRequest
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

	record := orderModel.AdminOrder{
		CustomerID:  req.CustomerID,
		ChefID:      req.ChefID,
		OrderNumber: strings.TrimSpace(req.OrderNumber),
		Status:      "pending",
		OrderDate:   time.Now(),
		Notes:       req.Notes,
	}
	if req.Status != "" {
		record.Status = req.Status
	}
	if req.TotalAmount != nil {
		amount, err := decimal.NewFromString(*req.TotalAmount)
		if err != nil {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "invalid total_amount",
				Data:    nil,
			})
		}
		record.TotalAmount = amount
	}
	if req.OrderDate != "" {
		orderDate, err := time.Parse("2006-01-02", req.OrderDate)
		if err != nil {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "order_date must be YYYY-MM-DD",
				Data:    nil,
			})
		}
		record.OrderDate = orderDate
	}
	if req.DeliveryDate != "" {
		deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "delivery_date must be YYYY-MM-DD",
				Data:    nil,
			})
		}
		record.DeliveryDate = &deliveryDate
	}

	if err := ac.DB.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ac.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "An order with this order number already exists",
				Data:    nil,
			})
		}
		logger.Error("Failed to create legacy order", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Order created successfully",
		Data:    record,
	})
}

// UpdateLegacyOrder patches a back-office order; unset fields keep their
// current values.
func (ac *AdminController) UpdateLegacyOrder(c *fiber.Ctx) error {
	var req adminTypes.AdminOrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var record orderModel.AdminOrder
	if err := ac.DB.First(&record, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch legacy order", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order",
			Data:    nil,
		})
	}

	updates := map[string]interface{}{}
	if req.CustomerID != nil {
		updates["customer_id"] = *req.CustomerID
	}
	if req.ChefID != nil {
		updates["chef_id"] = *req.ChefID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.TotalAmount != nil {
		amount, err := decimal.NewFromString(*req.TotalAmount)
		if err != nil {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "invalid total_amount",
				Data:    nil,
			})
		}
		updates["total_amount"] = amount
	}
	if req.OrderDate != nil {
		orderDate, err := time.Parse("2006-01-02", *req.OrderDate)
		if err != nil {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "order_date must be YYYY-MM-DD",
				Data:    nil,
			})
		}
		updates["order_date"] = orderDate
	}
	if req.DeliveryDate != nil {
		deliveryDate, err := time.Parse("2006-01-02", *req.DeliveryDate)
		if err != nil {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "delivery_date must be YYYY-MM-DD",
				Data:    nil,
			})
		}
		updates["delivery_date"] = deliveryDate
	}

	if len(updates) == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No fields to update",
			Data:    nil,
		})
	}

	if err := ac.DB.Model(&record).Updates(updates).Error; err != nil {
		logger.Error("Failed to update legacy order", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order updated successfully",
		Data:    record,
	})
}

// DeleteLegacyOrder removes a back-office order record.
func (ac *AdminController) DeleteLegacyOrder(c *fiber.Ctx) error {
	res := ac.DB.Delete(&orderModel.AdminOrder{}, c.Params("id"))
	if res.Error != nil {
		logger.Error("Failed to delete legacy order", res.Error)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete order",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order deleted successfully",
		Data:    nil,
	})
}
