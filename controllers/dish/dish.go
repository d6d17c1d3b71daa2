package dish

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	dishModel "fitchef-backend/models/dish"
	"fitchef-backend/types"
	"fitchef-backend/utils"
)

// DishController serves the public menu. Only available dishes are listed;
// hidden dishes stay orderable history on old orders but never show here.
type DishController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewDishController creates a new dish controller
func NewDishController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DishController {
	return &DishController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (dc *DishController) logAPIRequest(c *fiber.Ctx) {
	if dc.Logger != nil {
		dc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (dc *DishController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	dc.logAPIRequest(c)
	return result
}

// ListDishes returns the available menu, filterable by category, dietary
// type and featured flag.
func (dc *DishController) ListDishes(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePagination(c, 20)

	q := dc.DB.Model(&dishModel.Dish{}).Where("available = ?", true)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR tags ILIKE ?", pattern, pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if dietary := c.Query("dietary_type"); dietary != "" {
		q = q.Where("dietary_type = ?", dietary)
	}
	if minProtein := c.QueryFloat("min_protein"); minProtein > 0 {
		q = q.Where("protein >= ?", minProtein)
	}
	if maxPrice := c.QueryFloat("max_price"); maxPrice > 0 {
		q = q.Where("COALESCE(discount_price, base_price) <= ?", maxPrice)
	}
	if c.Query("featured") == "true" {
		q = q.Where("featured = ?", true)
	}
	if c.Query("subscription") == "true" {
		q = q.Where("subscription_eligible = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logger.Error("Failed to count dishes", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch menu",
			Data:    nil,
		})
	}

	var dishes []dishModel.Dish
	if err := q.Order("featured DESC, name").Limit(limit).Offset(offset).Find(&dishes).Error; err != nil {
		logger.Error("Failed to list dishes", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch menu",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Menu fetched successfully",
		Data: types.PagedResponse{
			Data:  dishes,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

// ListCategories returns the distinct categories of the available menu.
func (dc *DishController) ListCategories(c *fiber.Ctx) error {
	var categories []string
	err := dc.DB.Model(&dishModel.Dish{}).
		Where("available = ? AND category IS NOT NULL", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		logger.Error("Failed to list dish categories", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch categories",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Categories fetched successfully",
		Data:    categories,
	})
}

// GetDish returns one available dish with its full nutrition profile.
func (dc *DishController) GetDish(c *fiber.Ctx) error {
	var d dishModel.Dish
	err := dc.DB.Where("id = ? AND available = ?", c.Params("id"), true).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Dish not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch dish", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch dish",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dish fetched successfully",
		Data:    d,
	})
}
