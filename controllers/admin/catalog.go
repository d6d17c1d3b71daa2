package admin

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	agentModel "fitchef-backend/models/agent"
	chefModel "fitchef-backend/models/chef"
	dishModel "fitchef-backend/models/dish"
	"fitchef-backend/types"
	adminTypes "fitchef-backend/types/admin"
)

// ListChefs returns every chef record, active and inactive.
func (ac *AdminController) ListChefs(c *fiber.Ctx) error {
	var chefs []chefModel.Chef
	if err := ac.DB.Order("name").Find(&chefs).Error; err != nil {
		logger.Error("Failed to list chefs", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch chefs",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Chefs fetched successfully",
		Data:    chefs,
	})
}

// CreateChef registers a chef account. The password is required here; chef
// edits may omit it to keep the current one.
func (ac *AdminController) CreateChef(c *fiber.Ctx) error {
	var req adminTypes.ChefUpsertRequest
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
	if len(req.Password) < 6 {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "password must be at least 6 characters",
			Data:    nil,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create chef",
			Data:    nil,
		})
	}

	ch := chefModel.Chef{
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:    string(hash),
		Name:            strings.TrimSpace(req.Name),
		Phone:           req.Phone,
		Specialty:       req.Specialty,
		KitchenLocation: req.KitchenLocation,
		Status:          chefModel.StatusActive,
	}
	if req.Status != "" {
		ch.Status = req.Status
	}

	if err := ac.DB.Create(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ac.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "A chef with this email already exists",
				Data:    nil,
			})
		}
		logger.Error("Failed to create chef", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create chef",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Chef created successfully",
		Data:    ch,
	})
}

// UpdateChef edits a chef record.
func (ac *AdminController) UpdateChef(c *fiber.Ctx) error {
	var req adminTypes.ChefUpsertRequest
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

	var ch chefModel.Chef
	if err := ac.DB.First(&ch, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Chef not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch chef", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update chef",
			Data:    nil,
		})
	}

	updates := map[string]interface{}{
		"email":            strings.ToLower(strings.TrimSpace(req.Email)),
		"name":             strings.TrimSpace(req.Name),
		"phone":            req.Phone,
		"specialty":        req.Specialty,
		"kitchen_location": req.KitchenLocation,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "password must be at least 6 characters",
				Data:    nil,
			})
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", err)
			return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update chef",
				Data:    nil,
			})
		}
		updates["password_hash"] = string(hash)
	}

	if err := ac.DB.Model(&ch).Updates(updates).Error; err != nil {
		logger.Error("Failed to update chef", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update chef",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Chef updated successfully",
		Data:    ch,
	})
}

// DeactivateChef marks a chef inactive rather than deleting the row, so
// order history keeps its chef reference.
func (ac *AdminController) DeactivateChef(c *fiber.Ctx) error {
	res := ac.DB.Model(&chefModel.Chef{}).
		Where("id = ?", c.Params("id")).
		Update("status", chefModel.StatusInactive)
	if res.Error != nil {
		logger.Error("Failed to deactivate chef", res.Error)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to deactivate chef",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Chef not found",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Chef deactivated successfully",
		Data:    nil,
	})
}

// ListAllDishes returns the full catalog, hidden dishes included.
func (ac *AdminController) ListAllDishes(c *fiber.Ctx) error {
	var dishes []dishModel.Dish
	if err := ac.DB.Order("name").Find(&dishes).Error; err != nil {
		logger.Error("Failed to list dishes", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch dishes",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dishes fetched successfully",
		Data:    dishes,
	})
}

// CreateDish adds a catalog dish. Editing prices later never changes
// already-placed orders.
func (ac *AdminController) CreateDish(c *fiber.Ctx) error {
	d, ok := ac.parseDish(c)
	if !ok {
		return nil
	}

	if err := ac.DB.Create(d).Error; err != nil {
		logger.Error("Failed to create dish", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create dish",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Dish created successfully",
		Data:    d,
	})
}

// UpdateDish replaces a dish's editable fields.
func (ac *AdminController) UpdateDish(c *fiber.Ctx) error {
	d, ok := ac.parseDish(c)
	if !ok {
		return nil
	}

	var existing dishModel.Dish
	if err := ac.DB.First(&existing, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Dish not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch dish", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update dish",
			Data:    nil,
		})
	}

	d.ID = existing.ID
	d.CreatedAt = existing.CreatedAt
	if err := ac.DB.Save(d).Error; err != nil {
		logger.Error("Failed to update dish", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update dish",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dish updated successfully",
		Data:    d,
	})
}

// HideDish marks a dish unavailable. Existing orders keep their captured
// prices and item rows.
func (ac *AdminController) HideDish(c *fiber.Ctx) error {
	res := ac.DB.Model(&dishModel.Dish{}).
		Where("id = ?", c.Params("id")).
		Update("available", false)
	if res.Error != nil {
		logger.Error("Failed to hide dish", res.Error)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to hide dish",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Dish not found",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dish hidden successfully",
		Data:    nil,
	})
}

// parseDish parses and validates a dish upsert body into a model. On
// failure the response has already been written and ok is false.
func (ac *AdminController) parseDish(c *fiber.Ctx) (*dishModel.Dish, bool) {
	var req adminTypes.DishUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		_ = ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
		return nil, false
	}

	if err := req.Validate(); err != nil {
		_ = ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
		return nil, false
	}

	basePrice, _ := decimal.NewFromString(req.BasePrice)
	d := &dishModel.Dish{
		Name:                 strings.TrimSpace(req.Name),
		Description:          req.Description,
		Category:             req.Category,
		Tags:                 req.Tags,
		BasePrice:            basePrice,
		ImageURL:             req.ImageURL,
		Ingredients:          req.Ingredients,
		Allergens:            req.Allergens,
		PortionSize:          req.PortionSize,
		Calories:             req.Calories,
		Protein:              req.Protein,
		Carbs:                req.Carbs,
		Fats:                 req.Fats,
		DietaryType:          req.DietaryType,
		SubscriptionEligible: req.SubscriptionEligible,
		Available:            true,
		Featured:             req.Featured,
		ChefID:               req.ChefID,
	}
	if req.DiscountPrice != nil {
		discount, _ := decimal.NewFromString(*req.DiscountPrice)
		d.DiscountPrice = &discount
	}
	if req.Available != nil {
		d.Available = *req.Available
	}
	return d, true
}

// ListAgents returns every delivery agent.
func (ac *AdminController) ListAgents(c *fiber.Ctx) error {
	var agents []agentModel.Agent
	if err := ac.DB.Order("name").Find(&agents).Error; err != nil {
		logger.Error("Failed to list agents", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch agents",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Agents fetched successfully",
		Data:    agents,
	})
}

// CreateAgent registers a delivery agent.
func (ac *AdminController) CreateAgent(c *fiber.Ctx) error {
	var req adminTypes.AgentUpsertRequest
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

	a := agentModel.Agent{
		Name:               strings.TrimSpace(req.Name),
		Mobile:             strings.TrimSpace(req.Mobile),
		VehicleNumber:      req.VehicleNumber,
		AvailabilityStatus: agentModel.AvailabilityAvailable,
	}
	if req.AvailabilityStatus != "" {
		a.AvailabilityStatus = req.AvailabilityStatus
	}

	if err := ac.DB.Create(&a).Error; err != nil {
		logger.Error("Failed to create agent", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create agent",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Agent created successfully",
		Data:    a,
	})
}

// UpdateAgent edits a delivery agent.
func (ac *AdminController) UpdateAgent(c *fiber.Ctx) error {
	var req adminTypes.AgentUpsertRequest
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

	var a agentModel.Agent
	if err := ac.DB.First(&a, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Agent not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch agent", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update agent",
			Data:    nil,
		})
	}

	updates := map[string]interface{}{
		"name":           strings.TrimSpace(req.Name),
		"mobile":         strings.TrimSpace(req.Mobile),
		"vehicle_number": req.VehicleNumber,
	}
	if req.AvailabilityStatus != "" {
		updates["availability_status"] = req.AvailabilityStatus
	}

	if err := ac.DB.Model(&a).Updates(updates).Error; err != nil {
		logger.Error("Failed to update agent", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update agent",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Agent updated successfully",
		Data:    a,
	})
}

// DeleteAgent removes a delivery agent.
func (ac *AdminController) DeleteAgent(c *fiber.Ctx) error {
	res := ac.DB.Delete(&agentModel.Agent{}, c.Params("id"))
	if res.Error != nil {
		logger.Error("Failed to delete agent", res.Error)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete agent",
			Data:    nil,
		})
	}
	if res.RowsAffected == 0 {
		return ac.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Agent not found",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Agent deleted successfully",
		Data:    nil,
	})
}
