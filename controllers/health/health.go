package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	"fitchef-backend/types"
)

// HealthController reports process and database liveness.
type HealthController struct {
	DB *gorm.DB
}

// NewHealthController creates a new health controller
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check pings the database and reports overall service health.
func (hc *HealthController) Check(c *fiber.Ctx) error {
	status := "ok"
	dbStatus := "ok"

	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		logger.Error("Health check database ping failed", err)
		status = "degraded"
		dbStatus = "unreachable"
	}

	httpStatus := fiber.StatusOK
	if status != "ok" {
		httpStatus = fiber.StatusServiceUnavailable
	}

	return c.Status(httpStatus).JSON(types.ApiResponse{
		Status:  httpStatus,
		Message: "Health check",
		Data: fiber.Map{
			"status":    status,
			"database":  dbStatus,
			"timestamp": time.Now().UTC(),
		},
	})
}
