package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitchef-backend/constants"
	"fitchef-backend/logger"
	"fitchef-backend/middleware"
	adminModel "fitchef-backend/models/admin"
	chefModel "fitchef-backend/models/chef"
	userModel "fitchef-backend/models/user"
	"fitchef-backend/types"
	authTypes "fitchef-backend/types/auth"
	"fitchef-backend/utils"
)

// AuthController handles signup and the per-role sign-ins.
type AuthController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (ac *AuthController) logAPIRequest(c *fiber.Ctx) {
	if ac.Logger != nil {
		ac.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// Helper function to send response and log in one call
func (ac *AuthController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	ac.logAPIRequest(c)
	return result
}

// Signup registers a site customer. The account starts pending and cannot
// sign in until an admin approves it.
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req authTypes.SignupRequest
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

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing userModel.User
	err := ac.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ac.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "An account with this email already exists",
			Data:    nil,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing account", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create account",
			Data:    nil,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create account",
			Data:    nil,
		})
	}

	newUser := userModel.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        authTypes.PhoneDigits(req.Phone),
		Status:       userModel.StatusPending,
	}
	if city := strings.TrimSpace(req.City); city != "" {
		newUser.City = &city
	}

	if err := ac.DB.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create account", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create account",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Signup received. Your account is pending approval.",
		Data:    newUser,
	})
}

// SignIn authenticates an approved site customer.
func (ac *AuthController) SignIn(c *fiber.Ctx) error {
	req, ok := ac.parseLogin(c)
	if !ok {
		return nil
	}

	var u userModel.User
	err := ac.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&u).Error
	if err != nil {
		return ac.invalidCredentials(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Data:    nil,
		})
	}

	if u.Status != userModel.StatusApproved {
		return ac.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Your account is pending approval",
			Data:    nil,
		})
	}

	return ac.issueToken(c, u.ID, u.Email, constants.RoleCustomer, u)
}

// AdminLogin authenticates a back-office operator.
func (ac *AuthController) AdminLogin(c *fiber.Ctx) error {
	req, ok := ac.parseLogin(c)
	if !ok {
		return nil
	}

	var a adminModel.Admin
	err := ac.DB.Where("email = ? AND role IN ?",
		strings.ToLower(strings.TrimSpace(req.Email)),
		[]string{constants.RoleAdmin.String(), constants.RoleSuperAdmin.String()}).
		First(&a).Error
	if err != nil {
		return ac.invalidCredentials(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Data:    nil,
		})
	}

	return ac.issueToken(c, a.ID, a.Email, constants.Role(a.Role), a)
}

// ChefLogin authenticates an active chef.
func (ac *AuthController) ChefLogin(c *fiber.Ctx) error {
	req, ok := ac.parseLogin(c)
	if !ok {
		return nil
	}

	var ch chefModel.Chef
	err := ac.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&ch).Error
	if err != nil {
		return ac.invalidCredentials(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(ch.PasswordHash), []byte(req.Password)) != nil {
		return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Data:    nil,
		})
	}

	if ch.Status != chefModel.StatusActive {
		return ac.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Your chef account is inactive",
			Data:    nil,
		})
	}

	return ac.issueToken(c, ch.ID, ch.Email, constants.RoleChef, ch)
}

// LogisticsLogin authenticates a dispatch operator. Logistics accounts
// live in admin_users with the logistics role.
func (ac *AuthController) LogisticsLogin(c *fiber.Ctx) error {
	req, ok := ac.parseLogin(c)
	if !ok {
		return nil
	}

	var a adminModel.Admin
	err := ac.DB.Where("email = ? AND role = ?",
		strings.ToLower(strings.TrimSpace(req.Email)), constants.RoleLogistics.String()).
		First(&a).Error
	if err != nil {
		return ac.invalidCredentials(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Data:    nil,
		})
	}

	return ac.issueToken(c, a.ID, a.Email, constants.RoleLogistics, a)
}

// parseLogin parses and validates the common login body. On failure the
// response has already been written and ok is false.
func (ac *AuthController) parseLogin(c *fiber.Ctx) (authTypes.LoginRequest, bool) {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		_ = ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
		return req, false
	}
	if err := req.Validate(); err != nil {
		_ = ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
		return req, false
	}
	return req, true
}

// invalidCredentials hides whether the account exists: a missing record and
// a wrong password read the same.
func (ac *AuthController) invalidCredentials(c *fiber.Ctx, err error) error {
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to look up account", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Sign in failed",
			Data:    nil,
		})
	}
	return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Invalid email or password",
		Data:    nil,
	})
}

func (ac *AuthController) issueToken(c *fiber.Ctx, id uint, email string, role constants.Role, actor interface{}) error {
	token, err := middleware.GenerateToken(id, email, role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Sign in failed",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Signed in successfully",
		Data: authTypes.TokenResponse{
			Token: token,
			Role:  role.String(),
			Actor: actor,
		},
	})
}
