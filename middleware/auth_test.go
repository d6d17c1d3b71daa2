package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitchef-backend/constants"
	"fitchef-backend/types"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "chef@fitchef.in", constants.RoleChef)
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "chef@fitchef.in", claims.Email)
	assert.Equal(t, constants.RoleChef, claims.Role)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(1, "user@example.com", constants.RoleCustomer)
	require.NoError(t, err)

	_, err = VerifyToken(token + "x")
	assert.Error(t, err)

	_, err = VerifyToken("not-a-jwt")
	assert.Error(t, err)
}

// protectedApp wires Authenticate (and optionally RequireRole) in front of
// a probe handler that reports the actor identity it saw.
func protectedApp(roles ...constants.Role) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		id, _ := ActorID(c)
		role, _ := ActorRole(c)
		email, _ := ActorEmail(c)
		return c.JSON(fiber.Map{"id": id, "role": role, "email": email})
	})
	app.Get("/", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authorization string) (*http.Response, types.ApiResponse) {
	t.Helper()

	req := httptest.NewRequest("GET", "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope types.ApiResponse
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	_ = json.Unmarshal(body, &envelope)
	return resp, envelope
}

func TestAuthenticateMissingToken(t *testing.T) {
	resp, envelope := doRequest(t, protectedApp(), "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authorization token missing", envelope.Message)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	resp, envelope := doRequest(t, protectedApp(), "Basic abc123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid authorization header format", envelope.Message)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	resp, envelope := doRequest(t, protectedApp(), "Bearer not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", envelope.Message)
}

func TestAuthenticateSetsActorLocals(t *testing.T) {
	token, err := GenerateToken(7, "admin@fitchef.in", constants.RoleAdmin)
	require.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var seen struct {
		ID    uint   `json:"id"`
		Role  string `json:"role"`
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&seen))
	assert.Equal(t, uint(7), seen.ID)
	assert.Equal(t, "admin", seen.Role)
	assert.Equal(t, "admin@fitchef.in", seen.Email)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	token, err := GenerateToken(3, "ops@fitchef.in", constants.RoleLogistics)
	require.NoError(t, err)

	resp, _ := doRequest(t, protectedApp(constants.RoleLogistics), "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	token, err := GenerateToken(9, "root@fitchef.in", constants.RoleSuperAdmin)
	require.NoError(t, err)

	resp, _ := doRequest(t, protectedApp(constants.AdminRoles...), "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	token, err := GenerateToken(5, "user@example.com", constants.RoleCustomer)
	require.NoError(t, err)

	// Role mismatch is 403, distinct from the 401 of a bad token.
	resp, envelope := doRequest(t, protectedApp(constants.AdminRoles...), "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Insufficient permissions", envelope.Message)
}
