package middleware

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fitchef-backend/constants"
	"fitchef-backend/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// Locals keys set by Authenticate.
const (
	localActorID = "actor_id"
	localRole    = "role"
	localEmail   = "email"
)

// Claims is the token payload: actor id in Subject, plus role and email.
type Claims struct {
	Role  constants.Role `json:"role"`
	Email string         `json:"email"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "fitchef-admin-secret-change-in-production"
	}
	return []byte(secret)
}

// GenerateToken issues a signed HS256 token for the given actor.
func GenerateToken(actorID uint, email string, role constants.Role) (string, error) {
	claims := Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(actorID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// VerifyToken parses and validates a token string.
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// Authenticate checks for a valid bearer token and stores the actor's
// identity in the request locals. A missing token and an invalid token are
// both 401 but with distinct messages.
func Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Authorization token missing",
				Data:    nil,
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid authorization header format",
				Data:    nil,
			})
		}

		claims, err := VerifyToken(tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
				Data:    nil,
			})
		}

		actorID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
				Data:    nil,
			})
		}

		c.Locals(localActorID, uint(actorID))
		c.Locals(localRole, claims.Role)
		c.Locals(localEmail, claims.Email)
		return c.Next()
	}
}

// RequireRole allows the request through only when the authenticated actor
// holds one of the given roles. Role mismatch is 403, distinct from the
// 401 of a missing or invalid token.
func RequireRole(roles ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(localRole).(constants.Role)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Authentication required",
				Data:    nil,
			})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Insufficient permissions",
			Data:    nil,
		})
	}
}

// ActorID returns the authenticated actor's id from the request locals.
func ActorID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localActorID).(uint)
	return id, ok
}

// ActorRole returns the authenticated actor's role from the request locals.
func ActorRole(c *fiber.Ctx) (constants.Role, bool) {
	role, ok := c.Locals(localRole).(constants.Role)
	return role, ok
}

// ActorEmail returns the authenticated actor's email from the request locals.
func ActorEmail(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(localEmail).(string)
	return email, ok
}
