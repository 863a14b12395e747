package middleware

import (
	"slices"

	common_models "go-legal/internal/common/models"
	"go-legal/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates JWT tokens and injects user claims into context
func AuthMiddleware(skipAuth bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			// Dev mode acts as an admin
			claims := &utils.UserClaims{
				UserID: "dev-admin-id",
				Role:   common_models.RoleAdmin,
			}
			c.Locals(utils.UserClaimsKey, claims)
			c.SetUserContext(utils.ContextWithClaims(c.UserContext(), claims))
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(authHeader[7:])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}
		if !claims.Role.IsValid() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token carries an unknown role",
			})
		}

		c.Locals(utils.UserClaimsKey, claims)
		c.SetUserContext(utils.ContextWithClaims(c.UserContext(), claims))
		return c.Next()
	}
}

// RequireRoles rejects callers whose role is not listed.
func RequireRoles(roles ...common_models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		if !slices.Contains(roles, claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}
		return c.Next()
	}
}

// Claims returns the authenticated caller, or nil.
func Claims(c *fiber.Ctx) *utils.UserClaims {
	claims, _ := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	return claims
}
