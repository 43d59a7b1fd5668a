package middleware

import (
	common_models "prestova-one/internal/common/models"
	"prestova-one/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware checks if the user has the admin role
func AdminMiddleware() fiber.Handler {
	return RequireRoles(common_models.RoleAdmin)
}

// RequireRoles rejects the request unless the authenticated user has one of
// the given roles. Must run after AuthMiddleware.
func RequireRoles(roles ...common_models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok || claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied: insufficient role",
		})
	}
}
