package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"prepvault/resume-analyzer/internal/services"
)

const localsUsernameKey = "username"

// RequireAuth validates the Bearer token and stores the authenticated
// username in the request locals for downstream handlers.
func RequireAuth(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		token := strings.TrimPrefix(header, "Bearer ")
		username, err := authService.VerifyToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(localsUsernameKey, username)
		return c.Next()
	}
}

func currentUsername(c *fiber.Ctx) string {
	if username, ok := c.Locals(localsUsernameKey).(string); ok {
		return username
	}
	return ""
}
