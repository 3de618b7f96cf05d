package middleware

import (
	"wellcrest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth ensures a user is in the session. Returns 401 with the
// standard error format if not.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// GetSessionField extracts a string field from the session user map.
func GetSessionField(c *fiber.Ctx, field string) string {
	m, ok := GetUser(c).(map[string]interface{})
	if !ok {
		return ""
	}
	v, _ := m[field].(string)
	return v
}
