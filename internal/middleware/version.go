package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AppVersion is the API version advertised to clients.
const AppVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header, stores it in context for
// handlers, and stamps the response with the server's own version so the
// offline client can detect a stale cached shell.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", AppVersion)

		// Support version aliases
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", AppVersion)

		return c.Next()
	}
}
