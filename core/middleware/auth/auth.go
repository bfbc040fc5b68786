package auth

import "github.com/gofiber/fiber/v2"

// Config holds the API key validated by the middleware.
type Config struct {
	ApiKey string
}

// New creates an API key validation middleware. An empty configured key
// disables authentication.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get("X-Api-Key") != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}
		return c.Next()
	}
}
