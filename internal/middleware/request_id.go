package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/ksuid"
)

const RequestIDHeader = "X-Request-Id"

// NewRequestID assigns every request a ksuid and echoes it back, so
// upstream fetch failures can be correlated with caller reports.
func NewRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = ksuid.New().String()
		}
		c.Locals(RequestIDHeader, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
