package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestid"
)

// RequestID middleware assigns every request an id. A valid UUID sent by
// the client is kept, anything else is replaced.
func RequestID() fiber.Handler {
	assign := requestid.New(requestid.Config{
		Header:     RequestIDHeader,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})

	return func(c *fiber.Ctx) error {
		if _, err := uuid.Parse(c.Get(RequestIDHeader)); err != nil {
			c.Request().Header.Del(RequestIDHeader)
		}
		return assign(c)
	}
}

// GetRequestID returns the id assigned by RequestID, or an empty string.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
