package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TraceIDHeader = "X-Trace-ID"
	TraceIDKey    = "trace_id"
)

// TraceIDMiddleware tags each request with a trace id. A well-formed id sent
// by the caller is kept so logs can be joined across services.
func TraceIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Locals(TraceIDKey, traceID)
		c.Set(TraceIDHeader, traceID)
		return c.Next()
	}
}

// TraceID returns the current request's trace id, or "" outside the middleware.
func TraceID(c *fiber.Ctx) string {
	traceID, _ := c.Locals(TraceIDKey).(string)
	return traceID
}
