package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Root handles GET /, a plain liveness message in the response envelope.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeSuccess(c, fiber.StatusOK, "service is running", nil)
	}
}

// HealthCheck handles GET /health; it reports unhealthy when the database
// cannot be pinged.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
		}
		return writeSuccess(c, fiber.StatusOK, "healthy", nil)
	}
}

// LivenessProbe handles GET /healthz, a bare 200 with no body.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
