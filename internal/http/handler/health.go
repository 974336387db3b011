package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ServiceName identifies this API in health responses.
const ServiceName = "flow7-api"

const dbPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is returned by the service health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// DatabaseHealthResponse is returned by the database health endpoint.
type DatabaseHealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthCheck reports service health with the current time from now.
//
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/v1/health [get]
func HealthCheck(now func() time.Time) fiber.Handler {
	if now == nil {
		now = time.Now
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status:    "healthy",
			Timestamp: now().UTC().Format(time.RFC3339),
			Service:   ServiceName,
		})
	}
}

// DatabaseHealth pings the database. A nil db means no database is configured.
//
// @Summary Database health
// @Tags health
// @Produce json
// @Success 200 {object} DatabaseHealthResponse
// @Failure 503 {object} errorPayload
// @Router /api/v1/health/db [get]
func DatabaseHealth(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return c.JSON(DatabaseHealthResponse{
				Status:  "not_implemented",
				Message: "Database health check coming soon",
			})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), dbPingTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.JSON(DatabaseHealthResponse{Status: "healthy", Message: "database reachable"})
	}
}

// LivenessProbe is a bare liveness endpoint for orchestrators.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
