package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"flow7/internal/landing"
)

// RegisterRoutes attaches the landing page, API root and health routes to app.
// db may be nil when no database is configured.
func RegisterRoutes(app *fiber.App, apiPrefix string, db Pinger) {
	app.Get("/", LandingPage())
	app.Get(landing.StylesheetPath, Stylesheet())

	app.Get("/api", APIRoot())

	api := app.Group(NormalizePrefix(apiPrefix))
	api.Get("/health", HealthCheck(nil))
	api.Get("/health/db", DatabaseHealth(db))

	app.Get("/healthz", LivenessProbe())
}

// NormalizePrefix makes prefix start with a single slash and drop trailing ones.
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return "/api/v1"
	}
	return "/" + prefix
}
