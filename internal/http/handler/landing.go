package handler

import (
	"github.com/gofiber/fiber/v2"

	"flow7/internal/landing"
)

// LandingPage serves the rendered FLOW7 page.
//
// @Summary Landing page
// @Produce html
// @Success 200 {string} string "HTML document"
// @Router / [get]
func LandingPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return landing.RenderTo(c.Response().BodyWriter())
	}
}

// Stylesheet serves the CSS referenced by the landing page.
func Stylesheet() fiber.Handler {
	css := landing.Stylesheet()
	return func(c *fiber.Ctx) error {
		c.Type("css", "utf-8")
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		return c.Send(css)
	}
}

// APIRoot reports that the API is up.
//
// @Summary API root
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api [get]
func APIRoot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(MessageResponse{Message: "Flow7 API is running"})
	}
}

// MessageResponse is a plain informational reply.
type MessageResponse struct {
	Message string `json:"message"`
}
