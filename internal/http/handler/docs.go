package handler

import (
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ReDocPath serves the ReDoc rendering of the OpenAPI document.
const ReDocPath = "/api/redoc"

var redocPage = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}} - ReDoc</title>
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="{{.SpecURL}}"></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>`))

// ReDoc renders a ReDoc page that loads the OpenAPI document from specURL.
func ReDoc(title, specURL string) fiber.Handler {
	var b strings.Builder
	if err := redocPage.Execute(&b, struct{ Title, SpecURL string }{title, specURL}); err != nil {
		panic(err)
	}
	html := b.String()

	return func(c *fiber.Ctx) error {
		return c.Type("html", "utf-8").SendString(html)
	}
}
