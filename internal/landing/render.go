package landing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/page.css
var stylesheet []byte

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render returns the complete HTML document for the landing page.
// It takes no input and returns identical bytes on every call.
func Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo writes the landing page document to w.
func RenderTo(w io.Writer) error {
	return RenderPage(w, DefaultPage())
}

// RenderPage writes an arbitrary Page using the landing template.
func RenderPage(w io.Writer, p Page) error {
	if err := pageTemplate.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}
	return nil
}

// Stylesheet returns the stylesheet that provides the page, main, header and content hooks.
func Stylesheet() []byte {
	out := make([]byte, len(stylesheet))
	copy(out, stylesheet)
	return out
}
