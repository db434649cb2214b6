// Package openapi serves a Swagger UI over the OpenAPI document that huma
// generates for the repair-cost API.
package openapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// DefaultSpecURL is where huma's default config serves the OpenAPI document.
const DefaultSpecURL = "/openapi.json"

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>repair-cost API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "{{SPEC_URL}}",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds Swagger UI routes to the Echo instance. specURL is
// the path of the OpenAPI JSON document; empty means DefaultSpecURL.
func RegisterRoutes(e *echo.Echo, specURL string) {
	if specURL == "" {
		specURL = DefaultSpecURL
	}
	page := strings.Replace(swaggerUIHTML, "{{SPEC_URL}}", specURL, 1)

	e.GET("/swagger/index.html", func(c echo.Context) error {
		return c.HTML(http.StatusOK, page)
	})
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
