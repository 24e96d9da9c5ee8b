// Package apidocs serves the embedded OpenAPI document together with a
// scalar page that renders it.
package apidocs

import (
	"bytes"
	"html/template"
	"net/http"
	"path"
	"slices"

	"github.com/labstack/echo/v4"
)

type page struct {
	// SpecURL 文档页面加载 JSON 的地址
	SpecURL string
}

// Doc 在 basePath 下提供 apidocs 页面和 apispec.json
func Doc(basePath string, specJSON []byte) echo.MiddlewareFunc {
	cfg := page{
		SpecURL: path.Join(basePath, "apispec.json"),
	}

	docPath := path.Join(basePath, "apidocs")

	// 页面只渲染一次
	buf := bytes.NewBuffer(nil)
	_ = template.Must(template.New("apidoc").Parse(pageTemplate)).Execute(buf, cfg)
	uiHTML := buf.String()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqPath := c.Request().URL.Path
			if !slices.Contains([]string{docPath, cfg.SpecURL}, reqPath) {
				return next(c)
			}

			if reqPath == docPath {
				return c.HTML(http.StatusOK, uiHTML)
			}
			return c.JSONBlob(http.StatusOK, specJSON)
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>API documentation</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
