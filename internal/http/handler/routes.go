package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"itemapi/internal/service"
	"itemapi/internal/validation"
)

// NewApp constructs the Fiber app with the server settings shared by every
// environment. bodyLimit bounds the accepted request body in bytes; the body
// is streamed rather than buffered so large uploads pass straight through to
// the object store.
func NewApp(bodyLimit int) *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler:      ErrorHandler(),
		BodyLimit:         bodyLimit,
		StreamRequestBody: true,
	})
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; everything delegates to the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, itemSvc service.ItemService, uploadSvc service.UploadService, v *validation.Validator) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Liveness and health probes
	app.Get("/", Root())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Item resource
	app.Post("/items", CreateItem(itemSvc, v))
	app.Get("/items", ListItems(itemSvc))
	app.Get("/items/:id", GetItem(itemSvc))
	app.Put("/items/:id", UpdateItem(itemSvc, v))
	app.Delete("/items/:id", DeleteItem(itemSvc))

	// File upload pipeline and uploaded-file metadata
	app.Post("/upload", UploadFile(uploadSvc))
	app.Post("/upload/presign", PresignUpload(uploadSvc, v))
	app.Get("/files", ListFiles(uploadSvc))
	app.Get("/files/:id", GetFile(uploadSvc))
}
