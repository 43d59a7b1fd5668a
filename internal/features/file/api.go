package file

import (
	"prestova-one/internal/config"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FileApi struct {
	controller *FileController
	config     *config.Config
}

func NewFileApi(controller *FileController, config *config.Config) *FileApi {
	return &FileApi{
		controller: controller,
		config:     config,
	}
}

func (h *FileApi) Setup(app *fiber.App) {
	// Serve stored attachments directly
	app.Static(h.config.FSURL, h.config.FSPath)

	files := app.Group("/api/files", middleware.AuthMiddleware(h.config.SkipAuth))

	files.Post("/", h.controller.Upload)
	files.Get("/:id", h.controller.Get)
	files.Delete("/:id", h.controller.Delete)
}
