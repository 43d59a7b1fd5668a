package settings

import (
	"prestova-one/internal/config"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SettingsApi struct {
	controller *SettingsController
	config     *config.Config
}

func NewSettingsApi(controller *SettingsController, config *config.Config) *SettingsApi {
	return &SettingsApi{
		controller: controller,
		config:     config,
	}
}

func (h *SettingsApi) Setup(app *fiber.App) {
	settings := app.Group("/api/settings", middleware.AuthMiddleware(h.config.SkipAuth), middleware.AdminMiddleware())

	settings.Get("/email", h.controller.GetEmailConfig)
	settings.Put("/email", h.controller.SaveEmailConfig)
	settings.Get("/upload", h.controller.GetUploadConfig)
	settings.Put("/upload", h.controller.SaveUploadConfig)
}
