package request

import (
	"prestova-one/internal/config"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RequestApi struct {
	controller *RequestController
	config     *config.Config
}

func NewRequestApi(controller *RequestController, config *config.Config) *RequestApi {
	return &RequestApi{
		controller: controller,
		config:     config,
	}
}

func (h *RequestApi) Setup(app *fiber.App) {
	requests := app.Group("/api/requests", middleware.AuthMiddleware(h.config.SkipAuth))

	requests.Post("/", h.controller.Submit)
	requests.Get("/", h.controller.List)
	requests.Get("/:id", h.controller.Get)
}
