package broadcast

import (
	"prestova-one/internal/config"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BroadcastApi struct {
	controller *BroadcastController
	config     *config.Config
}

func NewBroadcastApi(controller *BroadcastController, config *config.Config) *BroadcastApi {
	return &BroadcastApi{
		controller: controller,
		config:     config,
	}
}

func (h *BroadcastApi) Setup(app *fiber.App) {
	lists := app.Group("/api/broadcast-lists", middleware.AuthMiddleware(h.config.SkipAuth), middleware.AdminMiddleware())

	lists.Post("/", h.controller.CreateList)
	lists.Get("/", h.controller.ListLists)
	lists.Get("/:id", h.controller.GetList)
	lists.Put("/:id", h.controller.UpdateList)
	lists.Delete("/:id", h.controller.DeleteList)
}
