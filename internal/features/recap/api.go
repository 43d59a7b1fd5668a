package recap

import (
	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/config"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RecapApi struct {
	controller *RecapController
	config     *config.Config
}

func NewRecapApi(controller *RecapController, config *config.Config) *RecapApi {
	return &RecapApi{
		controller: controller,
		config:     config,
	}
}

func (h *RecapApi) Setup(app *fiber.App) {
	recap := app.Group("/api/recap",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRoles(common_models.RoleHRD, common_models.RoleFinance, common_models.RoleAdmin),
	)

	recap.Get("/", h.controller.GetSummary)
	recap.Get("/export", h.controller.Export)
	recap.Post("/send", h.controller.SendRecap)
}
