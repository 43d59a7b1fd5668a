package department

import (
	"prestova-one/internal/config"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DepartmentApi struct {
	controller *DepartmentController
	config     *config.Config
}

func NewDepartmentApi(controller *DepartmentController, config *config.Config) *DepartmentApi {
	return &DepartmentApi{
		controller: controller,
		config:     config,
	}
}

func (h *DepartmentApi) Setup(app *fiber.App) {
	departments := app.Group("/api/departments", middleware.AuthMiddleware(h.config.SkipAuth))

	departments.Get("/", h.controller.ListDepartments)
	departments.Get("/:id", h.controller.GetDepartment)

	departments.Post("/", middleware.AdminMiddleware(), h.controller.CreateDepartment)
	departments.Put("/:id", middleware.AdminMiddleware(), h.controller.UpdateDepartment)
	departments.Delete("/:id", middleware.AdminMiddleware(), h.controller.DeleteDepartment)
}
