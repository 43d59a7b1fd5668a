package user

import (
	"prestova-one/internal/config"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
}

func NewUserApi(controller *UserController, config *config.Config) *UserApi {
	return &UserApi{
		controller: controller,
		config:     config,
	}
}

func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.AuthMiddleware(h.config.SkipAuth))

	users.Get("/me", h.controller.Me)

	users.Post("/", middleware.AdminMiddleware(), h.controller.CreateUser)
	users.Get("/", middleware.AdminMiddleware(), h.controller.ListUsers)
	users.Get("/:id", middleware.AdminMiddleware(), h.controller.GetUser)
	users.Put("/:id", middleware.AdminMiddleware(), h.controller.UpdateUser)
	users.Delete("/:id", middleware.AdminMiddleware(), h.controller.DeleteUser)
}
