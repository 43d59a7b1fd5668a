package user

import (
	"errors"

	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{Service: service}
}

// CreateUser godoc
// @Summary      Create user
// @Description  Create a new user (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body CreateUserInput true "User Input"
// @Success      201  {object} User
// @Router       /api/users [post]
func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var input CreateUserInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := c.Service.CreateUser(ctx.Context(), input)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        department_id query string false "Filter by department"
// @Success      200  {object} map[string]interface{}
// @Router       /api/users [get]
func (c *UserController) ListUsers(ctx *fiber.Ctx) error {
	users, total, err := c.Service.ListUsers(ctx.Context(),
		ctx.Query("department_id"),
		int64(ctx.QueryInt("limit", 50)),
		int64(ctx.QueryInt("offset", 0)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": users, "total": total})
}

// GetUser godoc
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object} User
// @Router       /api/users/{id} [get]
func (c *UserController) GetUser(ctx *fiber.Ctx) error {
	user, err := c.Service.GetUser(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(user)
}

// Me godoc
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object} User
// @Router       /api/users/me [get]
func (c *UserController) Me(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	user, err := c.Service.GetUser(ctx.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(user)
}

// UpdateUser godoc
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body CreateUserInput true "User Input"
// @Success      200  {object} User
// @Router       /api/users/{id} [put]
func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	var input CreateUserInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := c.Service.UpdateUser(ctx.Context(), ctx.Params("id"), input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Tags         users
// @Param        id path string true "User ID"
// @Success      200  {object} map[string]string
// @Router       /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	if err := c.Service.DeleteUser(ctx.Context(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "User deleted successfully"})
}
