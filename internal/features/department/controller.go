package department

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type DepartmentController struct {
	Service DepartmentService
}

func NewDepartmentController(service DepartmentService) *DepartmentController {
	return &DepartmentController{Service: service}
}

type departmentInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CreateDepartment godoc
// @Summary      Create department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        input body departmentInput true "Department Input"
// @Success      201  {object} Department
// @Router       /api/departments [post]
func (c *DepartmentController) CreateDepartment(ctx *fiber.Ctx) error {
	var input departmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	department, err := c.Service.CreateDepartment(ctx.Context(), input.Name, input.Code)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(department)
}

// ListDepartments godoc
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200  {array} Department
// @Router       /api/departments [get]
func (c *DepartmentController) ListDepartments(ctx *fiber.Ctx) error {
	departments, err := c.Service.ListDepartments(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(departments)
}

// GetDepartment godoc
// @Summary      Get department by id
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID"
// @Success      200  {object} Department
// @Router       /api/departments/{id} [get]
func (c *DepartmentController) GetDepartment(ctx *fiber.Ctx) error {
	department, err := c.Service.GetDepartment(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(department)
}

// UpdateDepartment godoc
// @Summary      Update department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id path string true "Department ID"
// @Param        input body departmentInput true "Department Input"
// @Success      200  {object} Department
// @Router       /api/departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *fiber.Ctx) error {
	var input departmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	department, err := c.Service.UpdateDepartment(ctx.Context(), ctx.Params("id"), input.Name, input.Code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(department)
}

// DeleteDepartment godoc
// @Summary      Delete department
// @Tags         departments
// @Param        id path string true "Department ID"
// @Success      200  {object} map[string]string
// @Router       /api/departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *fiber.Ctx) error {
	if err := c.Service.DeleteDepartment(ctx.Context(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Department deleted successfully"})
}
