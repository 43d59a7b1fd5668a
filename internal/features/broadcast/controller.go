package broadcast

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type BroadcastController struct {
	Service BroadcastService
}

func NewBroadcastController(service BroadcastService) *BroadcastController {
	return &BroadcastController{Service: service}
}

type listInput struct {
	Name       string   `json:"name"`
	Recipients []string `json:"recipients"`
}

// CreateList godoc
// @Summary      Create broadcast list
// @Tags         broadcast
// @Accept       json
// @Produce      json
// @Param        input body listInput true "List Input"
// @Success      201  {object} BroadcastList
// @Router       /api/broadcast-lists [post]
func (c *BroadcastController) CreateList(ctx *fiber.Ctx) error {
	var input listInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	list, err := c.Service.CreateList(ctx.Context(), input.Name, input.Recipients)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(list)
}

// ListLists godoc
// @Summary      List broadcast lists
// @Tags         broadcast
// @Produce      json
// @Success      200  {array} BroadcastList
// @Router       /api/broadcast-lists [get]
func (c *BroadcastController) ListLists(ctx *fiber.Ctx) error {
	lists, err := c.Service.ListLists(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(lists)
}

// GetList godoc
// @Summary      Get broadcast list
// @Tags         broadcast
// @Produce      json
// @Param        id path string true "List ID"
// @Success      200  {object} BroadcastList
// @Router       /api/broadcast-lists/{id} [get]
func (c *BroadcastController) GetList(ctx *fiber.Ctx) error {
	list, err := c.Service.GetList(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broadcast list not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(list)
}

// UpdateList godoc
// @Summary      Update broadcast list
// @Tags         broadcast
// @Accept       json
// @Produce      json
// @Param        id path string true "List ID"
// @Param        input body listInput true "List Input"
// @Success      200  {object} BroadcastList
// @Router       /api/broadcast-lists/{id} [put]
func (c *BroadcastController) UpdateList(ctx *fiber.Ctx) error {
	var input listInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	list, err := c.Service.UpdateList(ctx.Context(), ctx.Params("id"), input.Name, input.Recipients)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broadcast list not found"})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(list)
}

// DeleteList godoc
// @Summary      Delete broadcast list
// @Tags         broadcast
// @Param        id path string true "List ID"
// @Success      200  {object} map[string]string
// @Router       /api/broadcast-lists/{id} [delete]
func (c *BroadcastController) DeleteList(ctx *fiber.Ctx) error {
	if err := c.Service.DeleteList(ctx.Context(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Broadcast list deleted successfully"})
}
