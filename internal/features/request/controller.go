package request

import (
	"errors"

	"prestova-one/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type RequestController struct {
	Service RequestService
}

func NewRequestController(service RequestService) *RequestController {
	return &RequestController{Service: service}
}

// Submit godoc
// @Summary      Submit a request
// @Description  Submit a new employee request form
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        input body SubmitInput true "Request Input"
// @Success      201  {object} Request
// @Failure      400  {string} string "Invalid request body"
// @Router       /api/requests [post]
func (c *RequestController) Submit(ctx *fiber.Ctx) error {
	var input SubmitInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(ctx)
	req, err := c.Service.Submit(ctx.Context(), claims.Actor(), input)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(req)
}

// List godoc
// @Summary      List requests
// @Description  List requests visible to the authenticated user
// @Tags         requests
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        type query string false "Filter by type"
// @Success      200  {object} map[string]interface{}
// @Router       /api/requests [get]
func (c *RequestController) List(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	opts := ListOptions{
		Status: Status(ctx.Query("status")),
		Type:   Type(ctx.Query("type")),
		Limit:  int64(ctx.QueryInt("limit", 50)),
		Offset: int64(ctx.QueryInt("offset", 0)),
	}

	requests, total, err := c.Service.ListVisible(ctx.Context(), claims.Actor(), opts)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data":  requests,
		"total": total,
	})
}

// Get godoc
// @Summary      Get a request
// @Description  Get one request, with its approval flow resolved
// @Tags         requests
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200  {object} Request
// @Failure      404  {string} string "Not found"
// @Router       /api/requests/{id} [get]
func (c *RequestController) Get(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	req, err := c.Service.Get(ctx.Context(), claims.Actor(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(req)
}
