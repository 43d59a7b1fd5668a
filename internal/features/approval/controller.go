package approval

import (
	"errors"

	"prestova-one/internal/features/request"
	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ApprovalController struct {
	Service ApprovalService
}

func NewApprovalController(service ApprovalService) *ApprovalController {
	return &ApprovalController{Service: service}
}

// ListActionable godoc
// @Summary      List actionable requests
// @Description  List the requests the authenticated approver can decide now
// @Tags         approvals
// @Produce      json
// @Success      200  {array} request.Request
// @Router       /api/approvals/actionable [get]
func (c *ApprovalController) ListActionable(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	requests, err := c.Service.ListActionable(ctx.Context(), claims.Actor())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(requests)
}

// Approve godoc
// @Summary      Approve a request
// @Description  Approve the current pending step of a request
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        input body map[string]string false "Comment"
// @Success      200  {object} request.Request
// @Failure      403  {string} string "Forbidden"
// @Failure      409  {string} string "Conflict"
// @Router       /api/approvals/{id}/approve [post]
func (c *ApprovalController) Approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, request.StepApproved)
}

// Reject godoc
// @Summary      Reject a request
// @Description  Reject the current pending step of a request
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        input body map[string]string false "Comment"
// @Success      200  {object} request.Request
// @Failure      403  {string} string "Forbidden"
// @Failure      409  {string} string "Conflict"
// @Router       /api/approvals/{id}/reject [post]
func (c *ApprovalController) Reject(ctx *fiber.Ctx) error {
	return c.decide(ctx, request.StepRejected)
}

func (c *ApprovalController) decide(ctx *fiber.Ctx, action request.StepStatus) error {
	var body struct {
		Comment string `json:"comment"`
	}
	// Comment is optional
	_ = ctx.BodyParser(&body)

	claims := middleware.Claims(ctx)

	updated, err := c.Service.Decide(ctx.Context(), ctx.Params("id"), claims.Actor(), action, body.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAuthorized):
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not authorized to decide this request"})
		case errors.Is(err, ErrNoPendingStep):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Nothing to approve"})
		case errors.Is(err, request.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		case errors.Is(err, request.ErrConflict):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Request changed, please retry"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.JSON(updated)
}
