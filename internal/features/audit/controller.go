package audit

import (
	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	Service AuditService
}

func NewAuditController(service AuditService) *AuditController {
	return &AuditController{Service: service}
}

// ListLogs godoc
// @Summary      List audit logs
// @Description  List audit log entries, newest first (admin only)
// @Tags         audit
// @Produce      json
// @Param        module query string false "Filter by module"
// @Param        record_id query string false "Filter by record id"
// @Success      200  {array} models.AuditLog
// @Router       /api/audit [get]
func (c *AuditController) ListLogs(ctx *fiber.Ctx) error {
	filters := map[string]interface{}{}
	if module := ctx.Query("module"); module != "" {
		filters["module"] = module
	}
	if recordID := ctx.Query("record_id"); recordID != "" {
		filters["record_id"] = recordID
	}

	logs, err := c.Service.ListLogs(ctx.Context(), filters, int64(ctx.QueryInt("limit", 100)), int64(ctx.QueryInt("offset", 0)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(logs)
}
