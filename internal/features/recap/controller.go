package recap

import (
	"fmt"
	"time"

	"prestova-one/internal/features/request"

	"github.com/gofiber/fiber/v2"
)

type RecapController struct {
	Service RecapService
}

func NewRecapController(service RecapService) *RecapController {
	return &RecapController{Service: service}
}

func (c *RecapController) period(ctx *fiber.Ctx) (int, time.Month) {
	now := time.Now().UTC()
	year := ctx.QueryInt("year", now.Year())
	month := ctx.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, time.Month(month)
}

func (c *RecapController) filters(ctx *fiber.Ctx) Filters {
	return Filters{
		Type:         request.Type(ctx.Query("type")),
		DepartmentID: ctx.Query("department_id"),
		Status:       request.Status(ctx.Query("status")),
	}
}

// GetSummary godoc
// @Summary      Monthly request summary
// @Description  Aggregate counts and the raw requests for a given month
// @Tags         recap
// @Produce      json
// @Param        year  query int false "Year (defaults to current)"
// @Param        month query int false "Month 1-12 (defaults to current)"
// @Param        type query string false "Filter by request type"
// @Param        department_id query string false "Filter by department"
// @Param        status query string false "Filter by status"
// @Success      200  {object} recap.Summary
// @Router       /api/recap [get]
func (c *RecapController) GetSummary(ctx *fiber.Ctx) error {
	year, month := c.period(ctx)

	summary, err := c.Service.BuildSummary(ctx.Context(), year, month, c.filters(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(summary)
}

// Export godoc
// @Summary      Export monthly recap
// @Description  Download the month's requests as an Excel workbook
// @Tags         recap
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        year  query int false "Year (defaults to current)"
// @Param        month query int false "Month 1-12 (defaults to current)"
// @Success      200  {file} binary
// @Router       /api/recap/export [get]
func (c *RecapController) Export(ctx *fiber.Ctx) error {
	year, month := c.period(ctx)

	data, filename, err := c.Service.ExportToExcel(ctx.Context(), year, month, c.filters(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(data)
}

// SendRecap godoc
// @Summary      Send monthly recap email
// @Description  Trigger last month's recap email to the configured broadcast list
// @Tags         recap
// @Success      200  {object} map[string]string
// @Router       /api/recap/send [post]
func (c *RecapController) SendRecap(ctx *fiber.Ctx) error {
	if err := c.Service.SendMonthlyRecap(ctx.Context()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "recap sent"})
}
