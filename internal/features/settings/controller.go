package settings

import (
	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	Service SettingsService
}

func NewSettingsController(service SettingsService) *SettingsController {
	return &SettingsController{Service: service}
}

// GetEmailConfig godoc
// @Summary      Get email settings
// @Tags         settings
// @Produce      json
// @Success      200  {object} EmailConfig
// @Router       /api/settings/email [get]
func (c *SettingsController) GetEmailConfig(ctx *fiber.Ctx) error {
	config, err := c.Service.GetEmailConfig(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if config == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Email settings not configured"})
	}
	return ctx.JSON(config)
}

// SaveEmailConfig godoc
// @Summary      Save email settings
// @Tags         settings
// @Accept       json
// @Param        input body EmailConfig true "Email Config"
// @Success      200  {object} map[string]string
// @Router       /api/settings/email [put]
func (c *SettingsController) SaveEmailConfig(ctx *fiber.Ctx) error {
	var config EmailConfig
	if err := ctx.BodyParser(&config); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := c.Service.SaveEmailConfig(ctx.Context(), &config); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Email settings saved"})
}

// GetUploadConfig godoc
// @Summary      Get upload settings
// @Tags         settings
// @Produce      json
// @Success      200  {object} UploadConfig
// @Router       /api/settings/upload [get]
func (c *SettingsController) GetUploadConfig(ctx *fiber.Ctx) error {
	config, err := c.Service.GetUploadConfig(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(config)
}

// SaveUploadConfig godoc
// @Summary      Save upload settings
// @Tags         settings
// @Accept       json
// @Param        input body UploadConfig true "Upload Config"
// @Success      200  {object} map[string]string
// @Router       /api/settings/upload [put]
func (c *SettingsController) SaveUploadConfig(ctx *fiber.Ctx) error {
	var config UploadConfig
	if err := ctx.BodyParser(&config); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := c.Service.SaveUploadConfig(ctx.Context(), &config); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Upload settings saved"})
}
