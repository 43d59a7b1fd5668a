package file

import (
	"errors"
	"io"

	"prestova-one/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FileController struct {
	Service FileService
}

func NewFileController(service FileService) *FileController {
	return &FileController{Service: service}
}

// Upload godoc
// @Summary      Upload attachment
// @Description  Upload a file (medical certificate, receipt) and get back its URL
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File"
// @Param        request_id formData string false "Request ID to attach to"
// @Success      201  {object} File
// @Router       /api/files [post]
func (c *FileController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read file"})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read file"})
	}

	claims := middleware.Claims(ctx)

	file, err := c.Service.SaveUpload(ctx.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
		claims.UserID,
		ctx.FormValue("request_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(file)
}

// Get godoc
// @Summary      Get file metadata
// @Tags         files
// @Produce      json
// @Param        id path string true "File ID"
// @Success      200  {object} File
// @Router       /api/files/{id} [get]
func (c *FileController) Get(ctx *fiber.Ctx) error {
	file, err := c.Service.GetFile(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(file)
}

// Delete godoc
// @Summary      Delete file
// @Tags         files
// @Param        id path string true "File ID"
// @Success      200  {object} map[string]string
// @Router       /api/files/{id} [delete]
func (c *FileController) Delete(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	if err := c.Service.DeleteFile(ctx.Context(), ctx.Params("id"), claims.UserID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "File deleted successfully"})
}
