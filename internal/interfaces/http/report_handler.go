package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reportes-ventas/internal/application/dto"
	"github.com/jhoicas/reportes-ventas/internal/domain"
	domreport "github.com/jhoicas/reportes-ventas/internal/domain/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportWizard operaciones del asistente de reporte que expone la API.
type ReportWizard interface {
	Create(ctx context.Context, userID string, in dto.ReportRequestInput) (*dto.ReportRequestResponse, error)
	Get(ctx context.Context, userID, id string) (*dto.ReportRequestResponse, error)
	UpdateDates(ctx context.Context, userID, id string, in dto.ReportRequestInput) (*dto.ReportRequestResponse, error)
	Generate(ctx context.Context, userID, id string) (*dto.DownloadAction, error)
	Content(ctx context.Context, userID, id, filename string) ([]byte, string, error)
	PreviewPDF(ctx context.Context, userID, id string) ([]byte, string, error)
}

// ReportHandler maneja el asistente de reporte de pedidos con entregas (protegido).
type ReportHandler struct {
	uc ReportWizard
}

// NewReportHandler construye el handler.
func NewReportHandler(uc ReportWizard) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de reporte de pedidos con entregas
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ReportRequestInput  true  "date_start, date_end (YYYY-MM-DD)"
// @Success      201   {object}  dto.ReportRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sale-deliveries [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReportRequestInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), userID, in)
	if err != nil {
		return writeReportError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud de reporte
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ReportRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/sale-deliveries/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeReportError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar el período de la solicitud
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID de la solicitud"
// @Param        body  body  dto.ReportRequestInput  true  "date_start, date_end (YYYY-MM-DD)"
// @Success      200   {object}  dto.ReportRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/sale-deliveries/{id} [put]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	var in dto.ReportRequestInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateDates(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeReportError(c, err)
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Generar el xlsx y obtener la directiva de descarga
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.DownloadAction
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/sale-deliveries/{id}/generate [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	action, err := h.uc.Generate(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeReportError(c, err)
	}
	return c.JSON(action)
}

// PDF godoc
// @Summary      Vista previa PDF del reporte
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/sale-deliveries/{id}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.PreviewPDF(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeReportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(data)
}

// Content godoc
// @Summary      Descargar el archivo adjunto a la solicitud
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        model     path   string  true   "sale.order.report.wizard"
// @Param        id        path   string  true   "ID de la solicitud"
// @Param        field     path   string  true   "excel_file"
// @Param        filename  path   string  true   "nombre del archivo generado"
// @Param        download  query  bool    false  "true para forzar descarga"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /web/content/{model}/{id}/{field}/{filename} [get]
func (h *ReportHandler) Content(c *fiber.Ctx) error {
	if c.Params("model") != domreport.WizardModel || c.Params("field") != domreport.ExcelFileField {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenido no encontrado"})
	}
	data, filename, err := h.uc.Content(c.UserContext(), GetUserID(c), c.Params("id"), c.Params("filename"))
	if err != nil {
		return writeReportError(c, err)
	}
	disposition := "inline"
	if c.QueryBool("download") {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, filename))
	return c.Send(data)
}

// writeReportError traduce los errores de dominio a respuestas HTTP.
func writeReportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE_RANGE", Message: "la fecha de inicio debe ser anterior o igual a la fecha de fin"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud o archivo no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no válido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
