// Package report contiene el asistente de reporte de pedidos confirmados con entregas:
// alta y validación de la solicitud, generación del xlsx y entrega del contenido.
package report

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/reportes-ventas/internal/application/dto"
	"github.com/jhoicas/reportes-ventas/internal/domain"
	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
	domreport "github.com/jhoicas/reportes-ventas/internal/domain/report"
	"github.com/jhoicas/reportes-ventas/internal/domain/repository"
	"github.com/jhoicas/reportes-ventas/pkg/logger"
)

const dateLayout = "2006-01-02"

// WizardUseCase casos de uso del asistente de reporte.
type WizardUseCase struct {
	requests  repository.ReportRequestRepository
	orders    repository.SaleOrderRepository
	identity  IdentityProvider
	clock     Clock
	xlsx      SpreadsheetRenderer
	pdf       PDFRenderer
	publisher EventPublisher
	log       *logger.Logger
}

// WizardDeps dependencias del asistente. PDF y Publisher son opcionales.
type WizardDeps struct {
	Requests  repository.ReportRequestRepository
	Orders    repository.SaleOrderRepository
	Identity  IdentityProvider
	Clock     Clock
	XLSX      SpreadsheetRenderer
	PDF       PDFRenderer
	Publisher EventPublisher
	Log       *logger.Logger
}

// NewWizardUseCase construye el caso de uso inyectando todas sus dependencias.
func NewWizardUseCase(deps WizardDeps) *WizardUseCase {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &WizardUseCase{
		requests:  deps.Requests,
		orders:    deps.Orders,
		identity:  deps.Identity,
		clock:     deps.Clock,
		xlsx:      deps.XLSX,
		pdf:       deps.PDF,
		publisher: deps.Publisher,
		log:       log.Component("sale_delivery_report"),
	}
}

// Create registra una solicitud nueva. Falla con domain.ErrInvalidDateRange si inicio > fin.
func (uc *WizardUseCase) Create(ctx context.Context, userID string, in dto.ReportRequestInput) (*dto.ReportRequestResponse, error) {
	start, end, err := uc.parseRange(in)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	req := &entity.ReportRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		DateStart: start,
		DateEnd:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := uc.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("report: guardar solicitud: %w", err)
	}
	return toResponse(req), nil
}

// Get devuelve la solicitud si pertenece al usuario.
func (uc *WizardUseCase) Get(ctx context.Context, userID, id string) (*dto.ReportRequestResponse, error) {
	req, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(req), nil
}

// UpdateDates cambia el período; la validación se repite en cada guardado.
// Un archivo ya generado se descarta porque deja de corresponder al período.
func (uc *WizardUseCase) UpdateDates(ctx context.Context, userID, id string, in dto.ReportRequestInput) (*dto.ReportRequestResponse, error) {
	req, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	start, end, err := uc.parseRange(in)
	if err != nil {
		return nil, err
	}
	updated := *req
	updated.DateStart, updated.DateEnd = start, end
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.ExcelFile, updated.Filename = "", ""
	updated.UpdatedAt = uc.clock.Now()
	if err := uc.requests.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("report: actualizar solicitud: %w", err)
	}
	return toResponse(&updated), nil
}

// Generate selecciona los pedidos, construye el xlsx, lo adjunta en base64 a la solicitud
// con un nombre de archivo con marca de tiempo y devuelve la directiva de descarga.
func (uc *WizardUseCase) Generate(ctx context.Context, userID, id string) (*dto.DownloadAction, error) {
	req, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	doc, orderCount, now, err := uc.buildDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := uc.xlsx.RenderSpreadsheet(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("report: generar xlsx: %w", err)
	}

	req.ExcelFile = base64.StdEncoding.EncodeToString(data)
	req.Filename = domreport.Filename(now)
	req.UpdatedAt = now
	if err := uc.requests.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("report: adjuntar archivo: %w", err)
	}

	uc.log.Info().
		Str("request_id", req.ID).
		Str("user_id", userID).
		Int("orders", orderCount).
		Int("bytes", len(data)).
		Str("filename", req.Filename).
		Msg("reporte generado")

	if uc.publisher != nil {
		ev := GeneratedEvent{
			RequestID:   req.ID,
			UserID:      userID,
			Filename:    req.Filename,
			DateStart:   req.DateStart.Format(dateLayout),
			DateEnd:     req.DateEnd.Format(dateLayout),
			OrderCount:  orderCount,
			SizeBytes:   len(data),
			GeneratedAt: now,
		}
		if err := uc.publisher.PublishGenerated(ctx, ev); err != nil {
			uc.log.Warn().Err(err).Str("request_id", req.ID).Msg("publicar evento de reporte")
		}
	}

	return &dto.DownloadAction{
		Type:     "ir.actions.act_url",
		URL:      domreport.ContentURL(req.ID, req.Filename),
		Target:   "self",
		Filename: req.Filename,
	}, nil
}

// Content devuelve el binario adjunto y su nombre de archivo.
// domain.ErrNotFound si aún no se generó o si filename no coincide con el adjunto.
func (uc *WizardUseCase) Content(ctx context.Context, userID, id, filename string) ([]byte, string, error) {
	req, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	if !req.HasFile() || (filename != "" && filename != req.Filename) {
		return nil, "", domain.ErrNotFound
	}
	data, err := base64.StdEncoding.DecodeString(req.ExcelFile)
	if err != nil {
		return nil, "", fmt.Errorf("report: decodificar archivo: %w", err)
	}
	return data, req.Filename, nil
}

// PreviewPDF genera al vuelo la vista previa PDF del período de la solicitud, sin adjuntarla.
func (uc *WizardUseCase) PreviewPDF(ctx context.Context, userID, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("%w: vista previa PDF no disponible", domain.ErrNotFound)
	}
	req, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	doc, _, now, err := uc.buildDocument(ctx, req)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.RenderPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar pdf: %w", err)
	}
	return data, strings.TrimSuffix(domreport.Filename(now), ".xlsx") + ".pdf", nil
}

// Vacuum elimina las solicitudes sin modificar desde hace más de maxAge.
func (uc *WizardUseCase) Vacuum(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := uc.clock.Now().Add(-maxAge)
	n, err := uc.requests.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("report: purgar solicitudes: %w", err)
	}
	return n, nil
}

// buildDocument valida la solicitud, consulta los pedidos y arma el documento.
func (uc *WizardUseCase) buildDocument(ctx context.Context, req *entity.ReportRequest) (domreport.Document, int, time.Time, error) {
	if err := req.Validate(); err != nil {
		return domreport.Document{}, 0, time.Time{}, err
	}
	loc := uc.clock.Location()
	start, end := inLocation(req.DateStart, loc), inLocation(req.DateEnd, loc)

	orders, err := uc.orders.FindForDeliveryReport(ctx, start, end)
	if err != nil {
		return domreport.Document{}, 0, time.Time{}, fmt.Errorf("report: seleccionar pedidos: %w", err)
	}
	name, err := uc.identity.DisplayName(ctx, req.UserID)
	if err != nil {
		return domreport.Document{}, 0, time.Time{}, fmt.Errorf("report: identificar usuario: %w", err)
	}

	now := uc.clock.Now()
	doc := domreport.Build(domreport.Input{
		DateStart:   start,
		DateEnd:     end,
		GeneratedBy: name,
		GeneratedAt: now,
		Orders:      orders,
	})
	return doc, len(orders), now, nil
}

func (uc *WizardUseCase) load(ctx context.Context, userID, id string) (*entity.ReportRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	req, err := uc.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report: obtener solicitud: %w", err)
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return req, nil
}

func (uc *WizardUseCase) parseRange(in dto.ReportRequestInput) (time.Time, time.Time, error) {
	loc := uc.clock.Location()
	start, err := time.ParseInLocation(dateLayout, in.DateStart, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_start debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	end, err := time.ParseInLocation(dateLayout, in.DateEnd, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_end debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return start, end, nil
}

// inLocation reinterpreta una fecha (columna DATE) como medianoche en loc.
func inLocation(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func toResponse(r *entity.ReportRequest) *dto.ReportRequestResponse {
	out := &dto.ReportRequestResponse{
		ID:        r.ID,
		DateStart: r.DateStart.Format(dateLayout),
		DateEnd:   r.DateEnd.Format(dateLayout),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.HasFile() {
		out.Filename = r.Filename
		out.DownloadURL = domreport.ContentURL(r.ID, r.Filename)
	}
	return out
}
