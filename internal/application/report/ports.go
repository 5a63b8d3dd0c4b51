package report

import (
	"context"
	"time"

	domreport "github.com/jhoicas/reportes-ventas/internal/domain/report"
)

// SpreadsheetRenderer genera el libro xlsx de un documento de reporte.
type SpreadsheetRenderer interface {
	RenderSpreadsheet(ctx context.Context, doc domreport.Document) ([]byte, error)
}

// PDFRenderer genera la vista previa PDF del mismo documento.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc domreport.Document) ([]byte, error)
}

// IdentityProvider resuelve el nombre visible del usuario que genera el reporte.
type IdentityProvider interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// Clock hora actual y zona horaria en la que se interpretan las fechas del asistente.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// GeneratedEvent evento emitido tras adjuntar un reporte a su solicitud.
type GeneratedEvent struct {
	RequestID   string    `json:"request_id"`
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"`
	DateStart   string    `json:"date_start"`
	DateEnd     string    `json:"date_end"`
	OrderCount  int       `json:"order_count"`
	SizeBytes   int       `json:"size_bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}

// EventPublisher publica eventos de reportes generados. Un fallo no invalida la generación.
type EventPublisher interface {
	PublishGenerated(ctx context.Context, ev GeneratedEvent) error
}
