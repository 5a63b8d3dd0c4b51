package entity

import (
	"time"

	"github.com/jhoicas/reportes-ventas/internal/domain"
)

// ReportRequest solicitud del asistente de reporte de pedidos con entregas.
// Se crea por invocación del usuario y se modifica una vez al generar el archivo.
type ReportRequest struct {
	ID        string
	UserID    string
	DateStart time.Time
	DateEnd   time.Time
	ExcelFile string // contenido xlsx en base64; vacío hasta la generación
	Filename  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate comprueba que ambas fechas estén informadas y que DateStart <= DateEnd.
func (r *ReportRequest) Validate() error {
	if r.DateStart.IsZero() || r.DateEnd.IsZero() {
		return domain.ErrInvalidInput
	}
	if r.DateStart.After(r.DateEnd) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

// HasFile indica si ya se generó un archivo para la solicitud.
func (r *ReportRequest) HasFile() bool { return r.ExcelFile != "" && r.Filename != "" }
