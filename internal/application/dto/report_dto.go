package dto

import "time"

// ReportRequestInput fechas del asistente (formato YYYY-MM-DD).
type ReportRequestInput struct {
	DateStart string `json:"date_start" validate:"required"`
	DateEnd   string `json:"date_end" validate:"required"`
}

// ReportRequestResponse salida de una solicitud de reporte (sin el binario).
type ReportRequestResponse struct {
	ID          string    `json:"id"`
	DateStart   string    `json:"date_start"`
	DateEnd     string    `json:"date_end"`
	Filename    string    `json:"filename,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DownloadAction directiva de descarga devuelta tras generar el reporte.
// La capa web la consume para redirigir al navegador al contenido.
type DownloadAction struct {
	Type     string `json:"type"`   // siempre "ir.actions.act_url"
	URL      string `json:"url"`    // /web/content/<modelo>/<id>/<campo>/<archivo>?download=true
	Target   string `json:"target"` // "self"
	Filename string `json:"filename"`
}
