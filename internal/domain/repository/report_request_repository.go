package repository

import (
	"context"
	"time"

	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
)

// ReportRequestRepository puerto de persistencia de las solicitudes del asistente de reporte.
type ReportRequestRepository interface {
	Create(ctx context.Context, req *entity.ReportRequest) error
	// Update persiste fechas, archivo y nombre de archivo.
	Update(ctx context.Context, req *entity.ReportRequest) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.ReportRequest, error)
	// DeleteOlderThan elimina las solicitudes cuya última modificación es anterior a cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
