package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reportes-ventas/internal/domain"
	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
	"github.com/jhoicas/reportes-ventas/internal/domain/repository"
)

var _ repository.ReportRequestRepository = (*ReportRequestRepo)(nil)

// ReportRequestRepo persistencia de las solicitudes del asistente (tabla report_requests).
type ReportRequestRepo struct {
	q Querier
}

// NewReportRequestRepository construye el adaptador.
func NewReportRequestRepository(q Querier) *ReportRequestRepo {
	return &ReportRequestRepo{q: q}
}

// Create inserta la solicitud. La constraint CHECK de la tabla refuerza date_start <= date_end.
func (r *ReportRequestRepo) Create(ctx context.Context, req *entity.ReportRequest) error {
	query := `
		INSERT INTO report_requests (id, user_id, date_start, date_end, excel_file, filename, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.UserID, req.DateStart, req.DateEnd,
		nullIfEmpty(req.ExcelFile), nullIfEmpty(req.Filename),
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidDateRange
		}
		return fmt.Errorf("insert report request: %w", err)
	}
	return nil
}

// Update persiste fechas, archivo y nombre de archivo.
func (r *ReportRequestRepo) Update(ctx context.Context, req *entity.ReportRequest) error {
	query := `
		UPDATE report_requests
		SET date_start = $2, date_end = $3, excel_file = $4, filename = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		req.ID, req.DateStart, req.DateEnd,
		nullIfEmpty(req.ExcelFile), nullIfEmpty(req.Filename), req.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidDateRange
		}
		return fmt.Errorf("update report request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID devuelve (nil, nil) si la solicitud no existe.
func (r *ReportRequestRepo) GetByID(ctx context.Context, id string) (*entity.ReportRequest, error) {
	query := `
		SELECT id::text, user_id::text, date_start, date_end, excel_file, filename, created_at, updated_at
		FROM report_requests WHERE id = $1`
	var (
		req            entity.ReportRequest
		file, filename *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.DateStart, &req.DateEnd, &file, &filename,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report request: %w", err)
	}
	req.ExcelFile = derefStr(file)
	req.Filename = derefStr(filename)
	return &req, nil
}

// DeleteOlderThan elimina las solicitudes no modificadas desde cutoff.
func (r *ReportRequestRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM report_requests WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old report requests: %w", err)
	}
	return tag.RowsAffected(), nil
}
