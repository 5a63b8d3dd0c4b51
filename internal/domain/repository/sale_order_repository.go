package repository

import (
	"context"
	"time"

	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
)

// SaleOrderRepository consultas de solo lectura sobre pedidos de venta y sus entregas.
type SaleOrderRepository interface {
	// FindForDeliveryReport devuelve los pedidos confirmados (state = sale) con fecha de pedido
	// entre start y end (días completos, ambos inclusive), con al menos una entrega no cancelada
	// y al menos una línea de producto almacenable. Orden: fecha de pedido ascendente.
	// Carga todas las líneas, entregas y movimientos de cada pedido.
	FindForDeliveryReport(ctx context.Context, start, end time.Time) ([]entity.SaleOrder, error)
}
