package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/reportes-ventas/internal/domain"
)

// Columnas conocidas de cantidad entregada en stock_moves, por orden de preferencia:
// "quantity" en esquemas actuales del ERP, "quantity_done" en los anteriores.
const (
	DeliveredColumnQuantity     = "quantity"
	DeliveredColumnQuantityDone = "quantity_done"
)

var deliveredColumns = []string{DeliveredColumnQuantity, DeliveredColumnQuantityDone}

// ResolveDeliveredColumn inspecciona el esquema una sola vez (al arrancar) y devuelve la columna
// de cantidad entregada a usar. domain.ErrDeliveredFieldUnresolved si no existe ninguna.
func ResolveDeliveredColumn(ctx context.Context, q Querier) (string, error) {
	const query = `
		SELECT EXISTS (
		    SELECT 1 FROM information_schema.columns
		    WHERE table_schema = current_schema()
		      AND table_name   = 'stock_moves'
		      AND column_name  = $1
		)`
	for _, col := range deliveredColumns {
		var exists bool
		if err := q.QueryRow(ctx, query, col).Scan(&exists); err != nil {
			return "", fmt.Errorf("resolver columna entregada: %w", err)
		}
		if exists {
			return col, nil
		}
	}
	return "", domain.ErrDeliveredFieldUnresolved
}

func isKnownDeliveredColumn(col string) bool {
	for _, c := range deliveredColumns {
		if c == col {
			return true
		}
	}
	return false
}
