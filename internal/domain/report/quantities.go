package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
)

// Quantities cantidades agregadas de un pedido.
type Quantities struct {
	Ordered   decimal.Decimal // suma de todas las líneas, sin filtrar por tipo de producto
	Delivered decimal.Decimal // entregas no canceladas, solo productos almacenables
	Remaining decimal.Decimal // max(Ordered - Delivered, 0)
}

// Aggregate calcula pedido, entregado y pendiente de un pedido.
// La sobre-entrega no se refleja como pendiente negativo.
func Aggregate(order entity.SaleOrder) Quantities {
	q := Quantities{Ordered: decimal.Zero, Delivered: decimal.Zero}
	for _, l := range order.Lines {
		q.Ordered = q.Ordered.Add(l.Quantity)
	}
	eachDeliveredMove(order, func(_ entity.Picking, m entity.StockMove) {
		q.Delivered = q.Delivered.Add(m.DeliveredQty)
	})
	q.Remaining = q.Ordered.Sub(q.Delivered)
	if q.Remaining.IsNegative() {
		q.Remaining = decimal.Zero
	}
	return q
}

// eachDeliveredMove recorre los movimientos almacenables de las entregas no canceladas,
// en el orden en que vienen cargados.
func eachDeliveredMove(order entity.SaleOrder, fn func(p entity.Picking, m entity.StockMove)) {
	for _, p := range order.Pickings {
		if p.Cancelled() {
			continue
		}
		for _, m := range p.Moves {
			if !m.Stockable() {
				continue
			}
			fn(p, m)
		}
	}
}
