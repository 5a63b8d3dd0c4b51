package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
	"github.com/jhoicas/reportes-ventas/internal/domain/repository"
)

var _ repository.SaleOrderRepository = (*SaleOrderRepo)(nil)

// SaleOrderRepo lecturas sobre las tablas del ERP (sale_orders, sale_order_lines,
// stock_pickings, stock_moves). No escribe nunca en ellas.
type SaleOrderRepo struct {
	q            Querier
	deliveredCol string // identificador ya saneado, ej. "quantity"
}

// NewSaleOrderRepository recibe la columna de cantidad entregada resuelta por ResolveDeliveredColumn.
func NewSaleOrderRepository(q Querier, deliveredColumn string) (*SaleOrderRepo, error) {
	if !isKnownDeliveredColumn(deliveredColumn) {
		return nil, fmt.Errorf("columna de cantidad entregada desconocida: %q", deliveredColumn)
	}
	return &SaleOrderRepo{q: q, deliveredCol: pgx.Identifier{deliveredColumn}.Sanitize()}, nil
}

// FindForDeliveryReport ver repository.SaleOrderRepository.
// El rango es [start, end+1 día) para incluir el último día completo.
func (r *SaleOrderRepo) FindForDeliveryReport(ctx context.Context, start, end time.Time) ([]entity.SaleOrder, error) {
	upper := end.AddDate(0, 0, 1)
	query := `
		SELECT so.id, so.name, so.date_order, COALESCE(c.name, ''), so.amount_total, so.state
		FROM sale_orders so
		LEFT JOIN customers c ON c.id = so.customer_id
		WHERE so.state = 'sale'
		  AND so.date_order >= $1 AND so.date_order < $2
		  AND EXISTS (
		      SELECT 1 FROM stock_pickings sp
		      WHERE sp.sale_id = so.id AND sp.state <> 'cancel'
		  )
		  AND EXISTS (
		      SELECT 1 FROM sale_order_lines l
		      JOIN products p ON p.id = l.product_id
		      WHERE l.order_id = so.id AND p.type = 'product'
		  )
		ORDER BY so.date_order ASC, so.id ASC`
	rows, err := r.q.Query(ctx, query, start, upper)
	if err != nil {
		return nil, fmt.Errorf("sale orders for report: %w", err)
	}
	defer rows.Close()

	var (
		orders []entity.SaleOrder
		ids    []int64
	)
	for rows.Next() {
		var (
			id int64
			o  entity.SaleOrder
		)
		if err := rows.Scan(&id, &o.Name, &o.DateOrder, &o.CustomerName, &o.AmountTotal, &o.State); err != nil {
			return nil, fmt.Errorf("scan sale order: %w", err)
		}
		o.ID = strconv.FormatInt(id, 10)
		orders = append(orders, o)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sale orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	if err := r.loadLines(ctx, ids, index, orders); err != nil {
		return nil, err
	}
	if err := r.loadPickings(ctx, ids, index, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SaleOrderRepo) loadLines(ctx context.Context, ids []int64, index map[int64]int, orders []entity.SaleOrder) error {
	query := `
		SELECT l.order_id, l.id, p.id, p.name, p.type, l.product_uom_qty
		FROM sale_order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id = ANY($1)
		ORDER BY l.order_id, l.id`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("sale order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, lineID, productID int64
			line                       entity.SaleOrderLine
		)
		if err := rows.Scan(&orderID, &lineID, &productID, &line.ProductName, &line.ProductType, &line.Quantity); err != nil {
			return fmt.Errorf("scan sale order line: %w", err)
		}
		line.ID = strconv.FormatInt(lineID, 10)
		line.ProductID = strconv.FormatInt(productID, 10)
		i := index[orderID]
		orders[i].Lines = append(orders[i].Lines, line)
	}
	return rows.Err()
}

// loadPickings carga todas las entregas (incluidas las canceladas) con sus movimientos;
// el filtrado de canceladas y de productos no almacenables se hace al agregar.
func (r *SaleOrderRepo) loadPickings(ctx context.Context, ids []int64, index map[int64]int, orders []entity.SaleOrder) error {
	query := fmt.Sprintf(`
		SELECT sp.sale_id, sp.id, sp.name, sp.state,
		       m.id, COALESCE(p.id, 0), COALESCE(p.name, ''), COALESCE(p.type, ''), COALESCE(m.%s, 0)
		FROM stock_pickings sp
		LEFT JOIN stock_moves m ON m.picking_id = sp.id
		LEFT JOIN products p ON p.id = m.product_id
		WHERE sp.sale_id = ANY($1)
		ORDER BY sp.sale_id, sp.id, m.id`, r.deliveredCol)
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("stock pickings: %w", err)
	}
	defer rows.Close()

	var (
		lastPicking int64 = -1
		cur         *entity.Picking
	)
	for rows.Next() {
		var (
			orderID, pickingID, productID int64
			moveID                        *int64
			name, state                   string
			productName, productType      string
			qty                           decimal.Decimal
		)
		if err := rows.Scan(&orderID, &pickingID, &name, &state,
			&moveID, &productID, &productName, &productType, &qty); err != nil {
			return fmt.Errorf("scan stock picking: %w", err)
		}
		if pickingID != lastPicking {
			i := index[orderID]
			orders[i].Pickings = append(orders[i].Pickings, entity.Picking{
				ID:    strconv.FormatInt(pickingID, 10),
				Name:  name,
				State: state,
			})
			cur = &orders[i].Pickings[len(orders[i].Pickings)-1]
			lastPicking = pickingID
		}
		if moveID == nil {
			continue
		}
		cur.Moves = append(cur.Moves, entity.StockMove{
			ID:           strconv.FormatInt(*moveID, 10),
			ProductID:    strconv.FormatInt(productID, 10),
			ProductName:  productName,
			ProductType:  productType,
			DeliveredQty: qty,
		})
	}
	return rows.Err()
}
