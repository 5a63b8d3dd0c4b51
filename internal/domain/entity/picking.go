package entity

import "github.com/shopspring/decimal"

// Estados de un albarán de entrega (stock.picking).
const (
	PickingStateDraft     = "draft"
	PickingStateWaiting   = "waiting"
	PickingStateConfirmed = "confirmed"
	PickingStateAssigned  = "assigned"
	PickingStateDone      = "done"
	PickingStateCancel    = "cancel"
)

// Picking operación de entrega asociada a un pedido.
type Picking struct {
	ID    string
	Name  string // referencia del albarán, ej. WH/OUT/00001
	State string
	Moves []StockMove
}

// Cancelled indica si la entrega fue anulada (no cuenta para el reporte).
func (p Picking) Cancelled() bool { return p.State == PickingStateCancel }

// StockMove movimiento de stock de un producto dentro de una entrega.
// DeliveredQty se lee de la columna resuelta al arrancar (quantity o quantity_done).
type StockMove struct {
	ID           string
	ProductID    string
	ProductName  string
	ProductType  string
	DeliveredQty decimal.Decimal
}

// Stockable indica si el movimiento corresponde a un producto almacenable.
func (m StockMove) Stockable() bool { return m.ProductType == ProductTypeStockable }
