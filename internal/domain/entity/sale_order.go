package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido de venta (propiedad del ERP; aquí solo se leen).
const (
	SaleOrderStateDraft  = "draft"  // Presupuesto
	SaleOrderStateSent   = "sent"   // Presupuesto enviado
	SaleOrderStateSale   = "sale"   // Confirmado
	SaleOrderStateDone   = "done"   // Bloqueado
	SaleOrderStateCancel = "cancel" // Cancelado
)

// SaleOrder cabecera de un pedido de venta con sus líneas y entregas asociadas.
type SaleOrder struct {
	ID           string
	Name         string // referencia, ej. SO001
	DateOrder    time.Time
	CustomerName string
	AmountTotal  decimal.Decimal
	State        string
	Lines        []SaleOrderLine
	Pickings     []Picking
}

// SaleOrderLine línea pedida (producto + cantidad).
type SaleOrderLine struct {
	ID          string
	ProductID   string
	ProductName string
	ProductType string
	Quantity    decimal.Decimal // product_uom_qty
}
