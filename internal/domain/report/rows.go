package report

import (
	"fmt"
	"time"

	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
)

// RowKind tipo de fila; cada tipo tiene su propio estilo visual.
type RowKind int

const (
	RowKindHeader   RowKind = iota // encabezados de columna
	RowKindOrder                   // resumen del pedido
	RowKindDelivery                // detalle de entrega
)

func (k RowKind) String() string {
	switch k {
	case RowKindHeader:
		return "header"
	case RowKindOrder:
		return "order"
	case RowKindDelivery:
		return "delivery"
	default:
		return fmt.Sprintf("RowKind(%d)", int(k))
	}
}

// Row fila tipada con 9 celdas. Una celda nil se escribe en blanco pero con el estilo de la fila.
// Los valores son string o decimal.Decimal.
type Row struct {
	Kind  RowKind
	Cells [ColumnCount]any
}

// Document contenido completo del reporte, independiente del formato de salida.
type Document struct {
	Title string
	Meta  []string // líneas de metadatos (filas 2–4)
	Rows  []Row    // encabezados + datos, a partir de la fila 6
}

// Input datos necesarios para construir el reporte.
type Input struct {
	DateStart   time.Time
	DateEnd     time.Time
	GeneratedBy string
	GeneratedAt time.Time
	Orders      []entity.SaleOrder
}

// Build construye el documento: metadatos, encabezados y, por cada pedido, su fila
// seguida de sus filas de entrega. Las fechas de pedido se muestran en la zona de GeneratedAt.
func Build(in Input) Document {
	doc := Document{
		Title: Title,
		Meta: []string{
			fmt.Sprintf("Period: %s to %s", in.DateStart.Format(PeriodDateLayout), in.DateEnd.Format(PeriodDateLayout)),
			"Generated by: " + in.GeneratedBy,
			"Generated on: " + in.GeneratedAt.Format(GeneratedAtLayout),
		},
		Rows: make([]Row, 0, 1+len(in.Orders)*2),
	}
	doc.Rows = append(doc.Rows, HeaderRow())

	loc := in.GeneratedAt.Location()
	for _, o := range in.Orders {
		doc.Rows = append(doc.Rows, OrderRow(o, Aggregate(o), loc))
		doc.Rows = append(doc.Rows, DeliveryRows(o)...)
	}
	return doc
}

// HeaderRow fila de encabezados de columna.
func HeaderRow() Row {
	r := Row{Kind: RowKindHeader}
	for i, h := range Headers {
		r.Cells[i] = h
	}
	return r
}

// OrderRow fila resumen del pedido: columnas 0–5 informadas, 6–8 en blanco.
func OrderRow(o entity.SaleOrder, q Quantities, loc *time.Location) Row {
	if loc == nil {
		loc = time.UTC
	}
	return Row{
		Kind: RowKindOrder,
		Cells: [ColumnCount]any{
			o.Name,
			o.DateOrder.In(loc).Format(OrderDateLayout),
			o.CustomerName,
			o.AmountTotal,
			OrderStatusLabel(o.State),
			q.Remaining,
		},
	}
}

// DeliveryRows una fila por (entrega no cancelada, movimiento almacenable) con cantidad entregada > 0.
func DeliveryRows(o entity.SaleOrder) []Row {
	var rows []Row
	eachDeliveredMove(o, func(p entity.Picking, m entity.StockMove) {
		if !m.DeliveredQty.IsPositive() {
			return
		}
		var r Row
		r.Kind = RowKindDelivery
		r.Cells[4] = PickingStatusLabel(p.State)
		r.Cells[6] = p.Name
		r.Cells[7] = m.ProductName
		r.Cells[8] = m.DeliveredQty
		rows = append(rows, r)
	})
	return rows
}
