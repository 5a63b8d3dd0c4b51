// Package report construye el reporte de pedidos confirmados con sus entregas como
// una secuencia de filas tipadas, sin depender del formato de salida (xlsx, pdf).
package report

// ColumnCount número fijo de columnas del reporte (A–I).
const ColumnCount = 9

const (
	// SheetName nombre de la única hoja del libro.
	SheetName = "Sales Orders Report"
	// Title texto de la celda combinada A1:I1.
	Title = "Sales Orders with Deliveries Report"

	// HeaderRowIndex fila (base 0) de los encabezados de columna.
	HeaderRowIndex = 5
	// FirstDataRowIndex primera fila (base 0) de datos.
	FirstDataRowIndex = 6
)

// Headers encabezados de columna, en orden.
var Headers = [ColumnCount]string{
	"Order Ref.",
	"Date",
	"Customer",
	"Total Amount",
	"Status",
	"Remaining Qty To Deliver",
	"Delivery Ref.",
	"Article",
	"Qty Delivered",
}

// ColumnWidths anchos fijos (unidades de carácter) de las columnas A–I.
var ColumnWidths = [ColumnCount]float64{15, 10, 25, 12, 15, 20, 15, 25, 10}

// Formatos de fecha del reporte.
const (
	OrderDateLayout     = "02/01/2006"
	PeriodDateLayout    = "2006-01-02"
	GeneratedAtLayout   = "2006-01-02 15:04"
	filenameStampLayout = "20060102_150405"
)
