// Package xlsx escribe el reporte de pedidos con entregas en un libro Excel usando excelize.
//
// Layout de la hoja:
//
//	fila 1    título combinado A1:I1
//	filas 2–4 período, usuario, fecha de generación
//	fila 6    encabezados de columna
//	fila 7+   pedido, sus entregas, siguiente pedido...
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	domreport "github.com/jhoicas/reportes-ventas/internal/domain/report"
)

// ExcelizeRenderer implementa report.SpreadsheetRenderer.
type ExcelizeRenderer struct{}

// NewExcelizeRenderer construye el renderer.
func NewExcelizeRenderer() *ExcelizeRenderer { return &ExcelizeRenderer{} }

type styles struct {
	title    int
	header   int
	order    int
	delivery int
}

// RenderSpreadsheet genera el libro en memoria y devuelve sus bytes.
func (r *ExcelizeRenderer) RenderSpreadsheet(_ context.Context, doc domreport.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := domreport.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(domreport.ColumnCount)

	// ── Título y metadatos ───────────────────────────────────────────────────
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("xlsx: combinar título: %w", err)
	}
	if err := f.SetCellValue(sheet, "A1", doc.Title); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", st.title); err != nil {
		return nil, fmt.Errorf("xlsx: estilo título: %w", err)
	}
	for i, line := range doc.Meta {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue(sheet, cell, line); err != nil {
			return nil, fmt.Errorf("xlsx: metadato %s: %w", cell, err)
		}
	}

	// ── Encabezados y datos ──────────────────────────────────────────────────
	for i, row := range doc.Rows {
		if err := writeRow(f, sheet, domreport.HeaderRowIndex+i+1, row, st); err != nil {
			return nil, err
		}
	}

	for i, w := range domreport.ColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("xlsx: ancho columna %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow escribe las 9 celdas de una fila (1-based) y aplica el estilo de su tipo a todo el rango,
// de modo que las celdas en blanco conservan borde y fondo.
func writeRow(f *excelize.File, sheet string, excelRow int, row domreport.Row, st styles) error {
	first, _ := excelize.CoordinatesToCellName(1, excelRow)
	last, _ := excelize.CoordinatesToCellName(domreport.ColumnCount, excelRow)
	if err := f.SetCellStyle(sheet, first, last, st.forKind(row.Kind)); err != nil {
		return fmt.Errorf("xlsx: estilo fila %d: %w", excelRow, err)
	}
	for col, v := range row.Cells {
		if v == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(col+1, excelRow)
		if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
			return fmt.Errorf("xlsx: celda %s: %w", cell, err)
		}
	}
	return nil
}

// cellValue convierte decimales a float64 para que Excel los trate como números.
func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}

func (s styles) forKind(k domreport.RowKind) int {
	switch k {
	case domreport.RowKindHeader:
		return s.header
	case domreport.RowKindOrder:
		return s.order
	default:
		return s.delivery
	}
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return st, fmt.Errorf("xlsx: estilo título: %w", err)
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFFFCC"}, Pattern: 1},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	st.order, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return st, fmt.Errorf("xlsx: estilo pedido: %w", err)
	}

	st.delivery, err = f.NewStyle(&excelize.Style{
		Border: thinBorders(),
	})
	if err != nil {
		return st, fmt.Errorf("xlsx: estilo entrega: %w", err)
	}
	return st, nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}
}
