// Package pdf genera la vista previa PDF del reporte de pedidos con entregas (A4 horizontal).
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  Título                                                              │
//	│  Período / Generado por / Generado el                                │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  Order Ref. | Date | Customer | ... | Delivery Ref. | Article | Qty   │
//	│  fila de pedido (fondo lavanda)                                      │
//	│  fila de entrega                                                     │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domreport "github.com/jhoicas/reportes-ventas/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 255, Green: 255, Blue: 204} // #FFFFCC
	colorOrder  = &props.Color{Red: 230, Green: 230, Blue: 250} // #E6E6FA
	colorBorder = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// gridSize suma de ColumnWidths; cada columna ocupa tantas unidades de grilla como su ancho xlsx.
var gridSize = func() int {
	total := 0
	for _, w := range domreport.ColumnWidths {
		total += int(w)
	}
	return total
}()

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoReportRenderer implementa report.PDFRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	printer *message.Printer
}

// NewMarotoReportRenderer construye el renderer; los números se formatean según lang.
func NewMarotoReportRenderer(lang language.Tag) *MarotoReportRenderer {
	return &MarotoReportRenderer{printer: message.NewPrinter(lang)}
}

// RenderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) RenderPDF(_ context.Context, doc domreport.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc.Title))
	for _, meta := range doc.Meta {
		m.AddRows(text.NewRow(5, meta, props.Text{Size: 8, Color: colorGray}))
	}
	m.AddRows(line.NewRow(4))

	for _, r := range doc.Rows {
		m.AddRows(g.tableRow(r))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string) core.Row {
	return text.NewRow(10, title, props.Text{Style: fontstyle.Bold, Size: 14, Top: 1})
}

// tableRow una fila de la tabla; el estilo de la celda depende del tipo de fila.
func (g *MarotoReportRenderer) tableRow(r domreport.Row) core.Row {
	cell := &props.Cell{BorderType: border.Full, BorderColor: colorBorder, BorderThickness: 0.1}
	textProps := props.Text{Size: 7, Top: 1, Left: 1, Right: 1}

	switch r.Kind {
	case domreport.RowKindHeader:
		cell.BackgroundColor = colorHeader
		textProps.Style = fontstyle.Bold
		textProps.Align = align.Center
	case domreport.RowKindOrder:
		cell.BackgroundColor = colorOrder
	}

	cols := make([]core.Col, 0, domreport.ColumnCount)
	for i, v := range r.Cells {
		c := col.New(int(domreport.ColumnWidths[i])).WithStyle(cell)
		if s := g.cellText(i, v); s != "" {
			p := textProps
			if _, numeric := v.(decimal.Decimal); numeric {
				p.Align = align.Right
			}
			c.Add(text.New(s, p))
		}
		cols = append(cols, c)
	}
	return row.New(6).Add(cols...)
}

// cellText representación textual de una celda; el importe total con dos decimales.
func (g *MarotoReportRenderer) cellText(colIdx int, v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		if colIdx == 3 {
			return g.printer.Sprintf("%.2f", x.InexactFloat64())
		}
		return g.printer.Sprint(x.InexactFloat64())
	default:
		return fmt.Sprint(x)
	}
}
