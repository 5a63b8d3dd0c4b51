package report

import (
	"fmt"
	"net/url"
	"time"
)

// Identificadores del registro que expone el binario generado en /web/content.
const (
	WizardModel    = "sale.order.report.wizard"
	ExcelFileField = "excel_file"
	ContentRoot    = "/web/content"
)

// Filename nombre del archivo generado: rapport_commandes_livraisons_<YYYYMMDD>_<HHMMSS>.xlsx.
func Filename(at time.Time) string {
	return "rapport_commandes_livraisons_" + at.Format(filenameStampLayout) + ".xlsx"
}

// ContentURL referencia de descarga: /<content-root>/<modelo>/<id>/<campo>/<archivo>?download=true.
func ContentURL(id, filename string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s?download=true",
		ContentRoot, WizardModel, url.PathEscape(id), ExcelFileField, url.PathEscape(filename))
}
