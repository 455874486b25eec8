package infra

// pdf.go: delivery receipt ("acta de entrega") generation using go-pdf/fpdf.
// Letter-size document with:
//   - Title and delivery number on every page
//   - Worker block (name, DNI, contract type, date)
//   - Item table whose header repeats after each page break
//   - Acknowledgement text and two signature lines
//   - "Página n/N" footer
//
// The output file is saved to storagePath/delivery_{id}.pdf.

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"uniformes/internal/model"

	"github.com/go-pdf/fpdf"
)

const tituloActa = "ACTA DE ENTREGA DE UNIFORMES Y EPP"

// PDFRenderer writes delivery receipts to a directory on local disk.
type PDFRenderer struct {
	StoragePath string
}

func NewPDFRenderer(storagePath string) *PDFRenderer {
	return &PDFRenderer{StoragePath: storagePath}
}

// Renderizar implements service.RenderizadorActa.
func (r *PDFRenderer) Renderizar(ctx context.Context, acta model.ActaEntrega) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return GenerarActaPDF(acta, r.StoragePath)
}

// ActaFileName is the file name used for the receipt of a delivery.
func ActaFileName(acta model.ActaEntrega) string {
	return fmt.Sprintf("delivery_%s.pdf", acta.EntregaID)
}

// GenerarActaPDF renders the receipt of one delivery into storagePath (created
// if needed) and returns the path of the written file.
func GenerarActaPDF(acta model.ActaEntrega, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, ActaFileName(acta))

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252: accents and Ñ

	pageW, pageH := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(contentW, 8, tr(tituloActa), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW, 5, tr("Entrega N° "+acta.EntregaID.String()), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// ── Worker ───────────────────────────────────────────────────────────────
	labelW := 45.0
	datos := [][2]string{
		{"Trabajador:", acta.Trabajador.NombreCompleto()},
		{"DNI:", acta.Trabajador.DNI},
		{"Tipo de contrato:", acta.Trabajador.TipoContrato},
		{"Fecha de entrega:", acta.Fecha.Format("02/01/2006  15:04")},
	}
	for _, d := range datos {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, 6, tr(d[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-labelW, 6, tr(d[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.10 // row number
	col2 := contentW * 0.70 // item name
	col3 := contentW * 0.20 // qty
	rowH := 7.0

	encabezado := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(col1, rowH, tr("N°"), "1", 0, "C", true, 0, "")
		pdf.CellFormat(col2, rowH, "Prenda / EPP", "1", 0, "L", true, 0, "")
		pdf.CellFormat(col3, rowH, "Cantidad", "1", 1, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
	_, margenInferior := pdf.GetAutoPageBreak()

	encabezado()
	for i, p := range acta.Prendas {
		if pdf.GetY()+rowH > pageH-margenInferior {
			pdf.AddPage()
			encabezado()
		}
		pdf.CellFormat(col1, rowH, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col2, rowH, tr(truncar(p.Nombre, 70)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(col3, rowH, fmt.Sprintf("%d", p.Cantidad), "1", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, rowH, "Total de unidades", "1", 0, "R", false, 0, "")
	pdf.CellFormat(col3, rowH, fmt.Sprintf("%d", model.Consolidar(acta.Prendas).Total()), "1", 1, "C", false, 0, "")

	// ── Acknowledgement + signatures ─────────────────────────────────────────
	// Keep the declaration and both signature lines together on one page.
	if pdf.GetY()+60 > pageH-margenInferior {
		pdf.AddPage()
	}
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentW, 5, tr("Declaro haber recibido los uniformes y equipos de protección personal "+
		"detallados en la presente acta, en buen estado, comprometiéndome a su uso adecuado y conservación."),
		"", "J", false)

	pdf.Ln(25)
	firmaW := contentW * 0.4
	y := pdf.GetY()
	pdf.Line(left, y, left+firmaW, y)
	pdf.Line(pageW-right-firmaW, y, pageW-right, y)
	pdf.Ln(2)
	pdf.CellFormat(firmaW, 5, "Firma del trabajador", "", 0, "C", false, 0, "")
	pdf.CellFormat(contentW-2*firmaW, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(firmaW, 5, "Entregado por", "", 1, "C", false, 0, "")
	pdf.CellFormat(firmaW, 5, tr("DNI: "+acta.Trabajador.DNI), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func truncar(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
