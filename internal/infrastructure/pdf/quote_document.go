package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// Palette shared with the web frontend.
var (
	accentColor = rgb{220, 38, 38}   // #DC2626
	darkColor   = rgb{24, 24, 27}    // #18181b
	zebraColor  = rgb{249, 250, 251} // #f9fafb
	gridColor   = rgb{39, 39, 42}    // #27272a
)

type rgb struct{ r, g, b int }

// QuotePDFRenderer renders a quote as a printable pt-BR document.
type QuotePDFRenderer struct{}

var _ interfaces.IQuoteDocumentRenderer = (*QuotePDFRenderer)(nil)

func NewQuotePDFRenderer() *QuotePDFRenderer {
	return &QuotePDFRenderer{}
}

func (r *QuotePDFRenderer) Render(q entities.Quote, client *entities.Client, vehicle *entities.Vehicle, settings entities.Settings) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	// Workshop title.
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(accentColor.r, accentColor.g, accentColor.b)
	doc.CellFormat(0, 14, tr(settings.WorkshopName), "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 8, tr(fmt.Sprintf("Orçamento #%s", shortID(q.ID))), "", 1, "L", false, 0, "")
	doc.Ln(4)

	// Client, vehicle, date and status block with a dark label column.
	doc.SetFont("Helvetica", "", 10)
	doc.SetDrawColor(gridColor.r, gridColor.g, gridColor.b)
	for _, row := range infoRows(q, client, vehicle) {
		doc.SetFont("Helvetica", "B", 10)
		doc.SetFillColor(darkColor.r, darkColor.g, darkColor.b)
		doc.SetTextColor(255, 255, 255)
		doc.CellFormat(38, 9, tr(row[0]), "1", 0, "L", true, 0, "")

		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(0, 0, 0)
		doc.CellFormat(114, 9, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 7, tr("Itens do Orçamento"), "", 1, "L", false, 0, "")
	doc.Ln(2)

	itemWidths := []float64{25, 64, 18, 30, 30}
	headers := []string{"Tipo", "Item", "Qtd", "Preço Unit.", "Total"}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(accentColor.r, accentColor.g, accentColor.b)
	doc.SetTextColor(255, 255, 255)
	for i, h := range headers {
		doc.CellFormat(itemWidths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	for i, li := range q.Items {
		if i%2 == 1 {
			doc.SetFillColor(zebraColor.r, zebraColor.g, zebraColor.b)
		} else {
			doc.SetFillColor(255, 255, 255)
		}
		cols := []string{
			strings.ToUpper(string(li.Type)),
			li.Name,
			fmt.Sprintf("%d", li.Quantity),
			formatCurrency(li.UnitPrice),
			formatCurrency(li.Total),
		}
		for j, col := range cols {
			doc.CellFormat(itemWidths[j], 8, tr(col), "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(6)

	// Totals, right aligned; the grand total gets the accent treatment.
	rows := totalRows(q)
	for i, row := range rows {
		last := i == len(rows)-1
		if last {
			doc.SetFont("Helvetica", "B", 14)
			doc.SetTextColor(accentColor.r, accentColor.g, accentColor.b)
			doc.SetDrawColor(accentColor.r, accentColor.g, accentColor.b)
			doc.SetLineWidth(0.6)
			x, y := doc.GetX(), doc.GetY()
			doc.Line(x+40, y, x+152, y)
			doc.Ln(2)
		} else {
			doc.SetFont("Helvetica", "", 10)
			doc.SetTextColor(0, 0, 0)
		}
		doc.CellFormat(122, 8, tr(row[0]), "", 0, "R", false, 0, "")
		doc.CellFormat(30, 8, tr(row[1]), "", 1, "R", false, 0, "")
	}

	if q.Notes != "" {
		doc.Ln(6)
		doc.SetFont("Helvetica", "B", 12)
		doc.SetTextColor(0, 0, 0)
		doc.CellFormat(0, 7, tr("Observações:"), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 6, tr(q.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// infoRows yields the header block label/value pairs. Missing client or
// vehicle references degrade to N/A rather than failing the render.
func infoRows(q entities.Quote, client *entities.Client, vehicle *entities.Vehicle) [][2]string {
	clientName := "N/A"
	if client != nil {
		clientName = client.Name
	}

	vehicleDesc := "N/A"
	if vehicle != nil {
		vehicleDesc = fmt.Sprintf("%s %s - %s", vehicle.Brand, vehicle.Model, vehicle.LicensePlate)
	}

	return [][2]string{
		{"Cliente:", clientName},
		{"Veículo:", vehicleDesc},
		{"Data:", q.CreatedAt.Format("02/01/2006 15:04")},
		{"Status:", strings.ToUpper(string(q.Status))},
	}
}

// totalRows yields the totals block in display order. Labor cost only shows
// when it was charged; discount always shows, even at zero.
func totalRows(q entities.Quote) [][2]string {
	rows := [][2]string{
		{"Subtotal:", formatCurrency(q.Subtotal)},
	}
	if q.LaborCost > 0 {
		rows = append(rows, [2]string{"Mão de Obra:", formatCurrency(q.LaborCost)})
	}
	rows = append(rows,
		[2]string{"Desconto:", formatCurrency(q.Discount)},
		[2]string{"TOTAL:", formatCurrency(q.Total)},
	)
	return rows
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// shortID returns the display form of a quote ID, the first 8 characters.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
