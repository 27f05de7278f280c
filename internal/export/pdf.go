package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"boxtrack-backend/internal/weight"
)

// The built-in PDF fonts have no Turkish glyphs, so all rendered text is
// transliterated to ASCII, like the labels below already are.
var transliterator = strings.NewReplacer(
	"ı", "i", "İ", "I", "ğ", "g", "Ğ", "G",
	"ü", "u", "Ü", "U", "ş", "s", "Ş", "S",
	"ö", "o", "Ö", "O", "ç", "c", "Ç", "C",
)

type pdfRow struct {
	label string
	value string
}

type pdfSection struct {
	title     string
	r, g, b   int
	redValues bool
	rows      []pdfRow
}

func dimensions(w, h, suffix string) string {
	return strings.TrimSpace(fmt.Sprintf("%s x %s %s", w, h, suffix))
}

func buildSections(f map[string]string) []pdfSection {
	// The form can be printed before the record is saved, so a missing
	// weight is derived from the posted dimensions on the spot; if those
	// are incomplete the pre-save placeholder is shown.
	sheetWeight := f["sheet_weight"]
	if sheetWeight == "" {
		var ok bool
		sheetWeight, ok = weight.Compute(f["paper_width"], f["paper_height"], f["grammage"], f["sheet_count"])
		if !ok {
			sheetWeight = weight.Pending
		}
	}

	return []pdfSection{
		{
			title: "MUSTERI BILGILERI", r: 52, g: 152, b: 219,
			rows: []pdfRow{
				{"Musteri Adi", f["customer_name"]},
				{"Urun Adi", f["product_name"]},
				{"Uretim/Siparis Mik.", f["order_quantity"]},
				{"Tabaka Adedi", f["sheet_count"]},
				{"Siparis Durumu", f["order_status"]},
			},
		},
		{
			title: "MALZEME BILGILERI", r: 39, g: 174, b: 96,
			rows: []pdfRow{
				{"Kagit Cinsi", f["paper_type"]},
				{"Gramaj", f["grammage"]},
				{"Kagit Olcusu", dimensions(f["paper_width"], f["paper_height"], "")},
				{"Kartonun Agirligi", sheetWeight},
				{"Bicak Olcusu", dimensions(f["die_width"], f["die_height"], "mm")},
				{"Bicak Kodu", f["die_code"]},
			},
		},
		{
			title: "BASKI BILGILERI", r: 142, g: 68, b: 173,
			rows: []pdfRow{
				{"Renk Sayisi", f["color_count"]},
				{"Renk Bilgisi", f["color_info"]},
				{"Verim", f["yield_info"]},
				{"Selefon", dimensions(f["lamination_1"], f["lamination_2"], "")},
			},
		},
		{
			title: "FINISAJ BILGILERI", r: 230, g: 126, b: 34,
			rows: []pdfRow{
				{"Varak Yaldiz", f["foil_stamping"]},
				{"Gofre", f["embossing"]},
				{"Yapistirma", f["gluing"]},
				{"Paketleme", f["packaging"]},
			},
		},
		{
			title: "NOTLAR", r: 231, g: 76, b: 60, redValues: true,
			rows: []pdfRow{
				{"Notlar", f["notes"]},
			},
		},
		{
			title: "URETIM BILGILERI", r: 52, g: 152, b: 219,
			rows: []pdfRow{
				{"Baski Adedi", f["print_quantity"]},
				{"Selefon Adedi", f["lamination_quantity"]},
				{"Kesim Adedi", f["cut_quantity"]},
			},
		},
	}
}

// PDF renders a single order field map as the A4 production form: a title,
// the order date and the grouped, color-coded sections the press floor
// expects. On error no partial output is returned.
func PDF(fields map[string]string, companyName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Uretim Formu", true)
	pdf.SetMargins(10, 8, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 8, "URETIM FORMU", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 6, "Tarih: "+transliterator.Replace(fields["order_date"]), "", 1, "R", false, 0, "")
	pdf.Ln(1)

	const labelWidth = 55.0
	for _, sec := range buildSections(fields) {
		pdf.SetFillColor(sec.r, sec.g, sec.b)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, sec.title, "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "B", 10)
		for _, row := range sec.rows {
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(labelWidth, 7, row.label, "1", 0, "L", false, 0, "")
			if sec.redValues {
				pdf.SetTextColor(231, 76, 60)
			}
			pdf.CellFormat(0, 7, transliterator.Replace(row.value), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(1)
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(127, 140, 141)
	footer := fmt.Sprintf("Olusturulma: %s - %s",
		time.Now().Format("02.01.2006 15:04"), transliterator.Replace(companyName))
	pdf.CellFormat(0, 5, footer, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
