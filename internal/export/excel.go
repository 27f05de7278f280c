package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"boxtrack-backend/internal/model"
)

const sheetName = "Üretim Kayıtları"

var excelHeader = []string{
	"ID", "Müşteri Adı", "Ürün Adı", "Üretim/Sipariş Miktarı", "Tabaka Adedi",
	"Kağıt Cinsi", "Gramaj", "Kağıt Ölçüsü", "Bıçak Kodu", "Bıçak Ölçüsü",
	"Renk Sayısı", "Renk Bilgisi", "Verim", "Selefon", "Varak Yaldız",
	"Gofre", "Yapıştırma", "Paketleme", "Sipariş Durumu", "Notlar",
	"Baskı Adedi", "Selefon Adedi", "Kesim Adedi", "Karton Ağırlığı", "Tarih",
	"Oluşturma Tarihi",
}

// Excel renders all stored orders as a spreadsheet, one labeled column per
// attribute, with composed dimension cells matching the print form.
func Excel(orders []model.ProductionOrder) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(excelHeader))
	for i, h := range excelHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(excelHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	widths := make([]int, len(excelHeader))
	for i, h := range excelHeader {
		widths[i] = len([]rune(h))
	}

	for i, o := range orders {
		row := []any{
			o.ID,
			o.CustomerName,
			o.ProductName,
			o.OrderQuantity,
			o.SheetCount,
			o.PaperType,
			o.Grammage,
			fmt.Sprintf("%s x %s", o.PaperWidth, o.PaperHeight),
			o.DieCode,
			fmt.Sprintf("%s x %s mm", o.DieWidth, o.DieHeight),
			o.ColorCount,
			o.ColorInfo,
			o.YieldInfo,
			fmt.Sprintf("%s x %s", o.Lamination1, o.Lamination2),
			o.FoilStamping,
			o.Embossing,
			o.Gluing,
			o.Packaging,
			o.OrderStatus,
			o.Notes,
			o.PrintQuantity,
			o.LaminationQuantity,
			o.CutQuantity,
			o.SheetWeight,
			o.OrderDate,
			o.CreatedAt.Format("02.01.2006 15:04"),
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}

		for j, v := range row {
			if n := len([]rune(fmt.Sprint(v))); n > widths[j] {
				widths[j] = n
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if w > 48 {
			w = 48
		}
		if err := f.SetColWidth(sheetName, col, col, float64(w+2)); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	return f, nil
}
