package store

import "boxtrack-backend/internal/model"

// Recognized writable field names, keyed by their wire/column name. The id
// and creation timestamp are never writable through the field map.
var writableFields = map[string]bool{
	"customer_name":       true,
	"product_name":        true,
	"order_quantity":      true,
	"sheet_count":         true,
	"paper_type":          true,
	"grammage":            true,
	"paper_width":         true,
	"paper_height":        true,
	"die_code":            true,
	"die_width":           true,
	"die_height":          true,
	"color_count":         true,
	"color_info":          true,
	"yield_info":          true,
	"lamination_1":        true,
	"lamination_2":        true,
	"foil_stamping":       true,
	"embossing":           true,
	"gluing":              true,
	"packaging":           true,
	"order_status":        true,
	"notes":               true,
	"print_quantity":      true,
	"lamination_quantity": true,
	"cut_quantity":        true,
	"sheet_weight":        true,
	"order_date":          true,
}

// weightInputs are the fields the sheet weight is derived from. Touching any
// of them forces a recomputation of the stored weight.
var weightInputs = map[string]bool{
	"paper_width":  true,
	"paper_height": true,
	"grammage":     true,
	"sheet_count":  true,
}

// setField assigns a writable field on the order by wire name. Unknown names
// are reported, not applied.
func setField(o *model.ProductionOrder, name, value string) bool {
	switch name {
	case "customer_name":
		o.CustomerName = value
	case "product_name":
		o.ProductName = value
	case "order_quantity":
		o.OrderQuantity = value
	case "sheet_count":
		o.SheetCount = value
	case "paper_type":
		o.PaperType = value
	case "grammage":
		o.Grammage = value
	case "paper_width":
		o.PaperWidth = value
	case "paper_height":
		o.PaperHeight = value
	case "die_code":
		o.DieCode = value
	case "die_width":
		o.DieWidth = value
	case "die_height":
		o.DieHeight = value
	case "color_count":
		o.ColorCount = value
	case "color_info":
		o.ColorInfo = value
	case "yield_info":
		o.YieldInfo = value
	case "lamination_1":
		o.Lamination1 = value
	case "lamination_2":
		o.Lamination2 = value
	case "foil_stamping":
		o.FoilStamping = value
	case "embossing":
		o.Embossing = value
	case "gluing":
		o.Gluing = value
	case "packaging":
		o.Packaging = value
	case "order_status":
		o.OrderStatus = value
	case "notes":
		o.Notes = value
	case "print_quantity":
		o.PrintQuantity = value
	case "lamination_quantity":
		o.LaminationQuantity = value
	case "cut_quantity":
		o.CutQuantity = value
	case "sheet_weight":
		o.SheetWeight = value
	case "order_date":
		o.OrderDate = value
	default:
		return false
	}
	return true
}
