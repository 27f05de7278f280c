package model

import "time"

// ProductionOrder is a single production tracking form entry. Apart from the
// customer name, every field is free-form text exactly as the operator typed
// it; derived values (sheet weight) are stored pre-formatted for display.
type ProductionOrder struct {
	ID                 int64     `gorm:"primaryKey" json:"id"`
	CustomerName       string    `gorm:"size:200;not null" json:"customer_name"`
	ProductName        string    `gorm:"size:200" json:"product_name"`
	OrderQuantity      string    `gorm:"size:50" json:"order_quantity"`
	SheetCount         string    `gorm:"size:50" json:"sheet_count"`
	PaperType          string    `gorm:"size:100" json:"paper_type"`
	Grammage           string    `gorm:"size:50" json:"grammage"`
	PaperWidth         string    `gorm:"size:50" json:"paper_width"`
	PaperHeight        string    `gorm:"size:50" json:"paper_height"`
	DieCode            string    `gorm:"size:100" json:"die_code"`
	DieWidth           string    `gorm:"size:50" json:"die_width"`
	DieHeight          string    `gorm:"size:50" json:"die_height"`
	ColorCount         string    `gorm:"size:50" json:"color_count"`
	ColorInfo          string    `gorm:"size:100" json:"color_info"`
	YieldInfo          string    `gorm:"size:50" json:"yield_info"`
	Lamination1        string    `gorm:"size:50;column:lamination_1" json:"lamination_1"`
	Lamination2        string    `gorm:"size:50;column:lamination_2" json:"lamination_2"`
	FoilStamping       string    `gorm:"size:50" json:"foil_stamping"`
	Embossing          string    `gorm:"size:50" json:"embossing"`
	Gluing             string    `gorm:"size:50" json:"gluing"`
	Packaging          string    `gorm:"size:100" json:"packaging"`
	OrderStatus        string    `gorm:"size:50" json:"order_status"`
	Notes              string    `gorm:"type:text" json:"notes"`
	PrintQuantity      string    `gorm:"size:50" json:"print_quantity"`
	LaminationQuantity string    `gorm:"size:50" json:"lamination_quantity"`
	CutQuantity        string    `gorm:"size:50" json:"cut_quantity"`
	SheetWeight        string    `gorm:"size:50" json:"sheet_weight"`
	OrderDate          string    `gorm:"size:50" json:"order_date"`
	CreatedAt          time.Time `json:"created_at"`
}

// OrderSummary is the lightweight projection returned by list and search.
type OrderSummary struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	DieCode      string `json:"die_code"`
	OrderStatus  string `json:"order_status"`
	OrderDate    string `json:"order_date"`
}

// PlanningSummary extends the summary with the columns the planning view
// renders in its grid.
type PlanningSummary struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	SheetCount   string `json:"sheet_count"`
	ColorCount   string `json:"color_count"`
	ColorInfo    string `json:"color_info"`
	Notes        string `json:"notes"`
}
