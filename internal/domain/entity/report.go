package entity

// ReportHeader holds the store/business header printed at the top of a
// sales report.
type ReportHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReportLine is one transaction row on a printed sales report.
type ReportLine struct {
	Date     string  `json:"date"`
	Customer string  `json:"customer"`
	Payment  string  `json:"payment"`
	Total    float64 `json:"total"`
}

// ReportMethodAmount is one per-method amount row, grouped under a type label.
type ReportMethodAmount struct {
	TypeLabel string  `json:"type_label"`
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
}

// ReportCustomer is one top-customer row.
type ReportCustomer struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// SalesReport is a value object representing a printable sales report.
// It is NOT a database entity — it is composed from the computed Stats and
// the filtered transaction list at print time and performs no recomputation.
type SalesReport struct {
	Header       ReportHeader         `json:"header"`
	GeneratedAt  string               `json:"generated_at"`
	PeriodStart  string               `json:"period_start,omitempty"`
	PeriodEnd    string               `json:"period_end,omitempty"`
	TotalSales   float64              `json:"total_sales"`
	Count        int                  `json:"count"`
	AvgTicket    float64              `json:"avg_ticket"`
	ByMethod     []ReportMethodAmount `json:"by_method"`
	TopCustomers []ReportCustomer     `json:"top_customers"`
	Transactions []ReportLine         `json:"transactions"`
}
