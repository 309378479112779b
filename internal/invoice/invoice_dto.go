package invoice

// Amt is a pointer so a literal zero amount still satisfies the
// required check.
type CreateInvoiceRequest struct {
	CompCode string   `json:"comp_code" form:"comp_code" binding:"required"`
	Amt      *float64 `json:"amt" form:"amt" binding:"required"`
}

type UpdateInvoiceRequest struct {
	Amt  *float64 `json:"amt" form:"amt" binding:"required"`
	Paid *bool    `json:"paid" form:"paid"`
}

type InvoiceResponse struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

type CompanySummary struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InvoiceDetail is the single-invoice view joined with its owning
// company.
type InvoiceDetail struct {
	ID       int64          `json:"id"`
	CompCode string         `json:"comp_code"`
	Amt      float64        `json:"amt"`
	Paid     bool           `json:"paid"`
	AddDate  string         `json:"add_date"`
	PaidDate *string        `json:"paid_date"`
	Company  CompanySummary `json:"company"`
}
