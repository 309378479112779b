package company

type CreateCompanyRequest struct {
	Code        string `json:"code" form:"code" binding:"required"`
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

type CreateIndustryRequest struct {
	Code     string `json:"code" form:"code" binding:"required"`
	Industry string `json:"industry" form:"industry" binding:"required"`
}

type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyListItem is the list-view row: no description, industries
// aggregated by name.
type CompanyListItem struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Industries []string `json:"industries"`
}

// CompanyDetail aggregates the company's invoice ids and industry names.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}

type IndustrySummary struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

type IndustryResponse struct {
	Code      string   `json:"code"`
	Industry  string   `json:"industry"`
	Companies []string `json:"companies"`
}
