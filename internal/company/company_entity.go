package company

type Company struct {
	Code        string `gorm:"type:text;primaryKey"`
	Name        string `gorm:"type:text;not null;unique"`
	Description string `gorm:"type:text"`
}

func (Company) TableName() string {
	return "companies"
}

type Industry struct {
	Code     string `gorm:"type:text;primaryKey"`
	Industry string `gorm:"type:text;not null;unique"`
}

func (Industry) TableName() string {
	return "industries"
}

// CompanyIndustry is the join row for the N:M relation. Both foreign
// keys cascade so deleting either side removes the association.
type CompanyIndustry struct {
	CompCode     string   `gorm:"column:comp_code;type:text;primaryKey"`
	IndustryCode string   `gorm:"column:industry_code;type:text;primaryKey"`
	Company      Company  `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE"`
	Industry     Industry `gorm:"foreignKey:IndustryCode;references:Code;constraint:OnDelete:CASCADE"`
}

func (CompanyIndustry) TableName() string {
	return "companies_industries"
}
