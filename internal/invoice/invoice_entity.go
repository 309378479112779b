package invoice

import (
	"time"

	"biztime/internal/company"
)

// Invoice belongs to a company by code. The FK cascades so deleting a
// company removes its invoices.
type Invoice struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	CompCode string          `gorm:"column:comp_code;type:text;not null;index"`
	Amt      float64         `gorm:"type:numeric(12,2);not null"`
	Paid     bool            `gorm:"not null;default:false"`
	AddDate  time.Time       `gorm:"column:add_date;type:date;not null"`
	PaidDate *time.Time      `gorm:"column:paid_date;type:date"`
	Company  company.Company `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE"`
}

func (Invoice) TableName() string {
	return "invoices"
}
