package company

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyIndustryRow is one row of the list join: a company paired with
// one of its industry names, or a NULL industry when it has none.
type CompanyIndustryRow struct {
	Code     string  `gorm:"column:code"`
	Name     string  `gorm:"column:name"`
	Industry *string `gorm:"column:industry"`
}

// IndustryCompanyRow mirrors CompanyIndustryRow for the industry list.
type IndustryCompanyRow struct {
	Code     string  `gorm:"column:code"`
	Industry string  `gorm:"column:industry"`
	CompCode *string `gorm:"column:comp_code"`
}

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	ListWithIndustries(ctx context.Context) ([]CompanyIndustryRow, error)
	GetByCode(ctx context.Context, code string) (*Company, error)
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)
	IndustryNames(ctx context.Context, code string) ([]string, error)
	Create(ctx context.Context, comp *Company) error
	Update(ctx context.Context, comp *Company) error
	Delete(ctx context.Context, code string) (int64, error)

	CreateIndustry(ctx context.Context, ind *Industry) error
	ListIndustriesWithCompanies(ctx context.Context) ([]IndustryCompanyRow, error)
	Associate(ctx context.Context, assoc *CompanyIndustry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListWithIndustries(ctx context.Context) ([]CompanyIndustryRow, error) {
	var rows []CompanyIndustryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.code, c.name, i.industry
		FROM companies c
		LEFT JOIN companies_industries ci ON ci.comp_code = c.code
		LEFT JOIN industries i ON i.code = ci.industry_code
		ORDER BY c.code, i.industry
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).First(&comp, "code = ?", code).Error
	return &comp, err
}

func (r *repository) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT id FROM invoices WHERE comp_code = ? ORDER BY id
	`, code).Scan(&ids).Error
	return ids, err
}

func (r *repository) IndustryNames(ctx context.Context, code string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.industry
		FROM industries i
		JOIN companies_industries ci ON ci.industry_code = i.code
		WHERE ci.comp_code = ?
		ORDER BY i.industry
	`, code).Scan(&names).Error
	return names, err
}

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) Update(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Save(comp).Error
}

func (r *repository) Delete(ctx context.Context, code string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Company{}, "code = ?", code)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateIndustry(ctx context.Context, ind *Industry) error {
	return r.db.WithContext(ctx).Create(ind).Error
}

func (r *repository) ListIndustriesWithCompanies(ctx context.Context) ([]IndustryCompanyRow, error) {
	var rows []IndustryCompanyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.code, i.industry, ci.comp_code
		FROM industries i
		LEFT JOIN companies_industries ci ON ci.industry_code = i.code
		ORDER BY i.code, ci.comp_code
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) Associate(ctx context.Context, assoc *CompanyIndustry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(assoc).Error
}
