package company

import (
	"context"
	"errors"
	"strings"
	"unicode"

	companyerrors "biztime/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context) ([]CompanyListItem, error)
	Get(ctx context.Context, code string) (*CompanyDetail, error)
	Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error)
	Update(ctx context.Context, code string, req UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(ctx context.Context, code string) error

	CreateIndustry(ctx context.Context, req CreateIndustryRequest) (*IndustrySummary, error)
	ListIndustries(ctx context.Context) ([]IndustryResponse, error)
	Associate(ctx context.Context, compCode, industryCode string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]CompanyListItem, error) {
	rows, err := s.repo.ListWithIndustries(ctx)
	if err != nil {
		return nil, err
	}

	// Group the flat join rows per company. A NULL industry means the
	// company has none; it still gets an (empty) industries list.
	result := make([]CompanyListItem, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, seen := index[row.Code]
		if !seen {
			i = len(result)
			index[row.Code] = i
			result = append(result, CompanyListItem{
				Code:       row.Code,
				Name:       row.Name,
				Industries: []string{},
			})
		}
		if row.Industry != nil {
			result[i].Industries = append(result[i].Industries, *row.Industry)
		}
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, code string) (*CompanyDetail, error) {
	comp, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.NotFound(code)
		}
		return nil, err
	}

	invoiceIDs, err := s.repo.InvoiceIDs(ctx, code)
	if err != nil {
		return nil, err
	}
	industries, err := s.repo.IndustryNames(ctx, code)
	if err != nil {
		return nil, err
	}

	if invoiceIDs == nil {
		invoiceIDs = []int64{}
	}
	if industries == nil {
		industries = []string{}
	}

	return &CompanyDetail{
		Code:        comp.Code,
		Name:        comp.Name,
		Description: comp.Description,
		Invoices:    invoiceIDs,
		Industries:  industries,
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	comp := &Company{
		Code:        slugify(req.Code),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		if isUniqueViolation(err) {
			return nil, companyerrors.ErrCompanyAlreadyExists
		}
		return nil, err
	}
	return mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, code string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	comp, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.NotFound(code)
		}
		return nil, err
	}

	comp.Name = req.Name
	comp.Description = req.Description

	if err := s.repo.Update(ctx, comp); err != nil {
		return nil, err
	}
	return mapToResponse(comp), nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	affected, err := s.repo.Delete(ctx, code)
	if err != nil {
		return err
	}
	if affected == 0 {
		return companyerrors.NotFound(code)
	}
	return nil
}

func (s *service) CreateIndustry(ctx context.Context, req CreateIndustryRequest) (*IndustrySummary, error) {
	ind := &Industry{
		Code:     slugify(req.Code),
		Industry: req.Industry,
	}
	if err := s.repo.CreateIndustry(ctx, ind); err != nil {
		if isUniqueViolation(err) {
			return nil, companyerrors.ErrIndustryAlreadyExists
		}
		return nil, err
	}
	return &IndustrySummary{Code: ind.Code, Industry: ind.Industry}, nil
}

func (s *service) ListIndustries(ctx context.Context) ([]IndustryResponse, error) {
	rows, err := s.repo.ListIndustriesWithCompanies(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]IndustryResponse, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, seen := index[row.Code]
		if !seen {
			i = len(result)
			index[row.Code] = i
			result = append(result, IndustryResponse{
				Code:      row.Code,
				Industry:  row.Industry,
				Companies: []string{},
			})
		}
		if row.CompCode != nil {
			result[i].Companies = append(result[i].Companies, *row.CompCode)
		}
	}
	return result, nil
}

func (s *service) Associate(ctx context.Context, compCode, industryCode string) error {
	return s.repo.Associate(ctx, &CompanyIndustry{
		CompCode:     compCode,
		IndustryCode: industryCode,
	})
}

func mapToResponse(comp *Company) *CompanyResponse {
	return &CompanyResponse{
		Code:        comp.Code,
		Name:        comp.Name,
		Description: comp.Description,
	}
}

// slugify normalizes a user-supplied code into a URL-safe identifier:
// lower-cased, runs of non-alphanumerics collapsed to a single dash.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
