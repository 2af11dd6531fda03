package license

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

type CreateLicenseRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Document string `json:"document" validate:"required"`
	Active   *bool  `json:"active"`
}

type UpdateLicenseRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Document *string `json:"document"`
	Active   *bool   `json:"active"`
}

type LicenseService interface {
	Create(ctx context.Context, req CreateLicenseRequest) (*dbsql.License, error)
	Update(ctx context.Context, id uint64, req UpdateLicenseRequest) (*dbsql.License, error)
	Get(ctx context.Context, id uint64) (*dbsql.License, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.License], error)
	Deactivate(ctx context.Context, id uint64) error
	ForUser(ctx context.Context, userID uint64) ([]dbsql.License, error)
}

type licenseService struct {
	repo LicenseRepository
	log  *zap.Logger
}

func NewLicenseService(repo LicenseRepository, log *zap.Logger) LicenseService {
	return &licenseService{repo: repo, log: log}
}

// normalizeDocument keeps the digits of a CPF (11) or CNPJ (14) and checks
// its verifier digits.
func normalizeDocument(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	switch len(digits) {
	case 11, 14:
	default:
		return "", common.NewValidationError("document", "must have 11 or 14 digits")
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return "", common.NewValidationError("document", "cannot repeat a single digit")
	}

	valid := validCPF(digits)
	if len(digits) == 14 {
		valid = validCNPJ(digits)
	}
	if !valid {
		return "", common.NewValidationError("document", "has an invalid check digit")
	}
	return digits, nil
}

func validCPF(d string) bool {
	check := func(n int) int {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * (n + 1 - i)
		}
		r := sum * 10 % 11
		if r == 10 {
			r = 0
		}
		return r
	}
	return check(9) == int(d[9]-'0') && check(10) == int(d[10]-'0')
}

func validCNPJ(d string) bool {
	check := func(n int) int {
		sum, weight := 0, n-7
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * weight
			weight--
			if weight < 2 {
				weight = 9
			}
		}
		if sum%11 < 2 {
			return 0
		}
		return 11 - sum%11
	}
	return check(12) == int(d[12]-'0') && check(13) == int(d[13]-'0')
}

func (s *licenseService) ensureDocumentFree(ctx context.Context, document string, exceptID uint64) error {
	existing, err := s.repo.ByDocument(ctx, document)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != exceptID {
		return fmt.Errorf("document %s already licensed: %w", document, common.ErrConflict)
	}
	return nil
}

func (s *licenseService) Create(ctx context.Context, req CreateLicenseRequest) (*dbsql.License, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	document, err := normalizeDocument(req.Document)
	if err != nil {
		return nil, err
	}
	if err := s.ensureDocumentFree(ctx, document, 0); err != nil {
		return nil, err
	}

	l := &dbsql.License{
		Name:     strings.TrimSpace(req.Name),
		Document: document,
		Active:   true,
	}
	if req.Active != nil {
		l.Active = *req.Active
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.log.Info("license created", zap.Uint64("license_id", l.ID))
	return l, nil
}

func (s *licenseService) Update(ctx context.Context, id uint64, req UpdateLicenseRequest) (*dbsql.License, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	l, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Document != nil {
		document, err := normalizeDocument(*req.Document)
		if err != nil {
			return nil, err
		}
		if document != l.Document {
			if err := s.ensureDocumentFree(ctx, document, l.ID); err != nil {
				return nil, err
			}
			l.Document = document
		}
	}
	if req.Name != nil {
		l.Name = strings.TrimSpace(*req.Name)
	}
	if req.Active != nil {
		l.Active = *req.Active
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *licenseService) Get(ctx context.Context, id uint64) (*dbsql.License, error) {
	return s.repo.ByID(ctx, id)
}

func (s *licenseService) List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.License], error) {
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.License]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

// Deactivate keeps the row; movements still reference it.
func (s *licenseService) Deactivate(ctx context.Context, id uint64) error {
	l, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !l.Active {
		return nil
	}
	l.Active = false
	return s.repo.Update(ctx, l)
}

func (s *licenseService) ForUser(ctx context.Context, userID uint64) ([]dbsql.License, error) {
	return s.repo.ByUser(ctx, userID)
}
