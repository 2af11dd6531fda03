package person

import (
	"context"
	"strings"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

const (
	TypeIndividual = "PF"
	TypeCompany    = "PJ"

	dateLayout = "2006-01-02"
)

type CreatePersonRequest struct {
	FullName    string  `json:"fullName" validate:"required,min=2,max=255"`
	FantasyName string  `json:"fantasyName" validate:"max=255"`
	BirthDate   *string `json:"birthDate" validate:"omitempty,yyyymmdd"`
	PersonType  string  `json:"personType" validate:"omitempty,oneof=PF PJ"`
	Active      *bool   `json:"active"`
}

type UpdatePersonRequest struct {
	FullName    *string `json:"fullName" validate:"omitempty,min=2,max=255"`
	FantasyName *string `json:"fantasyName" validate:"omitempty,max=255"`
	BirthDate   *string `json:"birthDate" validate:"omitempty,yyyymmdd"`
	PersonType  *string `json:"personType" validate:"omitempty,oneof=PF PJ"`
	Active      *bool   `json:"active"`
}

type PersonService interface {
	Create(ctx context.Context, req CreatePersonRequest) (*dbsql.Person, error)
	Update(ctx context.Context, id uint64, req UpdatePersonRequest) (*dbsql.Person, error)
	Get(ctx context.Context, id uint64) (*dbsql.Person, error)
	Details(ctx context.Context, id uint64) (*dbsql.Person, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Person], error)
	Deactivate(ctx context.Context, id uint64) error
}

type personService struct {
	repo PersonRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewPersonService(repo PersonRepository, log *zap.Logger) PersonService {
	return &personService{repo: repo, now: time.Now, log: log}
}

func (s *personService) Create(ctx context.Context, req CreatePersonRequest) (*dbsql.Person, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.FantasyName = strings.TrimSpace(req.FantasyName)
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	p := &dbsql.Person{
		FullName:    req.FullName,
		FantasyName: req.FantasyName,
		PersonType:  TypeCompany,
		Active:      true,
	}
	if req.PersonType != "" {
		p.PersonType = req.PersonType
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.BirthDate != nil {
		d, err := s.birthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		p.BirthDate = d
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("person created", zap.Uint64("person_id", p.ID), zap.String("person_type", p.PersonType))
	return p, nil
}

func (s *personService) Update(ctx context.Context, id uint64, req UpdatePersonRequest) (*dbsql.Person, error) {
	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		req.FullName = &trimmed
	}
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	p, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.FantasyName != nil {
		p.FantasyName = strings.TrimSpace(*req.FantasyName)
	}
	if req.PersonType != nil {
		p.PersonType = *req.PersonType
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.BirthDate != nil {
		d, err := s.birthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		p.BirthDate = d
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// birthDate parses an already validated YYYY-MM-DD value and rejects dates
// in the future.
func (s *personService) birthDate(raw string) (*time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, common.NewValidationError("birthDate", "must be a date in YYYY-MM-DD format")
	}
	if d.After(s.now()) {
		return nil, common.NewValidationError("birthDate", "must not be in the future")
	}
	return &d, nil
}

func (s *personService) Get(ctx context.Context, id uint64) (*dbsql.Person, error) {
	return s.repo.ByID(ctx, id)
}

func (s *personService) Details(ctx context.Context, id uint64) (*dbsql.Person, error) {
	return s.repo.WithContacts(ctx, id)
}

func (s *personService) List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Person], error) {
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.Person]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

// Deactivate is a soft delete; movements and contacts keep pointing at the row.
func (s *personService) Deactivate(ctx context.Context, id uint64) error {
	p, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Active {
		return nil
	}
	p.Active = false
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.log.Info("person deactivated", zap.Uint64("person_id", id))
	return nil
}
