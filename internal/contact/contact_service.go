package contact

import (
	"context"
	"errors"
	"fmt"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

type CreateContactRequest struct {
	PersonID    *uint64 `json:"personId" validate:"omitempty,gt=0"`
	Type        string  `json:"type" validate:"required,contacttype"`
	Contact     string  `json:"contact" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=100"`
	IsMain      *bool   `json:"isMain"`
}

type UpdateContactRequest struct {
	Type        *string `json:"type" validate:"omitempty,contacttype"`
	Contact     *string `json:"contact" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=100"`
	IsMain      *bool   `json:"isMain"`
	Active      *bool   `json:"active"`
}

type ContactService interface {
	Create(ctx context.Context, req CreateContactRequest) (*dbsql.Contact, error)
	Update(ctx context.Context, id uint64, req UpdateContactRequest) (*dbsql.Contact, error)
	Get(ctx context.Context, id uint64) (*dbsql.Contact, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Contact], error)
	ListByPerson(ctx context.Context, personID uint64) ([]dbsql.Contact, error)
	Deactivate(ctx context.Context, id uint64) error
	FindOrCreateByValue(ctx context.Context, contactType common.ContactType, raw, description string) (*dbsql.Contact, error)
}

type contactService struct {
	repo ContactRepository
	log  *zap.Logger
}

func NewContactService(repo ContactRepository, log *zap.Logger) ContactService {
	return &contactService{repo: repo, log: log}
}

func (s *contactService) Create(ctx context.Context, req CreateContactRequest) (*dbsql.Contact, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	ct := common.ContactType(req.Type)
	value := Normalize(ct, req.Contact)
	if err := checkFormat(ct, value); err != nil {
		return nil, err
	}

	c := &dbsql.Contact{
		PersonID:    req.PersonID,
		Type:        string(ct),
		Value:       value,
		Description: req.Description,
		Active:      true,
	}

	if req.PersonID != nil {
		if _, err := s.repo.Person(ctx, *req.PersonID); err != nil {
			return nil, fmt.Errorf("person %d: %w", *req.PersonID, err)
		}
		existing, err := s.repo.CountByPerson(ctx, *req.PersonID)
		if err != nil {
			return nil, err
		}
		// first contact of a person is always the main one
		c.IsMain = existing == 0 || (req.IsMain != nil && *req.IsMain)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info("contact created",
		zap.Uint64("contact_id", c.ID),
		zap.String("type", c.Type),
		zap.Bool("is_main", c.IsMain),
	)
	return c, nil
}

func (s *contactService) Update(ctx context.Context, id uint64, req UpdateContactRequest) (*dbsql.Contact, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	c, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil || req.Contact != nil {
		if req.Type != nil {
			c.Type = *req.Type
		}
		raw := c.Value
		if req.Contact != nil {
			raw = *req.Contact
		}
		ct := common.ContactType(c.Type)
		c.Value = Normalize(ct, raw)
		if err := checkFormat(ct, c.Value); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Active != nil {
		if !*req.Active && c.IsMain {
			return nil, fmt.Errorf("main contact cannot be deactivated: %w", common.ErrConflict)
		}
		c.Active = *req.Active
	}
	promote := false
	if req.IsMain != nil && *req.IsMain != c.IsMain {
		if !*req.IsMain {
			return nil, fmt.Errorf("choose another main contact instead of unsetting it: %w", common.ErrConflict)
		}
		if !c.Active {
			return nil, fmt.Errorf("inactive contact cannot be the main one: %w", common.ErrConflict)
		}
		promote = true
	}

	if promote {
		if err := s.repo.PromoteMain(ctx, c); err != nil {
			return nil, err
		}
		s.log.Info("main contact changed", zap.Uint64("contact_id", c.ID))
		return c, nil
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contactService) Get(ctx context.Context, id uint64) (*dbsql.Contact, error) {
	return s.repo.ByID(ctx, id)
}

func (s *contactService) List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Contact], error) {
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.Contact]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

func (s *contactService) ListByPerson(ctx context.Context, personID uint64) ([]dbsql.Contact, error) {
	return s.repo.ByPerson(ctx, personID)
}

// Deactivate is a soft delete. Contacts are never removed.
func (s *contactService) Deactivate(ctx context.Context, id uint64) error {
	c, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if c.IsMain {
		return fmt.Errorf("main contact cannot be deactivated: %w", common.ErrConflict)
	}
	if !c.Active {
		return nil
	}
	c.Active = false
	return s.repo.Update(ctx, c)
}

func (s *contactService) FindOrCreateByValue(ctx context.Context, contactType common.ContactType, raw, description string) (*dbsql.Contact, error) {
	value := Normalize(contactType, raw)
	if value == "" {
		return nil, common.NewValidationError("contact", "is required")
	}

	c, err := s.repo.ByValue(ctx, string(contactType), value)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	c = &dbsql.Contact{
		Type:        string(contactType),
		Value:       value,
		Description: description,
		Active:      true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("contact created from inbound message", zap.Uint64("contact_id", c.ID), zap.String("type", c.Type))
	return c, nil
}
