package movement

import (
	"context"
	"fmt"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"

	defaultStatusID  uint64 = 2
	defaultLicenseID uint64 = 1
)

type CreateMovementRequest struct {
	PersonID         uint64  `json:"personId" validate:"required,gt=0"`
	LicenseID        *uint64 `json:"licenseId" validate:"omitempty,gt=0"`
	MovementTypeID   uint64  `json:"movementTypeId" validate:"required,gt=0"`
	MovementStatusID *uint64 `json:"movementStatusId" validate:"omitempty,gt=0"`
	MovementDate     string  `json:"movementDate" validate:"omitempty,yyyymmdd"`
	Description      string  `json:"description" validate:"max=255"`
	Observation      string  `json:"observation"`
	TotalAmount      float64 `json:"totalAmount" validate:"required,gt=0"`
	PaymentMethodID  *uint64 `json:"paymentMethodId" validate:"omitempty,gt=0"`
}

type UpdateMovementRequest struct {
	PersonID       *uint64  `json:"personId" validate:"omitempty,gt=0"`
	MovementTypeID *uint64  `json:"movementTypeId" validate:"omitempty,gt=0"`
	MovementDate   *string  `json:"movementDate" validate:"omitempty,yyyymmdd"`
	Description    *string  `json:"description" validate:"omitempty,max=255"`
	Observation    *string  `json:"observation"`
	TotalAmount    *float64 `json:"totalAmount" validate:"omitempty,gt=0"`
}

type UpdateStatusRequest struct {
	MovementStatusID uint64 `json:"movementStatusId" validate:"required,gt=0"`
}

// InstallmentGenerator splits a movement into installments following a
// payment method.
type InstallmentGenerator interface {
	Generate(ctx context.Context, movementID, paymentMethodID uint64) ([]dbsql.Installment, error)
}

type MovementService interface {
	Create(ctx context.Context, req CreateMovementRequest) (*dbsql.Movement, error)
	Update(ctx context.Context, id uint64, req UpdateMovementRequest) (*dbsql.Movement, error)
	Get(ctx context.Context, id uint64) (*dbsql.Movement, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Movement], error)
	UpdateStatus(ctx context.Context, id uint64, req UpdateStatusRequest) (*dbsql.Movement, error)
	Delete(ctx context.Context, id uint64) error
}

type movementService struct {
	repo         MovementRepository
	installments InstallmentGenerator
	now          func() time.Time
	log          *zap.Logger
}

func NewMovementService(repo MovementRepository, installments InstallmentGenerator, log *zap.Logger) MovementService {
	return &movementService{repo: repo, installments: installments, now: time.Now, log: log}
}

func (s *movementService) Create(ctx context.Context, req CreateMovementRequest) (*dbsql.Movement, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	now := s.now()
	m := &dbsql.Movement{
		PersonID:         req.PersonID,
		LicenseID:        defaultLicenseID,
		MovementTypeID:   req.MovementTypeID,
		MovementStatusID: defaultStatusID,
		MovementDate:     truncateDay(now),
		Description:      req.Description,
		Observation:      req.Observation,
		TotalAmount:      req.TotalAmount,
	}
	if req.LicenseID != nil {
		m.LicenseID = *req.LicenseID
	}
	if req.MovementStatusID != nil {
		m.MovementStatusID = *req.MovementStatusID
	}
	if req.MovementDate != "" {
		m.MovementDate, _ = time.Parse(dateLayout, req.MovementDate)
	}
	if m.Description == "" {
		m.Description = fmt.Sprintf("Movimento %d - %s", m.MovementTypeID, now.UTC().Format(time.RFC3339))
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info("movement created",
		zap.Uint64("movement_id", m.ID),
		zap.Uint64("person_id", m.PersonID),
		zap.Float64("total_amount", m.TotalAmount),
	)

	if req.PaymentMethodID != nil && s.installments != nil {
		if _, err := s.installments.Generate(ctx, m.ID, *req.PaymentMethodID); err != nil {
			return nil, fmt.Errorf("generate installments for movement %d: %w", m.ID, err)
		}
	}
	return m, nil
}

func (s *movementService) Update(ctx context.Context, id uint64, req UpdateMovementRequest) (*dbsql.Movement, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	m, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PersonID != nil {
		m.PersonID = *req.PersonID
	}
	if req.MovementTypeID != nil {
		m.MovementTypeID = *req.MovementTypeID
	}
	if req.MovementDate != nil {
		m.MovementDate, _ = time.Parse(dateLayout, *req.MovementDate)
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Observation != nil {
		m.Observation = *req.Observation
	}
	if req.TotalAmount != nil {
		m.TotalAmount = *req.TotalAmount
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *movementService) Get(ctx context.Context, id uint64) (*dbsql.Movement, error) {
	return s.repo.ByID(ctx, id)
}

func (s *movementService) List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Movement], error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return common.Paginated[dbsql.Movement]{}, common.NewValidationError("movementDateEnd", "must be on or after movementDateStart")
	}

	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.Movement]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

func (s *movementService) UpdateStatus(ctx context.Context, id uint64, req UpdateStatusRequest) (*dbsql.Movement, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, req.MovementStatusID); err != nil {
		return nil, err
	}
	s.log.Info("movement status changed", zap.Uint64("movement_id", id), zap.Uint64("status_id", req.MovementStatusID))
	return s.repo.ByID(ctx, id)
}

func (s *movementService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("movement deleted", zap.Uint64("movement_id", id))
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
