package installment

import (
	"context"
	"fmt"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

const (
	StatusPending  = "PENDING"
	StatusPaid     = "PAID"
	StatusCanceled = "CANCELED"
)

type CreateInstallmentRequest struct {
	MovementID uint64  `json:"movementId" validate:"required,gt=0"`
	Number     string  `json:"installmentNumber" validate:"required,max=3"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	DueDate    string  `json:"dueDate" validate:"required,yyyymmdd"`
}

type UpdateInstallmentRequest struct {
	Amount  *float64 `json:"amount" validate:"omitempty,gt=0"`
	Balance *float64 `json:"balance" validate:"omitempty,gte=0"`
	DueDate *string  `json:"dueDate" validate:"omitempty,yyyymmdd"`
	Status  *string  `json:"status" validate:"omitempty,oneof=PENDING PAID CANCELED"`
}

type GenerateRequest struct {
	PaymentMethodID uint64 `json:"paymentMethodId" validate:"required,gt=0"`
}

type CreatePaymentMethodRequest struct {
	Name                    string `json:"name" validate:"required,max=100"`
	InstallmentCount        int    `json:"installmentCount" validate:"required,min=1,max=120"`
	FirstDueDateDays        int    `json:"firstDueDateDays" validate:"min=0"`
	DaysBetweenInstallments int    `json:"daysBetweenInstallments" validate:"min=0"`
}

type InstallmentService interface {
	Generate(ctx context.Context, movementID, paymentMethodID uint64) ([]dbsql.Installment, error)
	Create(ctx context.Context, req CreateInstallmentRequest) (*dbsql.Installment, error)
	Update(ctx context.Context, id uint64, req UpdateInstallmentRequest) (*dbsql.Installment, error)
	Get(ctx context.Context, id uint64) (*dbsql.Installment, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Installment], error)
	ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Installment, error)
	Delete(ctx context.Context, id uint64) error
	CreatePaymentMethod(ctx context.Context, req CreatePaymentMethodRequest) (*dbsql.PaymentMethod, error)
	PaymentMethods(ctx context.Context, activeOnly bool) ([]dbsql.PaymentMethod, error)
}

type installmentService struct {
	repo InstallmentRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewInstallmentService(repo InstallmentRepository, log *zap.Logger) InstallmentService {
	return &installmentService{repo: repo, now: time.Now, log: log}
}

func (s *installmentService) Generate(ctx context.Context, movementID, paymentMethodID uint64) ([]dbsql.Installment, error) {
	movement, err := s.repo.Movement(ctx, movementID)
	if err != nil {
		return nil, err
	}
	pm, err := s.repo.PaymentMethod(ctx, paymentMethodID)
	if err != nil {
		return nil, err
	}
	if !pm.Active {
		return nil, fmt.Errorf("payment method %d is inactive: %w", pm.ID, common.ErrConflict)
	}
	if pm.InstallmentCount < 1 {
		return nil, common.NewValidationError("installmentCount", "must be at least 1")
	}

	items := Build(movement, pm, s.now())
	if err := s.repo.CreateBatch(ctx, movementID, items); err != nil {
		s.log.Error("installment generation failed",
			zap.Uint64("movement_id", movementID),
			zap.Uint64("payment_method_id", paymentMethodID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("installments generated",
		zap.Uint64("movement_id", movementID),
		zap.Int("count", len(items)),
		zap.Float64("total_amount", movement.TotalAmount),
	)
	return items, nil
}

func (s *installmentService) Create(ctx context.Context, req CreateInstallmentRequest) (*dbsql.Installment, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.repo.Movement(ctx, req.MovementID); err != nil {
		return nil, err
	}

	due, _ := time.Parse(dateLayout, req.DueDate)
	i := &dbsql.Installment{
		MovementID: req.MovementID,
		Number:     req.Number,
		Amount:     req.Amount,
		Balance:    req.Amount,
		DueDate:    due,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *installmentService) Update(ctx context.Context, id uint64, req UpdateInstallmentRequest) (*dbsql.Installment, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	i, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		i.Amount = *req.Amount
	}
	if req.Balance != nil {
		i.Balance = *req.Balance
		if i.Balance == 0 && req.Status == nil {
			i.Status = StatusPaid
		}
	}
	if i.Balance > i.Amount {
		return nil, common.NewValidationError("balance", "must not exceed amount")
	}
	if req.DueDate != nil {
		i.DueDate, _ = time.Parse(dateLayout, *req.DueDate)
	}
	if req.Status != nil {
		i.Status = *req.Status
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *installmentService) Get(ctx context.Context, id uint64) (*dbsql.Installment, error) {
	return s.repo.ByID(ctx, id)
}

func (s *installmentService) List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Installment], error) {
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.Installment]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

func (s *installmentService) ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Installment, error) {
	return s.repo.ByMovement(ctx, movementID)
}

func (s *installmentService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}

func (s *installmentService) CreatePaymentMethod(ctx context.Context, req CreatePaymentMethodRequest) (*dbsql.PaymentMethod, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	pm := &dbsql.PaymentMethod{
		Name:                    req.Name,
		InstallmentCount:        req.InstallmentCount,
		FirstDueDateDays:        req.FirstDueDateDays,
		DaysBetweenInstallments: req.DaysBetweenInstallments,
		Active:                  true,
	}
	if err := s.repo.CreatePaymentMethod(ctx, pm); err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *installmentService) PaymentMethods(ctx context.Context, activeOnly bool) ([]dbsql.PaymentMethod, error) {
	return s.repo.PaymentMethods(ctx, activeOnly)
}
