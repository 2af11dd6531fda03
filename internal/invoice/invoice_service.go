package invoice

import (
	"context"
	"fmt"
	"strings"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusAuthorized = "AUTHORIZED"
	StatusError      = "ERROR"
	StatusCanceled   = "CANCELED"
)

type CreateInvoiceRequest struct {
	MovementID  uint64  `json:"movementId" validate:"required"`
	Number      string  `json:"number" validate:"max=30"`
	ReferenceID string  `json:"referenceId" validate:"max=60"`
	Status      string  `json:"status" validate:"omitempty,oneof=PENDING PROCESSING AUTHORIZED ERROR CANCELED"`
	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
	Description string  `json:"description" validate:"max=255"`
}

type UpdateInvoiceRequest struct {
	Number      *string  `json:"number" validate:"omitempty,max=30"`
	ReferenceID *string  `json:"referenceId" validate:"omitempty,max=60"`
	Status      *string  `json:"status" validate:"omitempty,oneof=PENDING PROCESSING AUTHORIZED ERROR CANCELED"`
	TotalAmount *float64 `json:"totalAmount" validate:"omitempty,gt=0"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	PDFURL      *string  `json:"pdfUrl" validate:"omitempty,max=500"`
	XMLURL      *string  `json:"xmlUrl" validate:"omitempty,max=500"`
}

type InvoiceService interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (*dbsql.Invoice, error)
	Update(ctx context.Context, id uint64, req UpdateInvoiceRequest) (*dbsql.Invoice, error)
	Get(ctx context.Context, id uint64) (*dbsql.Invoice, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Invoice], error)
	ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Invoice, error)
	Delete(ctx context.Context, id uint64) error
}

type invoiceService struct {
	repo InvoiceRepository
	log  *zap.Logger
}

func NewInvoiceService(repo InvoiceRepository, log *zap.Logger) InvoiceService {
	return &invoiceService{repo: repo, log: log}
}

// Create bills a movement. A zero amount takes the movement total.
func (s *invoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*dbsql.Invoice, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	m, err := s.repo.Movement(ctx, req.MovementID)
	if err != nil {
		return nil, err
	}

	inv := &dbsql.Invoice{
		MovementID:  m.ID,
		Number:      strings.TrimSpace(req.Number),
		ReferenceID: strings.TrimSpace(req.ReferenceID),
		Status:      StatusPending,
		TotalAmount: req.TotalAmount,
		Description: strings.TrimSpace(req.Description),
	}
	if req.Status != "" {
		inv.Status = req.Status
	}
	if inv.TotalAmount == 0 {
		inv.TotalAmount = m.TotalAmount
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.log.Info("invoice created",
		zap.Uint64("invoice_id", inv.ID),
		zap.Uint64("movement_id", inv.MovementID),
		zap.Float64("total_amount", inv.TotalAmount),
	)
	return inv, nil
}

func (s *invoiceService) Update(ctx context.Context, id uint64, req UpdateInvoiceRequest) (*dbsql.Invoice, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	inv, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		inv.Number = strings.TrimSpace(*req.Number)
	}
	if req.ReferenceID != nil {
		inv.ReferenceID = strings.TrimSpace(*req.ReferenceID)
	}
	if req.Status != nil && *req.Status != inv.Status {
		n, err := s.repo.CountNFSe(ctx, id)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("invoice %d status follows its nfse: %w", id, common.ErrConflict)
		}
		inv.Status = *req.Status
	}
	if req.TotalAmount != nil {
		inv.TotalAmount = *req.TotalAmount
	}
	if req.Description != nil {
		inv.Description = strings.TrimSpace(*req.Description)
	}
	if req.PDFURL != nil {
		inv.PDFURL = *req.PDFURL
	}
	if req.XMLURL != nil {
		inv.XMLURL = *req.XMLURL
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Get(ctx context.Context, id uint64) (*dbsql.Invoice, error) {
	return s.repo.ByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Invoice], error) {
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.Invoice]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

func (s *invoiceService) ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Invoice, error) {
	if _, err := s.repo.Movement(ctx, movementID); err != nil {
		return nil, err
	}
	items, err := s.repo.ByMovement(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []dbsql.Invoice{}
	}
	return items, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("invoice deleted", zap.Uint64("invoice_id", id))
	return nil
}
