package invoice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

// NFSe history event types.
const (
	EventCreated       = "CREATED"
	EventStatusChanged = "STATUS_CHANGED"
	EventCanceled      = "CANCELED"
)

type CreateNFSeRequest struct {
	IntegrationID    string `json:"integrationId" validate:"max=64"`
	Number           string `json:"number" validate:"max=30"`
	VerificationCode string `json:"verificationCode" validate:"max=60"`
	Status           string `json:"status" validate:"omitempty,oneof=PROCESSING AUTHORIZED ERROR"`
}

type UpdateNFSeStatusRequest struct {
	Status           string   `json:"status" validate:"required,oneof=PROCESSING AUTHORIZED ERROR"`
	Number           string   `json:"number" validate:"max=30"`
	VerificationCode string   `json:"verificationCode" validate:"max=60"`
	Messages         []string `json:"messages"`
}

type CancelNFSeRequest struct {
	Reason string `json:"reason" validate:"required,min=15,max=255"`
}

// NFSeService records tax documents and their status history. Talking to the
// tax authority happens elsewhere; results arrive here as status updates.
type NFSeService interface {
	Create(ctx context.Context, invoiceID uint64, req CreateNFSeRequest) (*dbsql.NFSe, error)
	UpdateStatus(ctx context.Context, id uint64, req UpdateNFSeStatusRequest) (*dbsql.NFSe, error)
	Cancel(ctx context.Context, id uint64, req CancelNFSeRequest) (*dbsql.NFSe, error)
	Get(ctx context.Context, id uint64) (*dbsql.NFSe, error)
	ByInvoice(ctx context.Context, invoiceID uint64) ([]dbsql.NFSe, error)
	ByIntegrationID(ctx context.Context, integrationID string) (*dbsql.NFSe, error)
}

type nfseService struct {
	repo     NFSeRepository
	invoices InvoiceRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewNFSeService(repo NFSeRepository, invoices InvoiceRepository, log *zap.Logger) NFSeService {
	return &nfseService{repo: repo, invoices: invoices, now: time.Now, log: log}
}

func (s *nfseService) Create(ctx context.Context, invoiceID uint64, req CreateNFSeRequest) (*dbsql.NFSe, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	inv, err := s.invoices.ByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == StatusCanceled {
		return nil, fmt.Errorf("invoice %d is canceled: %w", inv.ID, common.ErrConflict)
	}

	n := &dbsql.NFSe{
		InvoiceID:        inv.ID,
		IntegrationID:    strings.TrimSpace(req.IntegrationID),
		Number:           strings.TrimSpace(req.Number),
		VerificationCode: strings.TrimSpace(req.VerificationCode),
		Status:           StatusProcessing,
	}
	if req.Status != "" {
		n.Status = req.Status
	}
	if n.Status == StatusAuthorized {
		issued := s.now().UTC()
		n.IssuedAt = &issued
	}

	ev := &dbsql.NFSeEvent{EventType: EventCreated, Status: n.Status}
	if err := s.repo.Create(ctx, n, ev, mirror(inv, n)); err != nil {
		return nil, err
	}

	s.log.Info("nfse created",
		zap.Uint64("nfse_id", n.ID),
		zap.Uint64("invoice_id", inv.ID),
		zap.String("status", n.Status),
	)
	n.Events = []dbsql.NFSeEvent{*ev}
	return n, nil
}

// UpdateStatus appends a history event only when the status, number or
// verification code actually changes, so replayed updates are no-ops.
func (s *nfseService) UpdateStatus(ctx context.Context, id uint64, req UpdateNFSeStatusRequest) (*dbsql.NFSe, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	n, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Status == StatusCanceled {
		return nil, fmt.Errorf("nfse %d is canceled: %w", n.ID, common.ErrConflict)
	}
	numberChanged := req.Number != "" && req.Number != n.Number
	codeChanged := req.VerificationCode != "" && req.VerificationCode != n.VerificationCode
	if n.Status == req.Status && !numberChanged && !codeChanged {
		return n, nil
	}

	inv, err := s.invoices.ByID(ctx, n.InvoiceID)
	if err != nil {
		return nil, err
	}

	prev := n.Status
	n.Status = req.Status
	if numberChanged {
		n.Number = req.Number
	}
	if codeChanged {
		n.VerificationCode = req.VerificationCode
	}
	if n.Status == StatusAuthorized && n.IssuedAt == nil {
		issued := s.now().UTC()
		n.IssuedAt = &issued
	}

	data := dbsql.JSONMap{"previousStatus": prev}
	if len(req.Messages) > 0 {
		data["messages"] = req.Messages
	}
	ev := &dbsql.NFSeEvent{EventType: EventStatusChanged, Status: n.Status, Data: data}
	if err := s.repo.SaveWithEvent(ctx, n, ev, mirror(inv, n)); err != nil {
		return nil, err
	}

	s.log.Info("nfse status changed",
		zap.Uint64("nfse_id", n.ID),
		zap.String("from", prev),
		zap.String("to", n.Status),
	)
	n.Events = append([]dbsql.NFSeEvent{*ev}, n.Events...)
	return n, nil
}

func (s *nfseService) Cancel(ctx context.Context, id uint64, req CancelNFSeRequest) (*dbsql.NFSe, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	n, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Status == StatusCanceled {
		return nil, fmt.Errorf("nfse %d already canceled: %w", n.ID, common.ErrConflict)
	}

	inv, err := s.invoices.ByID(ctx, n.InvoiceID)
	if err != nil {
		return nil, err
	}

	prev := n.Status
	n.Status = StatusCanceled
	n.CancelReason = req.Reason
	ev := &dbsql.NFSeEvent{
		EventType: EventCanceled,
		Status:    StatusCanceled,
		Data:      dbsql.JSONMap{"previousStatus": prev, "reason": req.Reason},
	}
	if err := s.repo.SaveWithEvent(ctx, n, ev, mirror(inv, n)); err != nil {
		return nil, err
	}

	s.log.Info("nfse canceled", zap.Uint64("nfse_id", n.ID), zap.String("previous_status", prev))
	n.Events = append([]dbsql.NFSeEvent{*ev}, n.Events...)
	return n, nil
}

// mirror copies the document's status onto its invoice, and the number once
// the document is authorized. It returns nil when the invoice already
// matches.
func mirror(inv *dbsql.Invoice, n *dbsql.NFSe) *dbsql.Invoice {
	changed := false
	if inv.Status != n.Status {
		inv.Status = n.Status
		changed = true
	}
	if n.Status == StatusAuthorized && n.Number != "" && inv.Number != n.Number {
		inv.Number = n.Number
		changed = true
	}
	if !changed {
		return nil
	}
	return inv
}

func (s *nfseService) Get(ctx context.Context, id uint64) (*dbsql.NFSe, error) {
	return s.repo.ByID(ctx, id)
}

func (s *nfseService) ByInvoice(ctx context.Context, invoiceID uint64) ([]dbsql.NFSe, error) {
	if _, err := s.invoices.ByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	items, err := s.repo.ByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []dbsql.NFSe{}
	}
	return items, nil
}

func (s *nfseService) ByIntegrationID(ctx context.Context, integrationID string) (*dbsql.NFSe, error) {
	integrationID = strings.TrimSpace(integrationID)
	if integrationID == "" {
		return nil, common.NewValidationError("integrationId", "is required")
	}
	return s.repo.ByIntegrationID(ctx, integrationID)
}
