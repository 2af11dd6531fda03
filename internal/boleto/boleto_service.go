package boleto

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"
	"agilefinance/internal/installment"
	"agilefinance/internal/queue"

	"go.uber.org/zap"
)

const JobGenerate = "boleto.generate"

const (
	StatusPending   = "PENDING"
	StatusGenerated = "GENERATED"
	StatusError     = "ERROR"
	StatusCanceled  = "CANCELED"
)

const dateLayout = "2006-01-02"

var ErrStorageDisabled = errors.New("file storage is disabled")

type GeneratePayload struct {
	BoletoID uint64 `json:"boletoId"`
}

type CreateBoletoRequest struct {
	InstallmentID uint64  `json:"installmentId" validate:"required,gt=0"`
	BoletoNumber  string  `json:"boletoNumber" validate:"max=60"`
	DueDate       string  `json:"dueDate" validate:"required,yyyymmdd"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateBoletoRequest struct {
	BoletoNumber *string  `json:"boletoNumber" validate:"omitempty,max=60"`
	DueDate      *string  `json:"dueDate" validate:"omitempty,yyyymmdd"`
	Amount       *float64 `json:"amount" validate:"omitempty,gt=0"`
	Status       *string  `json:"status" validate:"omitempty,oneof=PENDING GENERATED ERROR CANCELED"`
}

type BoletoService interface {
	Create(ctx context.Context, req CreateBoletoRequest) (*dbsql.Boleto, error)
	Update(ctx context.Context, id uint64, req UpdateBoletoRequest) (*dbsql.Boleto, error)
	Get(ctx context.Context, id uint64) (*dbsql.Boleto, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Boleto], error)
	Delete(ctx context.Context, id uint64) error
	RequestGeneration(ctx context.Context, installmentID uint64) (*dbsql.Boleto, error)
	Process(ctx context.Context, job *queue.Job) error
	PDF(ctx context.Context, id uint64) (io.ReadCloser, *common.StoredFile, error)
}

type boletoService struct {
	repo  BoletoRepository
	queue queue.Queue
	files common.FileStore
	now   func() time.Time
	log   *zap.Logger
}

// NewBoletoService accepts a nil files store; generation jobs then fail
// with ErrStorageDisabled.
func NewBoletoService(repo BoletoRepository, q queue.Queue, files common.FileStore, log *zap.Logger) BoletoService {
	return &boletoService{repo: repo, queue: q, files: files, now: time.Now, log: log}
}

func (s *boletoService) Create(ctx context.Context, req CreateBoletoRequest) (*dbsql.Boleto, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.repo.Installment(ctx, req.InstallmentID); err != nil {
		return nil, err
	}

	due, _ := time.Parse(dateLayout, req.DueDate)
	b := &dbsql.Boleto{
		InstallmentID: req.InstallmentID,
		BoletoNumber:  req.BoletoNumber,
		Status:        StatusPending,
		DueDate:       due,
		Amount:        req.Amount,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *boletoService) Update(ctx context.Context, id uint64, req UpdateBoletoRequest) (*dbsql.Boleto, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	b, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.BoletoNumber != nil {
		b.BoletoNumber = *req.BoletoNumber
	}
	if req.DueDate != nil {
		b.DueDate, _ = time.Parse(dateLayout, *req.DueDate)
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.Status != nil {
		b.Status = *req.Status
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *boletoService) Get(ctx context.Context, id uint64) (*dbsql.Boleto, error) {
	return s.repo.ByID(ctx, id)
}

func (s *boletoService) List(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.Boleto], error) {
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.Boleto]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

// Delete removes the row and, best effort, its stored PDF.
func (s *boletoService) Delete(ctx context.Context, id uint64) error {
	b, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if b.PDFFileID != "" && s.files != nil {
		if err := s.files.Delete(ctx, b.PDFFileID); err != nil {
			s.log.Warn("boleto pdf not removed", zap.Uint64("boleto_id", id), zap.String("file_id", b.PDFFileID), zap.Error(err))
		}
	}
	return nil
}

// RequestGeneration creates a pending boleto for the installment balance and
// queues its rendering.
func (s *boletoService) RequestGeneration(ctx context.Context, installmentID uint64) (*dbsql.Boleto, error) {
	inst, err := s.repo.Installment(ctx, installmentID)
	if err != nil {
		return nil, err
	}
	if inst.Status != installment.StatusPending {
		return nil, fmt.Errorf("installment %d is %s: %w", inst.ID, inst.Status, common.ErrConflict)
	}

	b := &dbsql.Boleto{
		InstallmentID: inst.ID,
		Status:        StatusPending,
		DueDate:       inst.DueDate,
		Amount:        inst.Balance,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	job, err := queue.Enqueue(ctx, s.queue, JobGenerate, GeneratePayload{BoletoID: b.ID})
	if err != nil {
		s.markError(ctx, b, err)
		return nil, fmt.Errorf("queue boleto %d: %w", b.ID, err)
	}

	s.log.Info("boleto generation queued",
		zap.Uint64("boleto_id", b.ID),
		zap.Uint64("installment_id", inst.ID),
		zap.String("job_id", job.ID),
	)
	return b, nil
}

// Process is the worker side of JobGenerate.
func (s *boletoService) Process(ctx context.Context, job *queue.Job) error {
	var payload GeneratePayload
	if err := job.Decode(&payload); err != nil {
		return fmt.Errorf("decode %s job %s: %w", job.Type, job.ID, err)
	}

	b, err := s.repo.ByID(ctx, payload.BoletoID)
	if errors.Is(err, common.ErrNotFound) {
		s.log.Warn("boleto vanished before generation", zap.Uint64("boleto_id", payload.BoletoID))
		return nil
	}
	if err != nil {
		return err
	}
	if b.Status == StatusGenerated || b.Status == StatusCanceled {
		s.log.Info("boleto not pending, skipping", zap.Uint64("boleto_id", b.ID), zap.String("status", b.Status))
		return nil
	}

	if s.files == nil {
		s.markError(ctx, b, ErrStorageDisabled)
		return ErrStorageDisabled
	}

	if b.BoletoNumber == "" {
		b.BoletoNumber = fmt.Sprintf("%011d", b.ID)
	}
	pdf := renderPDF(boletoLines(b))
	stored, err := s.files.Upload(ctx, fmt.Sprintf("boleto-%d.pdf", b.ID), "application/pdf", "boleto-worker", bytes.NewReader(pdf))
	if err != nil {
		s.markError(ctx, b, err)
		return fmt.Errorf("upload boleto %d: %w", b.ID, err)
	}

	now := s.now().UTC()
	b.PDFFileID = stored.ID
	b.Status = StatusGenerated
	b.GeneratedAt = &now
	b.ErrorMessage = ""
	if err := s.repo.Update(ctx, b); err != nil {
		return err
	}

	s.log.Info("boleto generated", zap.Uint64("boleto_id", b.ID), zap.String("file_id", stored.ID))
	return nil
}

func (s *boletoService) markError(ctx context.Context, b *dbsql.Boleto, cause error) {
	b.Status = StatusError
	b.ErrorMessage = truncate(cause.Error(), 500)
	if err := s.repo.Update(ctx, b); err != nil {
		s.log.Error("boleto error status not saved", zap.Uint64("boleto_id", b.ID), zap.Error(err))
	}
}

func (s *boletoService) PDF(ctx context.Context, id uint64) (io.ReadCloser, *common.StoredFile, error) {
	b, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if b.PDFFileID == "" {
		return nil, nil, fmt.Errorf("boleto %d has no pdf yet: %w", id, common.ErrNotFound)
	}
	if s.files == nil {
		return nil, nil, ErrStorageDisabled
	}
	return s.files.Download(ctx, b.PDFFileID)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
