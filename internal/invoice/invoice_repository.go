package invoice

import (
	"context"
	"fmt"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	MovementID  *uint64
	Status      string
	ReferenceID string
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *dbsql.Invoice) error
	Update(ctx context.Context, inv *dbsql.Invoice) error
	ByID(ctx context.Context, id uint64) (*dbsql.Invoice, error)
	ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Invoice, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Invoice, int64, error)
	Delete(ctx context.Context, id uint64) error
	CountNFSe(ctx context.Context, id uint64) (int64, error)

	Movement(ctx context.Context, id uint64) (*dbsql.Movement, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *dbsql.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) Update(ctx context.Context, inv *dbsql.Invoice) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *invoiceRepo) ByID(ctx context.Context, id uint64) (*dbsql.Invoice, error) {
	var inv dbsql.Invoice
	if err := r.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &inv, nil
}

func (r *invoiceRepo) ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Invoice, error) {
	var out []dbsql.Invoice
	err := r.db.WithContext(ctx).
		Where("movement_id = ?", movementID).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *invoiceRepo) List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Invoice, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []dbsql.Invoice
	err := r.filtered(ctx, filter).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *invoiceRepo) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.Invoice{})
	if filter.MovementID != nil {
		q = q.Where("movement_id = ?", *filter.MovementID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ReferenceID != "" {
		q = q.Where("reference_id = ?", filter.ReferenceID)
	}
	return q
}

// Delete refuses to remove an invoice that already has tax documents.
func (r *invoiceRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&dbsql.NFSe{}).Where("invoice_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("invoice %d has %d nfse: %w", id, n, common.ErrConflict)
		}

		res := tx.Delete(&dbsql.Invoice{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

func (r *invoiceRepo) CountNFSe(ctx context.Context, id uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbsql.NFSe{}).
		Where("invoice_id = ?", id).
		Count(&n).Error
	return n, err
}

func (r *invoiceRepo) Movement(ctx context.Context, id uint64) (*dbsql.Movement, error) {
	var m dbsql.Movement
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &m, nil
}
