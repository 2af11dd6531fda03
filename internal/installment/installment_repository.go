package installment

import (
	"context"
	"fmt"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	MovementID *uint64
	Status     string
	DueFrom    *time.Time
	DueTo      *time.Time
}

type InstallmentRepository interface {
	Create(ctx context.Context, i *dbsql.Installment) error
	CreateBatch(ctx context.Context, movementID uint64, items []dbsql.Installment) error
	Update(ctx context.Context, i *dbsql.Installment) error
	ByID(ctx context.Context, id uint64) (*dbsql.Installment, error)
	ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Installment, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Installment, int64, error)
	Delete(ctx context.Context, id uint64) error

	Movement(ctx context.Context, id uint64) (*dbsql.Movement, error)
	PaymentMethod(ctx context.Context, id uint64) (*dbsql.PaymentMethod, error)
	PaymentMethods(ctx context.Context, activeOnly bool) ([]dbsql.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, pm *dbsql.PaymentMethod) error
}

type installmentRepo struct {
	db *gorm.DB
}

func NewInstallmentRepository(db *gorm.DB) InstallmentRepository {
	return &installmentRepo{db: db}
}

func (r *installmentRepo) Create(ctx context.Context, i *dbsql.Installment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

// CreateBatch inserts every installment of a movement in one transaction.
// A movement that already has installments is left untouched.
func (r *installmentRepo) CreateBatch(ctx context.Context, movementID uint64, items []dbsql.Installment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&dbsql.Installment{}).Where("movement_id = ?", movementID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("movement %d already has %d installments: %w", movementID, n, common.ErrConflict)
		}
		for idx := range items {
			if err := tx.Create(&items[idx]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *installmentRepo) Update(ctx context.Context, i *dbsql.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *installmentRepo) ByID(ctx context.Context, id uint64) (*dbsql.Installment, error) {
	var i dbsql.Installment
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &i, nil
}

func (r *installmentRepo) ByMovement(ctx context.Context, movementID uint64) ([]dbsql.Installment, error) {
	var items []dbsql.Installment
	err := r.db.WithContext(ctx).
		Where("movement_id = ?", movementID).
		Order("number").
		Find(&items).Error
	return items, err
}

func (r *installmentRepo) List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Installment, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []dbsql.Installment
	err := r.filtered(ctx, filter).
		Order("due_date, id").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *installmentRepo) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.Installment{})
	if filter.MovementID != nil {
		q = q.Where("movement_id = ?", *filter.MovementID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DueFrom != nil {
		q = q.Where("due_date >= ?", filter.DueFrom.Format(dateLayout))
	}
	if filter.DueTo != nil {
		q = q.Where("due_date <= ?", filter.DueTo.Format(dateLayout))
	}
	return q
}

// Delete refuses to remove an installment that already has boletos.
func (r *installmentRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&dbsql.Boleto{}).Where("installment_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("installment %d has boletos: %w", id, common.ErrConflict)
		}

		res := tx.Delete(&dbsql.Installment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

func (r *installmentRepo) Movement(ctx context.Context, id uint64) (*dbsql.Movement, error) {
	var m dbsql.Movement
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &m, nil
}

func (r *installmentRepo) PaymentMethod(ctx context.Context, id uint64) (*dbsql.PaymentMethod, error) {
	var pm dbsql.PaymentMethod
	if err := r.db.WithContext(ctx).First(&pm, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &pm, nil
}

func (r *installmentRepo) PaymentMethods(ctx context.Context, activeOnly bool) ([]dbsql.PaymentMethod, error) {
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []dbsql.PaymentMethod
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *installmentRepo) CreatePaymentMethod(ctx context.Context, pm *dbsql.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(pm).Error
}
