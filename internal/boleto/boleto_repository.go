package boleto

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	InstallmentID *uint64
	Status        string
}

type BoletoRepository interface {
	Create(ctx context.Context, b *dbsql.Boleto) error
	Update(ctx context.Context, b *dbsql.Boleto) error
	ByID(ctx context.Context, id uint64) (*dbsql.Boleto, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Boleto, int64, error)
	Delete(ctx context.Context, id uint64) error
	Installment(ctx context.Context, id uint64) (*dbsql.Installment, error)
}

type boletoRepo struct {
	db *gorm.DB
}

func NewBoletoRepository(db *gorm.DB) BoletoRepository {
	return &boletoRepo{db: db}
}

func (r *boletoRepo) Create(ctx context.Context, b *dbsql.Boleto) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *boletoRepo) Update(ctx context.Context, b *dbsql.Boleto) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *boletoRepo) ByID(ctx context.Context, id uint64) (*dbsql.Boleto, error) {
	var b dbsql.Boleto
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &b, nil
}

func (r *boletoRepo) List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Boleto, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []dbsql.Boleto
	err := r.filtered(ctx, filter).
		Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *boletoRepo) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.Boleto{})
	if filter.InstallmentID != nil {
		q = q.Where("installment_id = ?", *filter.InstallmentID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}

func (r *boletoRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&dbsql.Boleto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *boletoRepo) Installment(ctx context.Context, id uint64) (*dbsql.Installment, error) {
	var i dbsql.Installment
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &i, nil
}
