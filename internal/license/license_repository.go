package license

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	Search string
	Active *bool
}

type LicenseRepository interface {
	Create(ctx context.Context, l *dbsql.License) error
	Update(ctx context.Context, l *dbsql.License) error
	ByID(ctx context.Context, id uint64) (*dbsql.License, error)
	ByDocument(ctx context.Context, document string) (*dbsql.License, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.License, int64, error)
	ByUser(ctx context.Context, userID uint64) ([]dbsql.License, error)
}

type licenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) LicenseRepository {
	return &licenseRepository{db: db}
}

func (r *licenseRepository) Create(ctx context.Context, l *dbsql.License) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *licenseRepository) Update(ctx context.Context, l *dbsql.License) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *licenseRepository) ByID(ctx context.Context, id uint64) (*dbsql.License, error) {
	var l dbsql.License
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &l, nil
}

func (r *licenseRepository) ByDocument(ctx context.Context, document string) (*dbsql.License, error) {
	var l dbsql.License
	if err := r.db.WithContext(ctx).Where("document = ?", document).First(&l).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &l, nil
}

func (r *licenseRepository) List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.License, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []dbsql.License
	err := r.filtered(ctx, filter).
		Order("name, id").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ByUser returns the user's default license plus every granted one.
func (r *licenseRepository) ByUser(ctx context.Context, userID uint64) ([]dbsql.License, error) {
	db := r.db.WithContext(ctx)
	granted := db.Model(&dbsql.UserLicense{}).Select("license_id").Where("user_id = ?", userID)
	owned := db.Model(&dbsql.User{}).Select("license_id").Where("id = ?", userID)

	var out []dbsql.License
	err := db.Where("id IN (?) OR id IN (?)", granted, owned).
		Order("name, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *licenseRepository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.License{})
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(name LIKE ? OR document LIKE ?)", like, like)
	}
	return q
}
