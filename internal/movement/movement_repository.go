package movement

import (
	"context"
	"fmt"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	LicenseID      *uint64
	PersonID       *uint64
	MovementTypeID *uint64
	StatusIDs      []uint64
	DateFrom       *time.Time
	DateTo         *time.Time
	Search         string
	OrderBy        string
	Ascending      bool
}

// orderColumns whitelists the sortable fields, keyed by their JSON name.
var orderColumns = map[string]string{
	"movementDate":     "movement_date",
	"id":               "id",
	"movementTypeId":   "movement_type_id",
	"movementStatusId": "movement_status_id",
	"totalAmount":      "total_amount",
}

type MovementRepository interface {
	Create(ctx context.Context, m *dbsql.Movement) error
	Update(ctx context.Context, m *dbsql.Movement) error
	ByID(ctx context.Context, id uint64) (*dbsql.Movement, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Movement, int64, error)
	UpdateStatus(ctx context.Context, id, statusID uint64) error
	Delete(ctx context.Context, id uint64) error
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) MovementRepository {
	return &movementRepo{db: db}
}

func (r *movementRepo) Create(ctx context.Context, m *dbsql.Movement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movementRepo) Update(ctx context.Context, m *dbsql.Movement) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *movementRepo) ByID(ctx context.Context, id uint64) (*dbsql.Movement, error) {
	var m dbsql.Movement
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &m, nil
}

func (r *movementRepo) List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Movement, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := orderColumns[filter.OrderBy]
	if !ok {
		column = "movement_date"
	}
	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}

	var items []dbsql.Movement
	err := r.filtered(ctx, filter).
		Order(fmt.Sprintf("%s %s, id %s", column, direction, direction)).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *movementRepo) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.Movement{})
	if filter.LicenseID != nil {
		q = q.Where("license_id = ?", *filter.LicenseID)
	}
	if filter.PersonID != nil {
		q = q.Where("person_id = ?", *filter.PersonID)
	}
	if filter.MovementTypeID != nil {
		q = q.Where("movement_type_id = ?", *filter.MovementTypeID)
	}
	if len(filter.StatusIDs) > 0 {
		q = q.Where("movement_status_id IN ?", filter.StatusIDs)
	}
	if filter.DateFrom != nil {
		q = q.Where("movement_date >= ?", filter.DateFrom.Format(dateLayout))
	}
	if filter.DateTo != nil {
		q = q.Where("movement_date <= ?", filter.DateTo.Format(dateLayout))
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(description LIKE ? OR observation LIKE ?)", like, like)
	}
	return q
}

func (r *movementRepo) UpdateStatus(ctx context.Context, id, statusID uint64) error {
	res := r.db.WithContext(ctx).Model(&dbsql.Movement{}).
		Where("id = ?", id).
		Update("movement_status_id", statusID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Delete refuses to remove a movement that already has installments.
func (r *movementRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&dbsql.Installment{}).Where("movement_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("movement %d has %d installments: %w", id, n, common.ErrConflict)
		}

		res := tx.Delete(&dbsql.Movement{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}
