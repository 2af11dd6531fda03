package person

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	Search     string
	PersonType string
	Active     *bool
}

type PersonRepository interface {
	Create(ctx context.Context, p *dbsql.Person) error
	Update(ctx context.Context, p *dbsql.Person) error
	ByID(ctx context.Context, id uint64) (*dbsql.Person, error)
	WithContacts(ctx context.Context, id uint64) (*dbsql.Person, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Person, int64, error)
}

type personRepo struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) Create(ctx context.Context, p *dbsql.Person) error {
	return r.db.WithContext(ctx).Omit("Contacts").Create(p).Error
}

func (r *personRepo) Update(ctx context.Context, p *dbsql.Person) error {
	return r.db.WithContext(ctx).Omit("Contacts").Save(p).Error
}

func (r *personRepo) ByID(ctx context.Context, id uint64) (*dbsql.Person, error) {
	var p dbsql.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &p, nil
}

// WithContacts loads the person and its contacts, main contact first.
func (r *personRepo) WithContacts(ctx context.Context, id uint64) (*dbsql.Person, error) {
	var p dbsql.Person
	err := r.db.WithContext(ctx).
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_main DESC, id")
		}).
		First(&p, id).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &p, nil
}

func (r *personRepo) List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Person, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []dbsql.Person
	err := r.filtered(ctx, filter).
		Order("full_name, id").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *personRepo) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.Person{})
	if filter.PersonType != "" {
		q = q.Where("person_type = ?", filter.PersonType)
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(full_name LIKE ? OR fantasy_name LIKE ?)", like, like)
	}
	return q
}
