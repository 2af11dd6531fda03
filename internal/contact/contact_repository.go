package contact

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	Type     string
	PersonID *uint64
	Search   string
	Active   *bool
}

type ContactRepository interface {
	Create(ctx context.Context, c *dbsql.Contact) error
	Update(ctx context.Context, c *dbsql.Contact) error
	PromoteMain(ctx context.Context, c *dbsql.Contact) error
	ByID(ctx context.Context, id uint64) (*dbsql.Contact, error)
	ByValue(ctx context.Context, contactType, value string) (*dbsql.Contact, error)
	List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Contact, int64, error)
	ByPerson(ctx context.Context, personID uint64) ([]dbsql.Contact, error)
	CountByPerson(ctx context.Context, personID uint64) (int64, error)

	Person(ctx context.Context, id uint64) (*dbsql.Person, error)
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

// Create inserts c. When c is the person's main contact every other contact
// of the person loses the flag in the same transaction.
func (r *contactRepo) Create(ctx context.Context, c *dbsql.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsMain && c.PersonID != nil {
			if err := tx.Model(&dbsql.Contact{}).
				Where("person_id = ? AND is_main = ?", *c.PersonID, true).
				Update("is_main", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(c).Error
	})
}

func (r *contactRepo) Update(ctx context.Context, c *dbsql.Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// PromoteMain saves c as its person's main contact and clears the flag on
// every other contact of the person in the same transaction.
func (r *contactRepo) PromoteMain(ctx context.Context, c *dbsql.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.PersonID != nil {
			if err := tx.Model(&dbsql.Contact{}).
				Where("person_id = ? AND is_main = ? AND id <> ?", *c.PersonID, true, c.ID).
				Update("is_main", false).Error; err != nil {
				return err
			}
		}
		c.IsMain = true
		return tx.Save(c).Error
	})
}

func (r *contactRepo) ByID(ctx context.Context, id uint64) (*dbsql.Contact, error) {
	var c dbsql.Contact
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &c, nil
}

func (r *contactRepo) ByValue(ctx context.Context, contactType, value string) (*dbsql.Contact, error) {
	var c dbsql.Contact
	err := r.db.WithContext(ctx).
		Where("type = ? AND contact = ?", contactType, value).
		Order("id").
		First(&c).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &c, nil
}

func (r *contactRepo) List(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.Contact, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []dbsql.Contact
	err := r.filtered(ctx, filter).
		Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *contactRepo) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.Contact{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.PersonID != nil {
		q = q.Where("person_id = ?", *filter.PersonID)
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(contact LIKE ? OR description LIKE ?)", like, like)
	}
	return q
}

func (r *contactRepo) ByPerson(ctx context.Context, personID uint64) ([]dbsql.Contact, error) {
	var contacts []dbsql.Contact
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND active = ?", personID, true).
		Order("is_main DESC, id").
		Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo) CountByPerson(ctx context.Context, personID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbsql.Contact{}).
		Where("person_id = ? AND active = ?", personID, true).
		Count(&n).Error
	return n, err
}

func (r *contactRepo) Person(ctx context.Context, id uint64) (*dbsql.Person, error) {
	var p dbsql.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &p, nil
}
