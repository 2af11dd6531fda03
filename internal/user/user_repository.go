package user

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type ListFilter struct {
	Search    string
	Active    *bool
	LicenseID *uint64
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbsql.User) error
	UpdateUser(ctx context.Context, user *dbsql.User) error
	GetUserByID(ctx context.Context, userID uint64) (*dbsql.User, error)
	GetUserByEmail(ctx context.Context, email string) (*dbsql.User, error)
	CheckEmailExists(ctx context.Context, email string, exceptID uint64) (bool, error)
	ListUsers(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbsql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbsql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*dbsql.User, error) {
	var user dbsql.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &user, nil
}

// GetUserByEmail also returns inactive users; the caller decides.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*dbsql.User, error) {
	var user dbsql.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &user, nil
}

func (r *userRepository) CheckEmailExists(ctx context.Context, email string, exceptID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbsql.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ListUsers(ctx context.Context, filter ListFilter, page common.PageQuery) ([]dbsql.User, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []dbsql.User
	err := r.filtered(ctx, filter).
		Order("name, id").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.User{})
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.LicenseID != nil {
		q = q.Where("license_id = ?", *filter.LicenseID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(name LIKE ? OR email LIKE ?)", like, like)
	}
	return q
}
