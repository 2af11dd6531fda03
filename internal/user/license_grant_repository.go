package user

import (
	"context"

	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LicenseGrantRepository manages the extra licenses a user may act on
// besides the default one stored on the user row.
type LicenseGrantRepository interface {
	Grant(ctx context.Context, userID, licenseID uint64) error
	Revoke(ctx context.Context, userID, licenseID uint64) (bool, error)
	HasGrant(ctx context.Context, userID, licenseID uint64) (bool, error)
	LicenseIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type licenseGrantRepository struct {
	db *gorm.DB
}

func NewLicenseGrantRepository(db *gorm.DB) LicenseGrantRepository {
	return &licenseGrantRepository{db: db}
}

// Grant is idempotent.
func (r *licenseGrantRepository) Grant(ctx context.Context, userID, licenseID uint64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dbsql.UserLicense{UserID: userID, LicenseID: licenseID}).Error
}

func (r *licenseGrantRepository) Revoke(ctx context.Context, userID, licenseID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND license_id = ?", userID, licenseID).
		Delete(&dbsql.UserLicense{})
	return res.RowsAffected > 0, res.Error
}

func (r *licenseGrantRepository) HasGrant(ctx context.Context, userID, licenseID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbsql.UserLicense{}).
		Where("user_id = ? AND license_id = ?", userID, licenseID).
		Count(&count).Error
	return count > 0, err
}

func (r *licenseGrantRepository) LicenseIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbsql.UserLicense{}).
		Where("user_id = ?", userID).
		Order("license_id").
		Pluck("license_id", &ids).Error
	return ids, err
}
