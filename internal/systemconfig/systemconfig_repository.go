package systemconfig

import (
	"context"
	"errors"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]dbsql.SystemConfig, error)
	ByKey(ctx context.Context, key string) (*dbsql.SystemConfig, error)
	Upsert(ctx context.Context, key, value string, description *string) error
	Delete(ctx context.Context, key string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]dbsql.SystemConfig, error) {
	var out []dbsql.SystemConfig
	if err := r.db.WithContext(ctx).Order("config_key").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ByKey(ctx context.Context, key string) (*dbsql.SystemConfig, error) {
	var cfg dbsql.SystemConfig
	if err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&cfg).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &cfg, nil
}

// Upsert keeps the stored description when description is nil.
func (r *repository) Upsert(ctx context.Context, key, value string, description *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing dbsql.SystemConfig
		err := tx.Where("config_key = ?", key).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&dbsql.SystemConfig{Key: key, Value: value, Description: description}).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&dbsql.SystemConfig{}).
			Where("config_key = ?", key).
			Updates(map[string]interface{}{
				"config_value": value,
				"description":  gorm.Expr("COALESCE(?, description)", description),
			}).Error
	})
}

func (r *repository) Delete(ctx context.Context, key string) (bool, error) {
	res := r.db.WithContext(ctx).Where("config_key = ?", key).Delete(&dbsql.SystemConfig{})
	return res.RowsAffected > 0, res.Error
}
