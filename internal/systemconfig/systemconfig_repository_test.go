package systemconfig

import (
	"context"
	"regexp"
	"testing"
	"time"

	"agilefinance/internal/common"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

var configColumns = []string{"id", "config_key", "config_value", "description", "created_at", "updated_at"}

func TestRepository_Upsert(t *testing.T) {
	desc := "Banco emissor"
	now := time.Now()

	tests := []struct {
		name        string
		description *string
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name:        "missing key is inserted",
			description: &desc,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `system_config` WHERE config_key = ?")).
					WillReturnRows(sqlmock.NewRows(configColumns))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `system_config`")).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "existing key keeps description",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `system_config` WHERE config_key = ?")).
					WillReturnRows(sqlmock.NewRows(configColumns).AddRow(1, "boleto_bank_code", "001", "old", now, now))
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `system_config` SET `config_value`=?,`description`=COALESCE(?, description)")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "update failure rolls back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `system_config` WHERE config_key = ?")).
					WillReturnRows(sqlmock.NewRows(configColumns).AddRow(1, "boleto_bank_code", "001", nil, now, now))
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `system_config`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tt.mockSetup(mock)

			err := NewRepository(db).Upsert(context.Background(), "boleto_bank_code", "237", tt.description)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ByKeyAndDelete(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `system_config` WHERE config_key = ?")).
		WillReturnRows(sqlmock.NewRows(configColumns))
	_, err := repo.ByKey(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `system_config` WHERE config_key = ?")).
		WithArgs("boleto_bank_code").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	removed, err := repo.Delete(ctx, "boleto_bank_code")
	require.NoError(t, err)
	assert.True(t, removed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
