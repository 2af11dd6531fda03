package license

import (
	"context"
	"regexp"
	"testing"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

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

var licenseColumns = []string{"id", "name", "document", "active", "created_at", "updated_at"}

func TestLicenseRepository_Create(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `licenses`")).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	l := &dbsql.License{Name: "Agile", Document: "11222333000181", Active: true}
	require.NoError(t, NewLicenseRepository(db).Create(context.Background(), l))
	assert.Equal(t, uint64(4), l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_ByDocument(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `licenses` WHERE document = ?")).
		WillReturnRows(sqlmock.NewRows(licenseColumns).AddRow(4, "Agile", "11222333000181", true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `licenses` WHERE document = ?")).
		WillReturnRows(sqlmock.NewRows(licenseColumns))

	repo := NewLicenseRepository(db)
	l, err := repo.ByDocument(context.Background(), "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "Agile", l.Name)

	_, err = repo.ByDocument(context.Background(), "00000000000")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_List(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	active := false
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `licenses` WHERE active = ? AND (name LIKE ? OR document LIKE ?)")).
		WithArgs(false, "%agi%", "%agi%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `licenses` WHERE active = ? AND (name LIKE ? OR document LIKE ?) ORDER BY name, id LIMIT")).
		WillReturnRows(sqlmock.NewRows(licenseColumns).AddRow(4, "Agile", "11222333000181", false, now, now))

	items, total, err := NewLicenseRepository(db).List(context.Background(),
		ListFilter{Search: "agi", Active: &active}, common.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_ByUser(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `licenses` WHERE id IN (SELECT `license_id` FROM `user_licenses` WHERE user_id = ?) OR id IN (SELECT `license_id` FROM `users` WHERE id = ?) ORDER BY name, id")).
		WithArgs(3, 3).
		WillReturnRows(sqlmock.NewRows(licenseColumns).
			AddRow(1, "Agile", "11222333000181", true, now, now).
			AddRow(2, "Beta", "52998224725", true, now, now))

	items, err := NewLicenseRepository(db).ByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
