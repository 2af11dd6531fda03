package contact

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

var contactColumns = []string{"id", "person_id", "type", "contact", "description", "is_main", "active", "created_at", "updated_at"}

func TestContactRepository_Create(t *testing.T) {
	person := uint64(42)

	tests := []struct {
		name        string
		contact     *dbsql.Contact
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name:    "plain insert",
			contact: &dbsql.Contact{Type: "email", Value: "a@b.com", Active: true},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `contacts`")).
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "main contact clears previous main",
			contact: &dbsql.Contact{PersonID: &person, Type: "phone", Value: "11987654321", IsMain: true, Active: true},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `contacts` SET `is_main`=?")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `contacts`")).
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "insert failure rolls back",
			contact: &dbsql.Contact{Type: "email", Value: "a@b.com"},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `contacts`")).
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

			err := NewContactRepository(db).Create(context.Background(), tt.contact)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(7), tt.contact.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContactRepository_ByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `contacts` WHERE `contacts`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows(contactColumns).AddRow(3, 42, "phone", "11987654321", "", true, true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `contacts` WHERE `contacts`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows(contactColumns))

	repo := NewContactRepository(db)
	c, err := repo.ByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "11987654321", c.Value)
	require.NotNil(t, c.PersonID)
	assert.Equal(t, uint64(42), *c.PersonID)

	_, err = repo.ByID(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	person := uint64(42)
	active := true
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `contacts` WHERE type = ? AND person_id = ? AND active = ?")).
		WithArgs("phone", person, active).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `contacts` WHERE type = ? AND person_id = ? AND active = ? ORDER BY id DESC LIMIT")).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(8, 42, "phone", "11911111111", "", false, true, now, now).
			AddRow(7, 42, "phone", "11922222222", "", true, true, now, now))

	items, total, err := NewContactRepository(db).List(context.Background(),
		ListFilter{Type: "phone", PersonID: &person, Active: &active},
		common.PageQuery{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ByValue(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `contacts` WHERE type = ? AND contact = ?")).
		WillReturnRows(sqlmock.NewRows(contactColumns))

	_, err := NewContactRepository(db).ByValue(context.Background(), "whatsapp", "5511987654321")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_CountByPerson(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `contacts` WHERE person_id = ? AND active = ?")).
		WithArgs(uint64(42), true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := NewContactRepository(db).CountByPerson(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_PromoteMain(t *testing.T) {
	person := uint64(42)

	tests := []struct {
		name        string
		contact     *dbsql.Contact
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name:    "demotes the previous main contact before saving",
			contact: &dbsql.Contact{ID: 2, PersonID: &person, Type: "email", Value: "ana@agile.com", Active: true},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `contacts` SET `is_main`=?,`updated_at`=? WHERE person_id = ? AND is_main = ? AND id <> ?")).
					WithArgs(false, sqlmock.AnyArg(), person, true, uint64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `contacts` SET `person_id`=?")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "contact without person only saves",
			contact: &dbsql.Contact{ID: 3, Type: "email", Value: "b@agile.com", Active: true},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `contacts` SET `person_id`=?")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "save failure rolls back the demotion",
			contact: &dbsql.Contact{ID: 2, PersonID: &person, Type: "email", Value: "ana@agile.com", Active: true},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `contacts` SET `is_main`=?")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `contacts` SET `person_id`=?")).
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

			err := NewContactRepository(db).PromoteMain(context.Background(), tt.contact)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.contact.IsMain)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContactRepository_Person_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `persons` WHERE `persons`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}))

	_, err := NewContactRepository(db).Person(context.Background(), 999)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
