package calendar_test

import (
	"context"
	"regexp"
	"testing"

	"campus-sync/feature/calendar"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestReplaceSQLShape verifies the full-replace runs as a single
// transaction: unconditional delete, no inserts for an empty feed.
func TestReplaceSQLShape(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `calendar_events`")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `calendar_events`")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	svc := calendar.NewService(db, zap.NewNop())
	removed, created, skipped, err := svc.Replace(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, skipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}
