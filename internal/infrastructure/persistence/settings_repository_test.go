package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPlatformFeeRateFromSettings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSettingsRepository(db, 0.05)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow(PlatformFeeRateKey, "0.08", time.Now())
	mock.ExpectQuery(`SELECT \* FROM "platform_settings"`).
		WithArgs(PlatformFeeRateKey, 1).
		WillReturnRows(rows)

	rate, err := repo.PlatformFeeRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.08", rate.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlatformFeeRateDefaultsWhenMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSettingsRepository(db, 0.05)

	mock.ExpectQuery(`SELECT \* FROM "platform_settings"`).
		WithArgs(PlatformFeeRateKey, 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	rate, err := repo.PlatformFeeRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.05", rate.String())
}

func TestPlatformFeeRateMalformedValue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSettingsRepository(db, 0.05)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow(PlatformFeeRateKey, "eight percent", time.Now())
	mock.ExpectQuery(`SELECT \* FROM "platform_settings"`).
		WithArgs(PlatformFeeRateKey, 1).
		WillReturnRows(rows)

	_, err := repo.PlatformFeeRate(context.Background())
	assert.Error(t, err)
}

func TestPlatformFeeRateOutOfRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSettingsRepository(db, 0.05)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow(PlatformFeeRateKey, "1.5", time.Now())
	mock.ExpectQuery(`SELECT \* FROM "platform_settings"`).
		WithArgs(PlatformFeeRateKey, 1).
		WillReturnRows(rows)

	_, err := repo.PlatformFeeRate(context.Background())
	assert.Error(t, err)
}
