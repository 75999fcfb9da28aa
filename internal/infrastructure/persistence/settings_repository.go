package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlatformFeeRateKey is the settings row holding the commission rate.
const PlatformFeeRateKey = "platform_fee_rate"

// GormSettingsRepository implements ordering.SettingsRepository using
// GORM. When the settings row is absent the configured default applies,
// so a fresh database works without seeding.
type GormSettingsRepository struct {
	db          *gorm.DB
	defaultRate decimal.Decimal
}

// NewGormSettingsRepository creates a new settings repository with the
// config fallback rate.
func NewGormSettingsRepository(db *gorm.DB, defaultRate float64) *GormSettingsRepository {
	return &GormSettingsRepository{
		db:          db,
		defaultRate: decimal.NewFromFloat(defaultRate),
	}
}

// PlatformFeeRate reads the current commission rate. Reading per request
// means an operator change takes effect immediately.
func (r *GormSettingsRepository) PlatformFeeRate(ctx context.Context) (decimal.Decimal, error) {
	var setting PlatformSettingModel
	err := r.db.WithContext(ctx).
		Where("key = ?", PlatformFeeRateKey).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.defaultRate, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read platform fee rate: %w", err)
	}

	rate, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed platform fee rate %q: %w", setting.Value, err)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("platform fee rate %s out of range [0, 1)", rate)
	}
	return rate, nil
}
