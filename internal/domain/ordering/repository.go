package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository loads orders for aggregation. Implementations return
// orders with their items preloaded, newest first.
type OrderRepository interface {
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
}

// ProductRepository loads catalog entries.
type ProductRepository interface {
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)
}

// CategoryRepository loads the category dimension.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]Category, error)
}

// SettingsRepository exposes platform-wide settings. The fee rate is read
// on every request so operator changes take effect immediately.
type SettingsRepository interface {
	PlatformFeeRate(ctx context.Context) (decimal.Decimal, error)
}
