package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketplace/backend/internal/domain/ordering"
)

// GormOrderRepository implements ordering.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ListByAgent returns all orders of one agent with items preloaded,
// newest first.
func (r *GormOrderRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]ordering.Order, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("agent_id = ?", agentID).
		Order("placed_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for agent %s: %w", agentID, err)
	}
	return toDomainOrders(models), nil
}

// ListAll returns every order on the platform with items preloaded,
// newest first.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]ordering.Order, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("placed_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return toDomainOrders(models), nil
}

func toDomainOrders(models []OrderModel) []ordering.Order {
	orders := make([]ordering.Order, 0, len(models))
	for i := range models {
		orders = append(orders, models[i].toDomain())
	}
	return orders
}
