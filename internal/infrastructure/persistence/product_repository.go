package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketplace/backend/internal/domain/ordering"
)

// GormProductRepository implements ordering.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ListByAgent returns all catalog entries of one agent.
func (r *GormProductRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]ordering.Product, error) {
	var models []ProductModel
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for agent %s: %w", agentID, err)
	}
	return toDomainProducts(models), nil
}

// ListAll returns the whole catalog.
func (r *GormProductRepository) ListAll(ctx context.Context) ([]ordering.Product, error) {
	var models []ProductModel
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return toDomainProducts(models), nil
}

func toDomainProducts(models []ProductModel) []ordering.Product {
	products := make([]ordering.Product, 0, len(models))
	for i := range models {
		products = append(products, models[i].toDomain())
	}
	return products
}
