package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/marketplace/backend/internal/domain/ordering"
)

// GormCategoryRepository implements ordering.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// ListAll returns every category.
func (r *GormCategoryRepository) ListAll(ctx context.Context) ([]ordering.Category, error) {
	var models []CategoryModel
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]ordering.Category, 0, len(models))
	for i := range models {
		categories = append(categories, models[i].toDomain())
	}
	return categories, nil
}
