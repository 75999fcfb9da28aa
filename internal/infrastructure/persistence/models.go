package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/ordering"
)

// OrderModel is the GORM mapping for the orders table.
type OrderModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderNumber   string           `gorm:"size:32;uniqueIndex"`
	AgentID       uuid.UUID        `gorm:"type:uuid;index"`
	CustomerName  string           `gorm:"size:128"`
	Status        string           `gorm:"size:20;index"`
	PaymentStatus string           `gorm:"size:20"`
	GrandTotal    decimal.Decimal  `gorm:"type:decimal(20,4)"`
	PlacedAt      time.Time        `gorm:"index"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the table name
func (OrderModel) TableName() string { return "orders" }

func (m *OrderModel) toDomain() ordering.Order {
	items := make([]ordering.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, m.Items[i].toDomain())
	}
	return ordering.Order{
		ID:            m.ID,
		OrderNumber:   m.OrderNumber,
		AgentID:       m.AgentID,
		CustomerName:  m.CustomerName,
		Status:        ordering.OrderStatus(m.Status),
		PaymentStatus: ordering.PaymentStatus(m.PaymentStatus),
		GrandTotal:    m.GrandTotal,
		PlacedAt:      m.PlacedAt.UTC(),
		Items:         items,
	}
}

// OrderItemModel is the GORM mapping for the order_items table.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	ProductName string    `gorm:"size:128"`
	Quantity    int64
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4)"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(20,4)"`
}

// TableName overrides the table name
func (OrderItemModel) TableName() string { return "order_items" }

func (m *OrderItemModel) toDomain() ordering.OrderItem {
	return ordering.OrderItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
	}
}

// ProductModel is the GORM mapping for the products table.
type ProductModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AgentID    uuid.UUID       `gorm:"type:uuid;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;index"`
	Name       string          `gorm:"size:128"`
	SKU        string          `gorm:"size:64;uniqueIndex"`
	Price      decimal.Decimal `gorm:"type:decimal(20,4)"`
	Stock      int64
	Status     string `gorm:"size:20"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name
func (ProductModel) TableName() string { return "products" }

func (m *ProductModel) toDomain() ordering.Product {
	return ordering.Product{
		ID:         m.ID,
		AgentID:    m.AgentID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		SKU:        m.SKU,
		Price:      m.Price,
		Stock:      m.Stock,
		Status:     ordering.ProductStatus(m.Status),
	}
}

// CategoryModel is the GORM mapping for the categories table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:64;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (CategoryModel) TableName() string { return "categories" }

func (m *CategoryModel) toDomain() ordering.Category {
	return ordering.Category{ID: m.ID, Name: m.Name}
}

// PlatformSettingModel is the GORM mapping for the platform_settings
// key/value table.
type PlatformSettingModel struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"size:256"`
	UpdatedAt time.Time
}

// TableName overrides the table name
func (PlatformSettingModel) TableName() string { return "platform_settings" }
