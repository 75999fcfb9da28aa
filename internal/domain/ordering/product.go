package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the listing state of a product.
type ProductStatus string

const (
	ProductStatusAvailable    ProductStatus = "available"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// IsValid checks if the product status is valid.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusOutOfStock, ProductStatusDiscontinued:
		return true
	}
	return false
}

// StockStatus is the derived stock label shown in report product rows.
type StockStatus string

const (
	StockStatusInStock      StockStatus = "IN_STOCK"
	StockStatusLowStock     StockStatus = "LOW_STOCK"
	StockStatusOutOfStock   StockStatus = "OUT_OF_STOCK"
	StockStatusDiscontinued StockStatus = "DISCONTINUED"
)

// LowStockThreshold is the stock level at or below which a product is
// flagged as low stock.
const LowStockThreshold = 10

// Product is a catalog entry owned by an agent.
type Product struct {
	ID         uuid.UUID
	AgentID    uuid.UUID
	CategoryID uuid.UUID
	Name       string
	SKU        string
	Price      decimal.Decimal
	Stock      int64
	Status     ProductStatus
}

// StockStatus derives the display label for the product's stock level.
// A discontinued listing wins over any stock count.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Status == ProductStatusDiscontinued:
		return StockStatusDiscontinued
	case p.Stock <= 0:
		return StockStatusOutOfStock
	case p.Stock <= LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// LowStock reports whether the product belongs on the low-stock warning
// list. Discontinued listings are excluded; they are not restockable.
func (p *Product) LowStock() bool {
	return p.Status != ProductStatusDiscontinued && p.Stock <= LowStockThreshold
}

// Category is a product dimension used for report breakdowns.
type Category struct {
	ID   uuid.UUID
	Name string
}
