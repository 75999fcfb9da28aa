package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStockStatus(t *testing.T) {
	tests := []struct {
		name   string
		stock  int64
		status ProductStatus
		want   StockStatus
	}{
		{"plenty in stock", 50, ProductStatusAvailable, StockStatusInStock},
		{"just above threshold", 11, ProductStatusAvailable, StockStatusInStock},
		{"at threshold", 10, ProductStatusAvailable, StockStatusLowStock},
		{"low stock", 3, ProductStatusAvailable, StockStatusLowStock},
		{"zero stock", 0, ProductStatusAvailable, StockStatusOutOfStock},
		{"negative stock treated as out", -1, ProductStatusAvailable, StockStatusOutOfStock},
		{"discontinued wins over stock", 50, ProductStatusDiscontinued, StockStatusDiscontinued},
		{"discontinued wins over zero stock", 0, ProductStatusDiscontinued, StockStatusDiscontinued},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Stock: tt.stock, Status: tt.status}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}

func TestProductLowStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 10, Status: ProductStatusAvailable}).LowStock())
	assert.True(t, (&Product{Stock: 0, Status: ProductStatusOutOfStock}).LowStock())
	assert.False(t, (&Product{Stock: 11, Status: ProductStatusAvailable}).LowStock())
	assert.False(t, (&Product{Stock: 2, Status: ProductStatusDiscontinued}).LowStock())
}

func TestProductStatusIsValid(t *testing.T) {
	assert.True(t, ProductStatusAvailable.IsValid())
	assert.True(t, ProductStatusOutOfStock.IsValid())
	assert.True(t, ProductStatusDiscontinued.IsValid())
	assert.False(t, ProductStatus("archived").IsValid())
}
