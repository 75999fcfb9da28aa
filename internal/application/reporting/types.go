// Package reporting assembles dashboard and report payloads from the
// domain aggregation engine. Monetary values cross the boundary as
// float64 rounded to cents; all computation upstream stays decimal.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"
)

// money converts a decimal amount to its JSON representation, rounded to
// cents at the boundary.
func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// LowStockProduct is one row of the dashboard restock warning list.
type LowStockProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Stock       int64  `json:"stock"`
	StockStatus string `json:"stock_status"`
}

// TopProduct is one row of the best-seller ranking.
type TopProduct struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitsSold int64   `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
	Share     float64 `json:"share"`
}

// RecentOrder is one row of the dashboard order feed. Unlike the revenue
// figures the feed keeps cancelled orders visible.
type RecentOrder struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	PlacedAt     time.Time `json:"placed_at"`
}

// DashboardSummary is the dashboard payload. NetEarnings is set for
// agent scope; PlatformCommission and ActiveAgents for platform scope.
type DashboardSummary struct {
	Period             string            `json:"period"`
	TotalProducts      int64             `json:"total_products"`
	TotalOrders        int64             `json:"total_orders"`
	TotalRevenue       float64           `json:"total_revenue"`
	AverageOrderValue  float64           `json:"average_order_value"`
	NetEarnings        *float64          `json:"net_earnings,omitempty"`
	PlatformCommission *float64          `json:"platform_commission,omitempty"`
	ActiveAgents       *int64            `json:"active_agents,omitempty"`
	LowStockProducts   []LowStockProduct `json:"low_stock_products"`
	TopSellingProducts []TopProduct      `json:"top_selling_products"`
	RecentOrders       []RecentOrder     `json:"recent_orders"`
}

// RevenueChart is the bucketed chart payload. All four series share the
// label axis; commission plus earnings reconciles with revenue per
// bucket up to cent rounding.
type RevenueChart struct {
	Period     string    `json:"period"`
	Labels     []string  `json:"labels"`
	Revenue    []float64 `json:"revenue"`
	Commission []float64 `json:"commission"`
	Earnings   []float64 `json:"earnings"`
	Orders     []int64   `json:"orders"`
}

// ReportTotals are the headline figures of a sales report.
type ReportTotals struct {
	Revenue           float64 `json:"revenue"`
	Orders            int64   `json:"orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	Commission        float64 `json:"commission"`
	Earnings          float64 `json:"earnings"`
}

// TrendPoint is one day of the report revenue trend.
type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// CategoryBreakdown is one slice of the report category split.
type CategoryBreakdown struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Orders     int64   `json:"orders"`
	Percentage float64 `json:"percentage"`
}

// RatingsDistribution is a placeholder: the marketplace does not collect
// product ratings yet, so every band is zero. It stays in the payload so
// clients can render the widget without a separate capability check.
type RatingsDistribution struct {
	FiveStar  int64 `json:"five_star"`
	FourStar  int64 `json:"four_star"`
	ThreeStar int64 `json:"three_star"`
	TwoStar   int64 `json:"two_star"`
	OneStar   int64 `json:"one_star"`
}

// AgentContribution is one row of the platform top-agent ranking.
type AgentContribution struct {
	AgentID string  `json:"agent_id"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
	Share   float64 `json:"share"`
}

// ProductSummaryRow is one row of the paginated product table.
type ProductSummaryRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	StockStatus string  `json:"stock_status"`
	UnitsSold   int64   `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
	Share       float64 `json:"share"`
}

// ProductSummaryPage is the paginated product table of a sales report.
type ProductSummaryPage struct {
	Items    []ProductSummaryRow `json:"items"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// SalesReport is the composite report payload. TopAgents is only
// populated for platform scope.
type SalesReport struct {
	From       string              `json:"from"`
	To         string              `json:"to"`
	Totals     ReportTotals        `json:"totals"`
	DailyTrend []TrendPoint        `json:"daily_trend"`
	Categories []CategoryBreakdown `json:"categories"`
	Ratings    RatingsDistribution `json:"ratings"`
	TopAgents  []AgentContribution `json:"top_agents,omitempty"`
	Products   ProductSummaryPage  `json:"products"`
}
