package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/domain/ordering"
	domain "github.com/marketplace/backend/internal/domain/reporting"
)

const (
	topSellingLimit   = 5
	recentOrdersLimit = 5
	lowStockLimit     = 5
)

// DashboardService assembles the agent and admin dashboard payloads.
// Both views run through the same aggregation path; the scope decides
// which orders are visible and which extras the summary carries.
type DashboardService struct {
	orders   ordering.OrderRepository
	products ordering.ProductRepository
	settings ordering.SettingsRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	orders ordering.OrderRepository,
	products ordering.ProductRepository,
	settings ordering.SettingsRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		orders:   orders,
		products: products,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// GetSummary builds the dashboard summary for the scope. The period
// token narrows the headline totals; the low-stock list, best sellers
// and recent orders are always all-time. An unknown token is logged and
// summarized over the full history.
func (s *DashboardService) GetSummary(ctx context.Context, scope domain.Scope, periodToken string) (*DashboardSummary, error) {
	period, known := domain.ParsePeriod(periodToken)
	if !known {
		s.logger.Warn("unknown period token, summarizing full history",
			zap.String("period", periodToken))
	}

	orders, err := s.listOrders(ctx, scope)
	if err != nil {
		return nil, err
	}
	products, err := s.listProducts(ctx, scope)
	if err != nil {
		return nil, err
	}
	rate, err := s.settings.PlatformFeeRate(ctx)
	if err != nil {
		return nil, err
	}

	allTime := domain.FilterOrders(orders, scope, domain.TimeRange{})
	inPeriod := domain.FilterOrders(allTime, scope, period.Range(s.now()))
	totals := domain.Summarize(inPeriod)
	commission, net := domain.SplitCommission(totals.Revenue, rate)

	summary := &DashboardSummary{
		Period:             period.String(),
		TotalProducts:      int64(len(products)),
		TotalOrders:        totals.OrderCount,
		TotalRevenue:       money(totals.Revenue),
		AverageOrderValue:  money(totals.AverageOrderValue),
		LowStockProducts:   lowStockList(products),
		TopSellingProducts: topSellingList(allTime, products),
		RecentOrders:       recentOrderList(orders, scope),
	}
	if scope.Platform() {
		platformCommission := money(commission)
		agents := countActiveAgents(inPeriod)
		summary.PlatformCommission = &platformCommission
		summary.ActiveAgents = &agents
	} else {
		earnings := money(net)
		summary.NetEarnings = &earnings
	}
	return summary, nil
}

// GetRevenueChart builds the bucketed revenue chart for the scope. Any
// token that does not resolve to a bounded period falls back to the
// weekly grid; unknown tokens are logged.
func (s *DashboardService) GetRevenueChart(ctx context.Context, scope domain.Scope, periodToken string) (*RevenueChart, error) {
	period, known := domain.ParsePeriod(periodToken)
	if !known {
		s.logger.Warn("unknown period token, falling back to weekly chart",
			zap.String("period", periodToken))
		period = domain.PeriodWeek
	} else if !period.Bounded() {
		period = domain.PeriodWeek
	}

	orders, err := s.listOrders(ctx, scope)
	if err != nil {
		return nil, err
	}
	rate, err := s.settings.PlatformFeeRate(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	visible := domain.FilterOrders(orders, scope, period.Range(now))
	totals := domain.FillBuckets(period.Buckets(now), visible)

	chart := &RevenueChart{
		Period:     period.String(),
		Labels:     make([]string, 0, len(totals)),
		Revenue:    make([]float64, 0, len(totals)),
		Commission: make([]float64, 0, len(totals)),
		Earnings:   make([]float64, 0, len(totals)),
		Orders:     make([]int64, 0, len(totals)),
	}
	for _, bt := range totals {
		commission, net := domain.SplitCommission(bt.Revenue, rate)
		chart.Labels = append(chart.Labels, bt.Label)
		chart.Revenue = append(chart.Revenue, money(bt.Revenue))
		chart.Commission = append(chart.Commission, money(commission))
		chart.Earnings = append(chart.Earnings, money(net))
		chart.Orders = append(chart.Orders, bt.OrderCount)
	}
	return chart, nil
}

func (s *DashboardService) listOrders(ctx context.Context, scope domain.Scope) ([]ordering.Order, error) {
	if scope.Platform() {
		return s.orders.ListAll(ctx)
	}
	return s.orders.ListByAgent(ctx, scope.AgentID())
}

func (s *DashboardService) listProducts(ctx context.Context, scope domain.Scope) ([]ordering.Product, error) {
	if scope.Platform() {
		return s.products.ListAll(ctx)
	}
	return s.products.ListByAgent(ctx, scope.AgentID())
}

func lowStockList(products []ordering.Product) []LowStockProduct {
	low := make([]ordering.Product, 0, len(products))
	for i := range products {
		if products[i].LowStock() {
			low = append(low, products[i])
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].Stock != low[j].Stock {
			return low[i].Stock < low[j].Stock
		}
		return low[i].Name < low[j].Name
	})
	if len(low) > lowStockLimit {
		low = low[:lowStockLimit]
	}
	items := make([]LowStockProduct, 0, len(low))
	for i := range low {
		items = append(items, LowStockProduct{
			ID:          low[i].ID.String(),
			Name:        low[i].Name,
			SKU:         low[i].SKU,
			Stock:       low[i].Stock,
			StockStatus: string(low[i].StockStatus()),
		})
	}
	return items
}

type productSales struct {
	id      uuid.UUID
	name    string
	units   int64
	revenue decimal.Decimal
}

func topSellingList(orders []ordering.Order, products []ordering.Product) []TopProduct {
	names := make(map[uuid.UUID]string, len(products))
	for i := range products {
		names[products[i].ID] = products[i].Name
	}

	sales := make(map[uuid.UUID]*productSales)
	var totalUnits int64
	for i := range orders {
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			ps := sales[item.ProductID]
			if ps == nil {
				name, ok := names[item.ProductID]
				if !ok {
					// Delisted product: fall back to the name recorded
					// on the order line.
					name = item.ProductName
				}
				ps = &productSales{id: item.ProductID, name: name, revenue: decimal.Zero}
				sales[item.ProductID] = ps
			}
			ps.units += item.Quantity
			ps.revenue = ps.revenue.Add(item.TotalPrice)
			totalUnits += item.Quantity
		}
	}

	all := make([]*productSales, 0, len(sales))
	for _, ps := range sales {
		all = append(all, ps)
	}
	top := domain.TopN(all, topSellingLimit,
		func(ps *productSales) decimal.Decimal { return decimal.NewFromInt(ps.units) },
		func(ps *productSales) string { return ps.id.String() },
	)

	items := make([]TopProduct, 0, len(top))
	for _, ps := range top {
		items = append(items, TopProduct{
			ID:        ps.id.String(),
			Name:      ps.name,
			UnitsSold: ps.units,
			Revenue:   money(ps.revenue),
			Share:     domain.Percentage(decimal.NewFromInt(ps.units), decimal.NewFromInt(totalUnits)),
		})
	}
	return items
}

// recentOrderList keeps cancelled orders: the feed shows activity, not
// revenue.
func recentOrderList(orders []ordering.Order, scope domain.Scope) []RecentOrder {
	visible := make([]ordering.Order, 0, len(orders))
	for i := range orders {
		if scope.Matches(&orders[i]) {
			visible = append(visible, orders[i])
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		if !visible[i].PlacedAt.Equal(visible[j].PlacedAt) {
			return visible[i].PlacedAt.After(visible[j].PlacedAt)
		}
		return visible[i].ID.String() < visible[j].ID.String()
	})
	if len(visible) > recentOrdersLimit {
		visible = visible[:recentOrdersLimit]
	}
	items := make([]RecentOrder, 0, len(visible))
	for i := range visible {
		items = append(items, RecentOrder{
			ID:           visible[i].ID.String(),
			OrderNumber:  visible[i].OrderNumber,
			CustomerName: visible[i].CustomerName,
			Amount:       money(visible[i].GrandTotal),
			Status:       visible[i].Status.String(),
			PlacedAt:     visible[i].PlacedAt.UTC(),
		})
	}
	return items
}

func countActiveAgents(orders []ordering.Order) int64 {
	agents := make(map[uuid.UUID]struct{})
	for i := range orders {
		agents[orders[i].AgentID] = struct{}{}
	}
	return int64(len(agents))
}
