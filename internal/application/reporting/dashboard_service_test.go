package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/domain/ordering"
	domain "github.com/marketplace/backend/internal/domain/reporting"
)

// 2025-03-12 is a Wednesday; the surrounding week runs 03-10 to 03-16.
var testNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

var defaultFeeRate = decimal.RequireFromString("0.05")

func fixedClock() time.Time { return testNow }

func makeOrder(agentID uuid.UUID, number, total string, placedAt time.Time, status ordering.OrderStatus, items ...ordering.OrderItem) ordering.Order {
	return ordering.Order{
		ID:          uuid.New(),
		OrderNumber: number,
		AgentID:     agentID,
		Status:      status,
		GrandTotal:  decimal.RequireFromString(total),
		PlacedAt:    placedAt,
		Items:       items,
	}
}

func newDashboardFixture(t *testing.T) (*DashboardService, *mockOrderRepository, *mockProductRepository, *mockSettingsRepository) {
	t.Helper()
	orders := new(mockOrderRepository)
	products := new(mockProductRepository)
	settings := new(mockSettingsRepository)
	svc := NewDashboardService(orders, products, settings, zap.NewNop())
	svc.now = fixedClock
	return svc, orders, products, settings
}

func TestGetSummaryAgentScope(t *testing.T) {
	svc, orderRepo, productRepo, settingsRepo := newDashboardFixture(t)
	agentID := uuid.New()

	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	orders := []ordering.Order{
		makeOrder(agentID, "SO-1", "100.00", monday, ordering.OrderStatusCompleted),
		makeOrder(agentID, "SO-2", "200.00", monday.AddDate(0, 0, 1), ordering.OrderStatusPaid),
		makeOrder(agentID, "SO-3", "999.00", monday, ordering.OrderStatusCancelled),
		makeOrder(agentID, "SO-4", "50.00", lastMonth, ordering.OrderStatusCompleted),
	}
	products := []ordering.Product{
		{ID: uuid.New(), AgentID: agentID, Name: "Widget", Stock: 3, Status: ordering.ProductStatusAvailable},
		{ID: uuid.New(), AgentID: agentID, Name: "Gadget", Stock: 50, Status: ordering.ProductStatusAvailable},
	}

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return(orders, nil)
	productRepo.On("ListByAgent", mock.Anything, agentID).Return(products, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	summary, err := svc.GetSummary(context.Background(), domain.AgentScope(agentID), "week")
	require.NoError(t, err)

	assert.Equal(t, "week", summary.Period)
	assert.Equal(t, int64(2), summary.TotalProducts)
	// Cancelled and out-of-week orders do not count.
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, 300.0, summary.TotalRevenue)
	assert.Equal(t, 150.0, summary.AverageOrderValue)

	require.NotNil(t, summary.NetEarnings)
	assert.Equal(t, 285.0, *summary.NetEarnings)
	assert.Nil(t, summary.PlatformCommission)
	assert.Nil(t, summary.ActiveAgents)

	require.Len(t, summary.LowStockProducts, 1)
	assert.Equal(t, "Widget", summary.LowStockProducts[0].Name)
	assert.Equal(t, "LOW_STOCK", summary.LowStockProducts[0].StockStatus)

	// The feed is all-time and keeps the cancelled order.
	require.Len(t, summary.RecentOrders, 4)
	assert.Equal(t, "SO-2", summary.RecentOrders[0].OrderNumber)
	assert.Equal(t, "SO-4", summary.RecentOrders[3].OrderNumber)
}

func TestGetSummaryPlatformScope(t *testing.T) {
	svc, orderRepo, productRepo, settingsRepo := newDashboardFixture(t)
	agentA := uuid.New()
	agentB := uuid.New()

	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	orders := []ordering.Order{
		makeOrder(agentA, "SO-1", "600.00", monday, ordering.OrderStatusCompleted),
		makeOrder(agentB, "SO-2", "400.00", monday, ordering.OrderStatusCompleted),
	}

	orderRepo.On("ListAll", mock.Anything).Return(orders, nil)
	productRepo.On("ListAll", mock.Anything).Return([]ordering.Product{}, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	summary, err := svc.GetSummary(context.Background(), domain.PlatformScope(), "week")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, summary.TotalRevenue)
	require.NotNil(t, summary.PlatformCommission)
	assert.Equal(t, 50.0, *summary.PlatformCommission)
	require.NotNil(t, summary.ActiveAgents)
	assert.Equal(t, int64(2), *summary.ActiveAgents)
	assert.Nil(t, summary.NetEarnings)
}

func TestGetSummaryUnknownPeriodUsesFullHistory(t *testing.T) {
	svc, orderRepo, productRepo, settingsRepo := newDashboardFixture(t)
	agentID := uuid.New()

	ancient := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []ordering.Order{
		makeOrder(agentID, "SO-1", "10.00", ancient, ordering.OrderStatusCompleted),
	}

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return(orders, nil)
	productRepo.On("ListByAgent", mock.Anything, agentID).Return([]ordering.Product{}, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	summary, err := svc.GetSummary(context.Background(), domain.AgentScope(agentID), "quarterly")
	require.NoError(t, err)

	assert.Equal(t, "all", summary.Period)
	assert.Equal(t, int64(1), summary.TotalOrders)
	assert.Equal(t, 10.0, summary.TotalRevenue)
}

func TestGetSummaryNoOrders(t *testing.T) {
	svc, orderRepo, productRepo, settingsRepo := newDashboardFixture(t)
	agentID := uuid.New()

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return([]ordering.Order{}, nil)
	productRepo.On("ListByAgent", mock.Anything, agentID).Return([]ordering.Product{}, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	summary, err := svc.GetSummary(context.Background(), domain.AgentScope(agentID), "day")
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AverageOrderValue, "empty data must not be an error")
	assert.Empty(t, summary.RecentOrders)
	assert.Empty(t, summary.TopSellingProducts)
}

func TestGetSummaryTopSellingByUnits(t *testing.T) {
	svc, orderRepo, productRepo, settingsRepo := newDashboardFixture(t)
	agentID := uuid.New()

	widget := ordering.Product{ID: uuid.New(), AgentID: agentID, Name: "Widget", Stock: 100, Status: ordering.ProductStatusAvailable}
	gadget := ordering.Product{ID: uuid.New(), AgentID: agentID, Name: "Gadget", Stock: 100, Status: ordering.ProductStatusAvailable}

	item := func(p ordering.Product, qty int64, total string) ordering.OrderItem {
		return ordering.OrderItem{
			ID:         uuid.New(),
			ProductID:  p.ID,
			Quantity:   qty,
			TotalPrice: decimal.RequireFromString(total),
		}
	}
	orders := []ordering.Order{
		makeOrder(agentID, "SO-1", "100.00", testNow, ordering.OrderStatusCompleted,
			item(widget, 3, "60.00"), item(gadget, 1, "40.00")),
		makeOrder(agentID, "SO-2", "40.00", testNow, ordering.OrderStatusCompleted,
			item(widget, 2, "40.00")),
	}

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return(orders, nil)
	productRepo.On("ListByAgent", mock.Anything, agentID).Return([]ordering.Product{widget, gadget}, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	summary, err := svc.GetSummary(context.Background(), domain.AgentScope(agentID), "")
	require.NoError(t, err)

	require.Len(t, summary.TopSellingProducts, 2)
	assert.Equal(t, "Widget", summary.TopSellingProducts[0].Name)
	assert.Equal(t, int64(5), summary.TopSellingProducts[0].UnitsSold)
	assert.Equal(t, 100.0, summary.TopSellingProducts[0].Revenue)
	assert.Equal(t, 83.3, summary.TopSellingProducts[0].Share)
	assert.Equal(t, "Gadget", summary.TopSellingProducts[1].Name)
	assert.Equal(t, 16.7, summary.TopSellingProducts[1].Share)
}

func TestGetSummaryRepositoryError(t *testing.T) {
	svc, orderRepo, _, _ := newDashboardFixture(t)
	agentID := uuid.New()

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return(nil, errors.New("db down"))

	_, err := svc.GetSummary(context.Background(), domain.AgentScope(agentID), "week")
	assert.Error(t, err)
}

func TestGetRevenueChartWeekly(t *testing.T) {
	svc, orderRepo, _, settingsRepo := newDashboardFixture(t)
	agentID := uuid.New()

	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	orders := []ordering.Order{
		makeOrder(agentID, "SO-1", "100.00", monday, ordering.OrderStatusCompleted),
		makeOrder(agentID, "SO-2", "200.00", monday.AddDate(0, 0, 1), ordering.OrderStatusCompleted),
		makeOrder(agentID, "SO-3", "300.00", monday.AddDate(0, 0, 2), ordering.OrderStatusCompleted),
		makeOrder(agentID, "SO-4", "999.00", monday, ordering.OrderStatusCancelled),
	}

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return(orders, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	chart, err := svc.GetRevenueChart(context.Background(), domain.AgentScope(agentID), "week")
	require.NoError(t, err)

	assert.Equal(t, "week", chart.Period)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, chart.Labels)
	assert.Equal(t, []float64{100, 200, 300, 0, 0, 0, 0}, chart.Revenue)
	assert.Equal(t, []int64{1, 1, 1, 0, 0, 0, 0}, chart.Orders)

	// Commission and earnings reconcile with revenue per bucket.
	for i := range chart.Revenue {
		assert.InDelta(t, chart.Revenue[i], chart.Commission[i]+chart.Earnings[i], 0.01,
			"bucket %s", chart.Labels[i])
	}
	assert.Equal(t, 5.0, chart.Commission[0])
	assert.Equal(t, 95.0, chart.Earnings[0])
}

func TestGetRevenueChartUnknownPeriodFallsBackToWeek(t *testing.T) {
	svc, orderRepo, _, settingsRepo := newDashboardFixture(t)
	agentID := uuid.New()

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return([]ordering.Order{}, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	chart, err := svc.GetRevenueChart(context.Background(), domain.AgentScope(agentID), "fortnight")
	require.NoError(t, err)

	assert.Equal(t, "week", chart.Period)
	assert.Len(t, chart.Labels, 7)
}

func TestGetRevenueChartAllTimeFallsBackToWeek(t *testing.T) {
	svc, orderRepo, _, settingsRepo := newDashboardFixture(t)

	orderRepo.On("ListAll", mock.Anything).Return([]ordering.Order{}, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	// The all-time period has no grid, so the chart uses the weekly one.
	chart, err := svc.GetRevenueChart(context.Background(), domain.PlatformScope(), "")
	require.NoError(t, err)
	assert.Equal(t, "week", chart.Period)
	assert.Len(t, chart.Labels, 7)
}

func TestGetRevenueChartDailyGrid(t *testing.T) {
	svc, orderRepo, _, settingsRepo := newDashboardFixture(t)
	agentID := uuid.New()

	orderRepo.On("ListByAgent", mock.Anything, agentID).Return([]ordering.Order{}, nil)
	settingsRepo.On("PlatformFeeRate", mock.Anything).Return(defaultFeeRate, nil)

	chart, err := svc.GetRevenueChart(context.Background(), domain.AgentScope(agentID), "day")
	require.NoError(t, err)

	require.Len(t, chart.Labels, 24)
	assert.Equal(t, "00:00", chart.Labels[0])
	assert.Equal(t, "23:00", chart.Labels[23])
}
