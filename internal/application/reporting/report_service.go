package reporting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/domain/ordering"
	domain "github.com/marketplace/backend/internal/domain/reporting"
	"github.com/marketplace/backend/internal/domain/shared"
)

const (
	topAgentsLimit  = 10
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReportQuery carries the sales report parameters after HTTP binding.
type ReportQuery struct {
	From       time.Time
	To         time.Time
	CategoryID *uuid.UUID
	Page       int
	PageSize   int
}

// ReportService assembles the composite sales report.
type ReportService struct {
	orders     ordering.OrderRepository
	products   ordering.ProductRepository
	categories ordering.CategoryRepository
	settings   ordering.SettingsRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(
	orders ordering.OrderRepository,
	products ordering.ProductRepository,
	categories ordering.CategoryRepository,
	settings ordering.SettingsRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		orders:     orders,
		products:   products,
		categories: categories,
		settings:   settings,
		logger:     logger,
		now:        time.Now,
	}
}

// GetSalesReport builds the composite report over [From, To], both dates
// inclusive. An inverted range is a validation error; an empty result
// set is a zero-filled report, never an error. The category filter
// narrows the product table only.
func (s *ReportService) GetSalesReport(ctx context.Context, scope domain.Scope, q ReportQuery) (*SalesReport, error) {
	from := dayStart(q.From)
	to := dayStart(q.To)
	if to.Before(from) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "from date must not be after to date")
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	orders, err := s.listOrders(ctx, scope)
	if err != nil {
		return nil, err
	}
	products, err := s.listProducts(ctx, scope)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := s.settings.PlatformFeeRate(ctx)
	if err != nil {
		return nil, err
	}

	rng := domain.TimeRange{
		Start: from,
		End:   to.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
	visible := domain.FilterOrders(orders, scope, rng)
	totals := domain.Summarize(visible)
	commission, net := domain.SplitCommission(totals.Revenue, rate)

	// Every share percentage in the report divides by the same total the
	// category breakdown uses: recorded line revenue over catalog
	// products, whole scope, ignoring any category filter.
	shareTotal := knownItemRevenue(visible, products)

	report := &SalesReport{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		Totals: ReportTotals{
			Revenue:           money(totals.Revenue),
			Orders:            totals.OrderCount,
			AverageOrderValue: money(totals.AverageOrderValue),
			Commission:        money(commission),
			Earnings:          money(net),
		},
		DailyTrend: dailyTrend(from, to, visible),
		Categories: categoryBreakdown(visible, products, categories),
		Ratings:    RatingsDistribution{},
		Products:   productSummary(visible, products, categories, q.CategoryID, page, pageSize, shareTotal),
	}
	if scope.Platform() {
		report.TopAgents = topAgents(visible, shareTotal)
	}
	return report, nil
}

func (s *ReportService) listOrders(ctx context.Context, scope domain.Scope) ([]ordering.Order, error) {
	if scope.Platform() {
		return s.orders.ListAll(ctx)
	}
	return s.orders.ListByAgent(ctx, scope.AgentID())
}

func (s *ReportService) listProducts(ctx context.Context, scope domain.Scope) ([]ordering.Product, error) {
	if scope.Platform() {
		return s.products.ListAll(ctx)
	}
	return s.products.ListByAgent(ctx, scope.AgentID())
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dailyTrend is always daily over the exact requested range, regardless
// of how long the range is.
func dailyTrend(from, to time.Time, orders []ordering.Order) []TrendPoint {
	totals := domain.FillBuckets(domain.DailyBuckets(from, to), orders)
	points := make([]TrendPoint, 0, len(totals))
	for _, bt := range totals {
		points = append(points, TrendPoint{
			Date:    bt.Label,
			Revenue: money(bt.Revenue),
			Orders:  bt.OrderCount,
		})
	}
	return points
}

func categoryBreakdown(orders []ordering.Order, products []ordering.Product, categories []ordering.Category) []CategoryBreakdown {
	totals := domain.ByCategory(orders, products, categories)
	breakdown := make([]CategoryBreakdown, 0, len(totals))
	for _, ct := range totals {
		breakdown = append(breakdown, CategoryBreakdown{
			ID:         ct.CategoryID.String(),
			Name:       ct.CategoryName,
			Revenue:    money(ct.Revenue),
			Orders:     ct.OrderCount,
			Percentage: ct.Percentage,
		})
	}
	return breakdown
}

// knownItemRevenue sums recorded line totals over items whose product is
// still in the catalog, the same basis ByCategory aggregates on.
func knownItemRevenue(orders []ordering.Order, products []ordering.Product) decimal.Decimal {
	known := make(map[uuid.UUID]struct{}, len(products))
	for i := range products {
		known[products[i].ID] = struct{}{}
	}
	total := decimal.Zero
	for i := range orders {
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			if _, ok := known[item.ProductID]; !ok {
				continue
			}
			total = total.Add(item.TotalPrice)
		}
	}
	return total
}

func topAgents(orders []ordering.Order, shareTotal decimal.Decimal) []AgentContribution {
	type agentSales struct {
		id      uuid.UUID
		orders  int64
		revenue decimal.Decimal
	}
	byAgent := make(map[uuid.UUID]*agentSales)
	for i := range orders {
		o := &orders[i]
		as := byAgent[o.AgentID]
		if as == nil {
			as = &agentSales{id: o.AgentID, revenue: decimal.Zero}
			byAgent[o.AgentID] = as
		}
		as.orders++
		as.revenue = as.revenue.Add(o.GrandTotal)
	}

	all := make([]*agentSales, 0, len(byAgent))
	for _, as := range byAgent {
		all = append(all, as)
	}
	top := domain.TopN(all, topAgentsLimit,
		func(as *agentSales) decimal.Decimal { return as.revenue },
		func(as *agentSales) string { return as.id.String() },
	)

	contributions := make([]AgentContribution, 0, len(top))
	for _, as := range top {
		contributions = append(contributions, AgentContribution{
			AgentID: as.id.String(),
			Orders:  as.orders,
			Revenue: money(as.revenue),
			Share:   domain.Percentage(as.revenue, shareTotal),
		})
	}
	return contributions
}

// productSummary lists every catalog product in scope, including ones
// without sales in the range, sorted by revenue descending. Row shares
// divide by the report-wide shareTotal, so a category filter narrows the
// rows without inflating their shares.
func productSummary(orders []ordering.Order, products []ordering.Product, categories []ordering.Category, categoryID *uuid.UUID, page, pageSize int, shareTotal decimal.Decimal) ProductSummaryPage {
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for i := range categories {
		categoryNames[categories[i].ID] = categories[i].Name
	}

	type soldFigures struct {
		units   int64
		revenue decimal.Decimal
	}
	sold := make(map[uuid.UUID]*soldFigures)
	for i := range orders {
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			sf := sold[item.ProductID]
			if sf == nil {
				sf = &soldFigures{revenue: decimal.Zero}
				sold[item.ProductID] = sf
			}
			sf.units += item.Quantity
			sf.revenue = sf.revenue.Add(item.TotalPrice)
		}
	}

	type productRow struct {
		product *ordering.Product
		units   int64
		revenue decimal.Decimal
	}
	rows := make([]productRow, 0, len(products))
	for i := range products {
		p := &products[i]
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		row := productRow{product: p, revenue: decimal.Zero}
		if sf := sold[p.ID]; sf != nil {
			row.units = sf.units
			row.revenue = sf.revenue
		}
		rows = append(rows, row)
	}

	ranked := domain.TopN(rows, len(rows),
		func(r productRow) decimal.Decimal { return r.revenue },
		func(r productRow) string { return r.product.ID.String() },
	)

	pageItems := paginate(ranked, page, pageSize)
	items := make([]ProductSummaryRow, 0, len(pageItems))
	for _, r := range pageItems {
		items = append(items, ProductSummaryRow{
			ID:          r.product.ID.String(),
			Name:        r.product.Name,
			SKU:         r.product.SKU,
			Category:    categoryNames[r.product.CategoryID],
			Price:       money(r.product.Price),
			Stock:       r.product.Stock,
			StockStatus: string(r.product.StockStatus()),
			UnitsSold:   r.units,
			Revenue:     money(r.revenue),
			Share:       domain.Percentage(r.revenue, shareTotal),
		})
	}
	return ProductSummaryPage{
		Items:    items,
		Total:    int64(len(ranked)),
		Page:     page,
		PageSize: pageSize,
	}
}

func paginate[E any](items []E, page, pageSize int) []E {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
