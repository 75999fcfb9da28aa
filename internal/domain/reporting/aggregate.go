package reporting

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/ordering"
)

// BucketTotal is a chart bucket with its aggregated figures.
type BucketTotal struct {
	Bucket
	Revenue    decimal.Decimal
	OrderCount int64
}

// FillBuckets distributes orders over the grid and sums revenue and
// order count per bucket. Every order lands in at most one bucket, so
// the bucket totals always sum to the totals of the orders that fall
// inside the grid.
func FillBuckets(buckets []Bucket, orders []ordering.Order) []BucketTotal {
	totals := make([]BucketTotal, len(buckets))
	for i, b := range buckets {
		totals[i] = BucketTotal{Bucket: b, Revenue: decimal.Zero}
	}
	for i := range orders {
		o := &orders[i]
		for j := range totals {
			if totals[j].Contains(o.PlacedAt) {
				totals[j].Revenue = totals[j].Revenue.Add(o.GrandTotal)
				totals[j].OrderCount++
				break
			}
		}
	}
	return totals
}

// Summary holds the headline figures for a set of orders.
type Summary struct {
	Revenue           decimal.Decimal
	OrderCount        int64
	AverageOrderValue decimal.Decimal
}

// Summarize computes revenue, order count and average order value.
// The average is zero when there are no orders, never a division error.
func Summarize(orders []ordering.Order) Summary {
	total := decimal.Zero
	for i := range orders {
		total = total.Add(orders[i].GrandTotal)
	}
	s := Summary{
		Revenue:           total,
		OrderCount:        int64(len(orders)),
		AverageOrderValue: decimal.Zero,
	}
	if s.OrderCount > 0 {
		s.AverageOrderValue = total.Div(decimal.NewFromInt(s.OrderCount)).Round(2)
	}
	return s
}

// SplitCommission divides gross revenue between the platform and the
// agent at the given fee rate. Both sides are rounded to cents
// independently, so their sum stays within one cent of the gross amount.
func SplitCommission(revenue, rate decimal.Decimal) (commission, net decimal.Decimal) {
	commission = revenue.Mul(rate).Round(2)
	net = revenue.Mul(decimal.NewFromInt(1).Sub(rate)).Round(2)
	return commission, net
}

// Percentage returns the share of part in total as a one-decimal percent.
// A zero total yields zero for every part.
func Percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return pct
}

// CategoryTotal is the per-category slice of a report breakdown.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Revenue      decimal.Decimal
	OrderCount   int64
	Percentage   float64
}

// ByCategory breaks order revenue down by product category. Revenue is
// attributed from recorded line totals; an order spanning several
// categories counts once toward each. Items whose product is no longer
// in the catalog are skipped. The result is sorted by revenue descending
// with category ID as tie-break.
func ByCategory(orders []ordering.Order, products []ordering.Product, categories []ordering.Category) []CategoryTotal {
	productCategory := make(map[uuid.UUID]uuid.UUID, len(products))
	for i := range products {
		productCategory[products[i].ID] = products[i].CategoryID
	}
	names := make(map[uuid.UUID]string, len(categories))
	for i := range categories {
		names[categories[i].ID] = categories[i].Name
	}

	type accumulator struct {
		revenue decimal.Decimal
		orders  map[uuid.UUID]struct{}
	}
	byCategory := make(map[uuid.UUID]*accumulator)
	for i := range orders {
		o := &orders[i]
		for j := range o.Items {
			item := &o.Items[j]
			categoryID, known := productCategory[item.ProductID]
			if !known {
				continue
			}
			acc := byCategory[categoryID]
			if acc == nil {
				acc = &accumulator{revenue: decimal.Zero, orders: make(map[uuid.UUID]struct{})}
				byCategory[categoryID] = acc
			}
			acc.revenue = acc.revenue.Add(item.TotalPrice)
			acc.orders[o.ID] = struct{}{}
		}
	}

	total := decimal.Zero
	for _, acc := range byCategory {
		total = total.Add(acc.revenue)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for categoryID, acc := range byCategory {
		totals = append(totals, CategoryTotal{
			CategoryID:   categoryID,
			CategoryName: names[categoryID],
			Revenue:      acc.revenue,
			OrderCount:   int64(len(acc.orders)),
			Percentage:   Percentage(acc.revenue, total),
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Revenue.Equal(totals[j].Revenue) {
			return totals[i].Revenue.GreaterThan(totals[j].Revenue)
		}
		return totals[i].CategoryID.String() < totals[j].CategoryID.String()
	})
	return totals
}
