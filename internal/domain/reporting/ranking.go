package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopN returns the n highest items by metric, descending. Ties break by
// ascending ID so repeated runs over the same data rank identically.
// The input slice is not modified; fewer than n items returns them all.
func TopN[E any](items []E, n int, metric func(E) decimal.Decimal, id func(E) string) []E {
	ranked := make([]E, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		mi, mj := metric(ranked[i]), metric(ranked[j])
		if !mi.Equal(mj) {
			return mi.GreaterThan(mj)
		}
		return id(ranked[i]) < id(ranked[j])
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
