package reporting

import (
	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/ordering"
)

// Scope restricts an aggregation to one agent's orders or widens it to
// the whole platform. The zero Scope matches nothing; use AgentScope or
// PlatformScope.
type Scope struct {
	agentID uuid.UUID
	all     bool
}

// AgentScope limits aggregation to orders belonging to one agent.
func AgentScope(agentID uuid.UUID) Scope {
	return Scope{agentID: agentID}
}

// PlatformScope covers all orders on the platform.
func PlatformScope() Scope {
	return Scope{all: true}
}

// Platform reports whether the scope spans the whole platform.
func (s Scope) Platform() bool {
	return s.all
}

// AgentID returns the agent the scope is limited to. Only meaningful when
// Platform() is false.
func (s Scope) AgentID() uuid.UUID {
	return s.agentID
}

// Matches reports whether the order is visible to the scope.
func (s Scope) Matches(o *ordering.Order) bool {
	return s.all || o.AgentID == s.agentID
}

// FilterOrders returns the orders visible to the scope inside the range.
// Cancelled orders are always dropped; they never contribute to any
// metric. Pass the zero TimeRange for full history.
func FilterOrders(orders []ordering.Order, scope Scope, rng TimeRange) []ordering.Order {
	filtered := make([]ordering.Order, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if !o.RevenueBearing() {
			continue
		}
		if !scope.Matches(o) {
			continue
		}
		if !rng.Contains(o.PlacedAt) {
			continue
		}
		filtered = append(filtered, orders[i])
	}
	return filtered
}
