// Package ordering holds the marketplace order and catalog model the
// reporting engine reads. The engine never mutates these entities; write
// paths live in the upstream order system.
package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the order status is valid.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the payment status is valid.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// OrderItem is one line of an order. UnitPrice and TotalPrice are the
// amounts recorded at purchase time; they are never recomputed from the
// current product price.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Order is a placed marketplace order.
type Order struct {
	ID            uuid.UUID
	OrderNumber   string
	AgentID       uuid.UUID
	CustomerName  string
	Status        OrderStatus
	PaymentStatus PaymentStatus
	GrandTotal    decimal.Decimal
	PlacedAt      time.Time
	Items         []OrderItem
}

// RevenueBearing reports whether the order counts toward any revenue
// figure. A cancelled order never does, regardless of payment state.
func (o *Order) RevenueBearing() bool {
	return o.Status != OrderStatusCancelled
}

// UnitsSold returns the total item quantity across all lines.
func (o *Order) UnitsSold() int64 {
	var units int64
	for _, item := range o.Items {
		units += item.Quantity
	}
	return units
}
