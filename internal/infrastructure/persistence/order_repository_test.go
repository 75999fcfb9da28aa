package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/backend/internal/domain/ordering"
)

func TestListByAgentMapsOrdersAndItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepository(db)

	agentID := uuid.New()
	orderID := uuid.New()
	productID := uuid.New()
	placedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	orderRows := sqlmock.NewRows([]string{
		"id", "order_number", "agent_id", "customer_name", "status",
		"payment_status", "grand_total", "placed_at", "created_at", "updated_at",
	}).AddRow(
		orderID.String(), "SO-1001", agentID.String(), "Alice", "completed",
		"paid", "150.5000", placedAt, placedAt, placedAt,
	)
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE agent_id = \$1`).
		WithArgs(agentID).
		WillReturnRows(orderRows)

	itemRows := sqlmock.NewRows([]string{
		"id", "order_id", "product_id", "product_name", "quantity", "unit_price", "total_price",
	}).AddRow(
		uuid.New().String(), orderID.String(), productID.String(), "Widget", 3, "50.1667", "150.5000",
	)
	mock.ExpectQuery(`SELECT \* FROM "order_items"`).
		WillReturnRows(itemRows)

	orders, err := repo.ListByAgent(context.Background(), agentID)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, orderID, o.ID)
	assert.Equal(t, "SO-1001", o.OrderNumber)
	assert.Equal(t, ordering.OrderStatusCompleted, o.Status)
	assert.Equal(t, ordering.PaymentStatusPaid, o.PaymentStatus)
	assert.Equal(t, "150.5", o.GrandTotal.String())
	require.Len(t, o.Items, 1)
	assert.Equal(t, productID, o.Items[0].ProductID)
	assert.Equal(t, int64(3), o.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	orders, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListByAgentQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepository(db)

	agentID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WillReturnError(assert.AnError)

	_, err := repo.ListByAgent(context.Background(), agentID)
	assert.Error(t, err)
}
