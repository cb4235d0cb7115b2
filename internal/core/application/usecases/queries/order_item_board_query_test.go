package queries_test

import (
	"testing"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItemBoardQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewOrderItemBoardQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewOrderItemBoardQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewOrderItemBoardQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestOrderItemBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.OrderItemBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderItemBoardQueryIsNotConstructed)
}
