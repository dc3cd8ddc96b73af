package queries_test

import (
	"testing"

	"retailedge/internal/core/application/usecases/queries"
	"retailedge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
