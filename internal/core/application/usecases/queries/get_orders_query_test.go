package queries_test

import (
	"testing"

	"retailedge/internal/core/application/usecases/queries"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, query.CustomerID())
	assert.Nil(t, query.Status())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersQuery_WithFilters(t *testing.T) {
	customerID := kernel.NewUUID()
	status := order.Shipped
	query, err := queries.NewGetOrdersQuery(&customerID, &status)
	require.NoError(t, err)
	require.NotNil(t, query.CustomerID())
	assert.Equal(t, customerID, *query.CustomerID())
	require.NotNil(t, query.Status())
	assert.Equal(t, order.Shipped, *query.Status())
}

func TestNewGetOrdersQuery_InvalidStatusFilter(t *testing.T) {
	status := order.Unknown
	_, err := queries.NewGetOrdersQuery(nil, &status)
	require.Error(t, err)
}

func TestNewGetOrdersQuery_InvalidCustomerFilter(t *testing.T) {
	customerID := kernel.UUID{}
	_, err := queries.NewGetOrdersQuery(&customerID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
