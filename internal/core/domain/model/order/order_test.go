package order_test

import (
	"strings"
	"testing"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T) []*order.LineItem {
	t.Helper()
	widget, err := order.NewLineItem(kernel.NewUUID(), "Widget", 2, mustMoney(t, "10.00"))
	require.NoError(t, err)
	gadget, err := order.NewLineItem(kernel.NewUUID(), "Gadget", 1, mustMoney(t, "5.50"))
	require.NoError(t, err)
	return []*order.LineItem{widget, gadget}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("should create pending order with derived total", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, makeItems(t), "leave at door", "1 Main St", "1 Main St")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "25.50", o.TotalAmount().String())
		assert.Equal(t, "leave at door", o.Notes())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "20.00", o.Items()[0].TotalPrice().String())
		assert.Equal(t, "5.50", o.Items()[1].TotalPrice().String())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should fail with empty item set", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, nil, "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid customer reference", func(t *testing.T) {
		var invalidCustomer kernel.UUID

		o, err := order.NewOrder(validID, invalidCustomer, makeItems(t), "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with overlong notes", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, makeItems(t), strings.Repeat("n", 501), "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "notes")
	})

	t.Run("should fail with overlong addresses", func(t *testing.T) {
		long := strings.Repeat("a", 1001)

		_, err := order.NewOrder(validID, customerID, makeItems(t), "", long, "")
		require.Error(t, err)

		_, err = order.NewOrder(validID, customerID, makeItems(t), "", "", long)
		require.Error(t, err)
	})

	t.Run("should fail with a not-constructed item in the set", func(t *testing.T) {
		items := makeItems(t)
		items = append(items, &order.LineItem{})

		o, err := order.NewOrder(validID, customerID, items, "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID, invalidCustomer kernel.UUID

		o, err := order.NewOrder(invalidID, invalidCustomer, nil, "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "order items")
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), "", "", "")
		require.NoError(t, err)
		return o
	}

	t.Run("replaces collection wholesale and recomputes total", func(t *testing.T) {
		o := newOrder(t)
		oldIDs := map[string]bool{}
		for _, item := range o.Items() {
			oldIDs[item.ID().String()] = true
		}

		replacement, err := order.NewLineItem(kernel.NewUUID(), "Widget", 3, mustMoney(t, "10.00"))
		require.NoError(t, err)

		require.NoError(t, o.ReplaceItems([]*order.LineItem{replacement}))

		require.Len(t, o.Items(), 1)
		assert.Equal(t, "30.00", o.TotalAmount().String())
		assert.False(t, oldIDs[o.Items()[0].ID().String()], "old item identifiers are not reused")
	})

	t.Run("refreshes updatedAt but not createdAt", func(t *testing.T) {
		o := newOrder(t)
		created := o.CreatedAt()
		time.Sleep(time.Millisecond)

		item, err := order.NewLineItem(kernel.NewUUID(), "Widget", 1, mustMoney(t, "1.00"))
		require.NoError(t, err)
		require.NoError(t, o.ReplaceItems([]*order.LineItem{item}))

		assert.Equal(t, created, o.CreatedAt())
		assert.True(t, o.UpdatedAt().After(created))
	})

	t.Run("rejects empty replacement and keeps current items", func(t *testing.T) {
		o := newOrder(t)

		err := o.ReplaceItems(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "25.50", o.TotalAmount().String())
	})

	t.Run("rejects invalid replacement item and keeps current items", func(t *testing.T) {
		o := newOrder(t)

		err := o.ReplaceItems([]*order.LineItem{{}})

		require.Error(t, err)
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "25.50", o.TotalAmount().String())
	})
}

func TestOrder_UpdateDetails(t *testing.T) {
	t.Run("assigns header fields without touching items or status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), "", "", "")
		require.NoError(t, err)
		newCustomer := kernel.NewUUID()

		require.NoError(t, o.UpdateDetails(newCustomer, "call first", "2 Side St", "3 Bill Rd"))

		assert.True(t, o.CustomerID().IsEqual(newCustomer))
		assert.Equal(t, "call first", o.Notes())
		assert.Equal(t, "2 Side St", o.ShippingAddress())
		assert.Equal(t, "3 Bill Rd", o.BillingAddress())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "25.50", o.TotalAmount().String())
	})

	t.Run("rejects overlong notes", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), "", "", "")
		require.NoError(t, err)

		err = o.UpdateDetails(o.CustomerID(), strings.Repeat("n", 501), "", "")

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("changes status without altering items or total", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), "", "", "")
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Confirmed))
		assert.Equal(t, order.Confirmed, o.Status())

		// Backwards transitions are allowed: the machine is unrestricted.
		require.NoError(t, o.ChangeStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())

		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "25.50", o.TotalAmount().String())
	})

	t.Run("same-status no-op succeeds", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), "", "", "")
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), "", "", "")
		require.NoError(t, err)

		err = o.ChangeStatus(order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores stored state but recomputes total from items", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder(
			id, customerID, order.Shipped, makeItems(t),
			"notes", "ship", "bill", createdAt, updatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		assert.Equal(t, "25.50", o.TotalAmount().String())
	})

	t.Run("rejects stored unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Unknown, makeItems(t),
			"", "", "", time.Now().UTC(), time.Now().UTC(),
		)

		require.Error(t, err)
	})

	t.Run("rejects empty stored item set", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Pending, nil,
			"", "", "", time.Now().UTC(), time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
