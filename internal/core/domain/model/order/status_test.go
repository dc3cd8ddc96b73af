package order_test

import (
	"testing"

	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Confirmed,
		order.Processing,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
		order.Refunded,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("all defined statuses are valid", func(t *testing.T) {
		for _, s := range validStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range value is invalid", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("returns upper-case names", func(t *testing.T) {
		assert.Equal(t, "PENDING", order.Pending.String())
		assert.Equal(t, "CONFIRMED", order.Confirmed.String())
		assert.Equal(t, "PROCESSING", order.Processing.String())
		assert.Equal(t, "SHIPPED", order.Shipped.String())
		assert.Equal(t, "DELIVERED", order.Delivered.String())
		assert.Equal(t, "CANCELLED", order.Cancelled.String())
		assert.Equal(t, "REFUNDED", order.Refunded.String())
	})

	t.Run("invalid value prints as UNKNOWN", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses canonical names", func(t *testing.T) {
		for _, s := range validStatuses() {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		parsed, err := order.StatusFromString("confirmed")

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, parsed)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("ARCHIVED")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ChangeTo(t *testing.T) {
	t.Run("every pair of valid statuses is an allowed transition", func(t *testing.T) {
		for _, from := range validStatuses() {
			for _, to := range validStatuses() {
				next, err := from.ChangeTo(to)

				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("transition to unknown fails", func(t *testing.T) {
		_, err := order.Pending.ChangeTo(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
