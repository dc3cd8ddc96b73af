package kernel_test

import (
	"testing"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.50"))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should fail on negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-0.01 is negative")
	})

	t.Run("should apply banker's rounding at two fractional digits", func(t *testing.T) {
		half := kernel.ZeroMoney()

		m1, err := kernel.NewMoney(decimal.RequireFromString("2.345"))
		require.NoError(t, err)
		assert.Equal(t, "2.34", m1.String(), "tie rounds to even")

		m2, err := kernel.NewMoney(decimal.RequireFromString("2.355"))
		require.NoError(t, err)
		assert.Equal(t, "2.36", m2.String(), "tie rounds to even")

		assert.Equal(t, "0.00", half.String())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("25.50")

		require.NoError(t, err)
		assert.Equal(t, "25.50", m.String())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten dollars")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on negative string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-5.00")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts exactly", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("20.00")
		b, _ := kernel.MoneyFromString("5.50")

		sum := a.Add(b)

		assert.Equal(t, "25.50", sum.String())
	})

	t.Run("MulInt multiplies by quantity exactly", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("10.00")

		total := price.MulInt(3)

		assert.Equal(t, "30.00", total.String())
	})

	t.Run("fold over ZeroMoney identity", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("0.10")

		total := kernel.ZeroMoney()
		for range 3 {
			total = total.Add(a)
		}

		assert.Equal(t, "0.30", total.String())
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})

	t.Run("IsEqual compares amounts", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("5.50")
		b, _ := kernel.MoneyFromString("5.5")

		assert.True(t, a.IsEqual(b))
	})
}
