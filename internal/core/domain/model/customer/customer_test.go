package customer_test

import (
	"strings"
	"testing"
	"time"

	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid customer", func(t *testing.T) {
		dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

		c, err := customer.NewCustomer(validID, "Ada", "Lovelace", "ada@example.com", "+1555000", &dob, true)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Ada", c.FirstName())
		assert.Equal(t, "ada@example.com", c.Email())
		require.NotNil(t, c.DateOfBirth())
		assert.Equal(t, dob, *c.DateOfBirth())
		assert.True(t, c.IsActive())
	})

	t.Run("date of birth is optional", func(t *testing.T) {
		c, err := customer.NewCustomer(validID, "Ada", "Lovelace", "ada@example.com", "", nil, true)

		require.NoError(t, err)
		assert.Nil(t, c.DateOfBirth())
	})

	t.Run("should fail with missing names", func(t *testing.T) {
		_, err := customer.NewCustomer(validID, "", "Lovelace", "ada@example.com", "", nil, true)
		require.Error(t, err)

		_, err = customer.NewCustomer(validID, "Ada", "", "ada@example.com", "", nil, true)
		require.Error(t, err)
	})

	t.Run("should fail with missing email", func(t *testing.T) {
		_, err := customer.NewCustomer(validID, "Ada", "Lovelace", "", "", nil, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		for _, email := range []string{"not-an-email", "@example.com", "ada@", "ada lovelace@example.com"} {
			_, err := customer.NewCustomer(validID, "Ada", "Lovelace", email, "", nil, true)
			require.Error(t, err, email)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, email)
		}
	})

	t.Run("should fail with overlong phone number", func(t *testing.T) {
		_, err := customer.NewCustomer(validID, "Ada", "Lovelace", "ada@example.com", strings.Repeat("1", 21), nil, true)

		require.Error(t, err)
	})
}

func TestCustomer_UpdateDetails(t *testing.T) {
	t.Run("updates fields and refreshes updatedAt", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "", nil, true)
		require.NoError(t, err)
		created := c.CreatedAt()
		time.Sleep(time.Millisecond)

		require.NoError(t, c.UpdateDetails("Ada", "King", "ada.king@example.com", "+1555001", nil, false))

		assert.Equal(t, "King", c.LastName())
		assert.Equal(t, "ada.king@example.com", c.Email())
		assert.False(t, c.IsActive())
		assert.Equal(t, created, c.CreatedAt())
		assert.True(t, c.UpdatedAt().After(created))
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("keeps stored timestamps", func(t *testing.T) {
		createdAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		c, err := customer.RestoreCustomer(
			kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "", nil, true,
			createdAt, updatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, createdAt, c.CreatedAt())
		assert.Equal(t, updatedAt, c.UpdatedAt())
	})
}
