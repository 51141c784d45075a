package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityForAmount(t *testing.T) {
	t.Run("should derive priority from amount", func(t *testing.T) {
		testCases := []struct {
			amount   float64
			expected order.Priority
		}{
			{0, order.Low},
			{199.99, order.Low},
			{200, order.Low}, // boundary is strict
			{200.01, order.High},
			{250, order.High},
			{-50, order.Low},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("amount %v yields %s", tc.amount, tc.expected), func(t *testing.T) {
				assert.Equal(t, tc.expected, order.PriorityForAmount(tc.amount))
			})
		}
	})
}

func TestPriority_Validate(t *testing.T) {
	t.Run("should validate Low and High", func(t *testing.T) {
		require.NoError(t, order.Low.Validate())
		require.NoError(t, order.High.Validate())
	})

	t.Run("should reject PriorityUndefined", func(t *testing.T) {
		err := order.PriorityUndefined.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority is invalid")
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		require.Error(t, order.Priority(-1).Validate())
		require.Error(t, order.Priority(3).Validate())
	})
}

func TestPriority_String(t *testing.T) {
	t.Run("should return canonical string form", func(t *testing.T) {
		assert.Equal(t, "low", order.Low.String())
		assert.Equal(t, "high", order.High.String())
	})

	t.Run("should return undefined for invalid priorities", func(t *testing.T) {
		assert.Equal(t, "undefined", order.PriorityUndefined.String())
		assert.Equal(t, "undefined", order.Priority(42).String())
	})
}

func TestPriorityFromString(t *testing.T) {
	t.Run("should parse canonical strings", func(t *testing.T) {
		low, err := order.PriorityFromString("low")
		require.NoError(t, err)
		assert.Equal(t, order.Low, low)

		high, err := order.PriorityFromString("high")
		require.NoError(t, err)
		assert.Equal(t, order.High, high)
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, raw := range []string{"", "HIGH", "medium"} {
			parsed, err := order.PriorityFromString(raw)

			require.Error(t, err)
			assert.Equal(t, order.PriorityUndefined, parsed)
		}
	})
}
