package kernel_test

import (
	"testing"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid_amount", func(t *testing.T) {
		m, err := kernel.NewMoney(1500)

		require.NoError(t, err)
		assert.Equal(t, int64(1500), m.Amount())
	})

	t.Run("zero_amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("negative_amount_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromFloat(t *testing.T) {
	t.Run("floors_fractional_amounts", func(t *testing.T) {
		m := kernel.MoneyFromFloat(1499.99)

		assert.Equal(t, int64(1499), m.Amount())
	})

	t.Run("negative_clamps_to_zero", func(t *testing.T) {
		m := kernel.MoneyFromFloat(-250.5)

		assert.True(t, m.IsZero())
	})

	t.Run("exact_integer_unchanged", func(t *testing.T) {
		m := kernel.MoneyFromFloat(200)

		assert.Equal(t, int64(200), m.Amount())
	})
}

func TestMoney_SubtractFloored(t *testing.T) {
	t.Run("normal_subtraction", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000)
		b, _ := kernel.NewMoney(300)

		assert.Equal(t, int64(700), a.SubtractFloored(b).Amount())
	})

	t.Run("never_below_zero", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(300)

		assert.True(t, a.SubtractFloored(b).IsZero())
	})

	t.Run("equal_amounts_yield_zero", func(t *testing.T) {
		a, _ := kernel.NewMoney(300)
		b, _ := kernel.NewMoney(300)

		assert.True(t, a.SubtractFloored(b).IsZero())
	})
}
