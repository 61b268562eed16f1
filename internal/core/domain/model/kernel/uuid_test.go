package kernel_test

import (
	"testing"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.NotEmpty(t, id.String())
}

func TestNewUUID_Unique(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	assert.False(t, first.IsEqual(second))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid_uuid_string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid_uuid_string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong_length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})

	t.Run("nil_uuid_rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_Validate_ZeroValue(t *testing.T) {
	var id kernel.UUID

	err := id.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
}
