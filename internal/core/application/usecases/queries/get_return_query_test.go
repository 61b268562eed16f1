package queries_test

import (
	"testing"
	"time"

	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetReturnQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetReturnQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.ReturnID())
	assert.NoError(t, query.Validate())
}

func TestNewGetReturnQuery_InvalidReturnID(t *testing.T) {
	_, err := queries.NewGetReturnQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetReturnQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetReturnQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetReturnQueryIsNotConstructed)
}

func TestNewGetReturnBySwapQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetReturnBySwapQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.SwapID())
}

func TestNewGetReturnBySwapQuery_InvalidSwapID(t *testing.T) {
	_, err := queries.NewGetReturnBySwapQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetStaleReturnsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetStaleReturnsQuery(48 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, query.OlderThan())
}

func TestNewGetStaleReturnsQuery_NonPositiveAge(t *testing.T) {
	_, err := queries.NewGetStaleReturnsQuery(0)
	require.Error(t, err)

	_, err = queries.NewGetStaleReturnsQuery(-time.Hour)
	require.Error(t, err)
}
