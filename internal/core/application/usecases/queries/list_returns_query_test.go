package queries_test

import (
	"testing"

	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListReturnsQuery_Defaults(t *testing.T) {
	query, err := queries.NewListReturnsQuery(nil, nil, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, query.OrderID())
	assert.Nil(t, query.Status())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 50, query.PageSize())
}

func TestNewListReturnsQuery_Filters(t *testing.T) {
	orderID := kernel.NewUUID()
	status := "requires_action"

	query, err := queries.NewListReturnsQuery(&orderID, &status, 3, 20)
	require.NoError(t, err)
	require.NotNil(t, query.OrderID())
	assert.Equal(t, orderID, *query.OrderID())
	require.NotNil(t, query.Status())
	assert.Equal(t, orderreturn.RequiresAction, *query.Status())
	assert.Equal(t, 3, query.Page())
	assert.Equal(t, 20, query.PageSize())
}

func TestNewListReturnsQuery_UnknownStatus(t *testing.T) {
	status := "shipped"
	_, err := queries.NewListReturnsQuery(nil, &status, 0, 0)
	require.Error(t, err)
}

func TestNewListReturnsQuery_NegativePage(t *testing.T) {
	_, err := queries.NewListReturnsQuery(nil, nil, -1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewListReturnsQuery_PageSizeCapped(t *testing.T) {
	query, err := queries.NewListReturnsQuery(nil, nil, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, 200, query.PageSize())
}

func TestListReturnsQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.ListReturnsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListReturnsQueryIsNotConstructed)
}
