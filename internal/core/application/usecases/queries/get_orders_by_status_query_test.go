package queries_test

import (
	"testing"

	"resto/internal/core/application/usecases/queries"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery_ValidInput(t *testing.T) {
	q, err := queries.NewGetOrdersByStatusQuery(order.InPreparation)
	require.NoError(t, err)
	assert.Equal(t, order.InPreparation, q.Status())
	require.NoError(t, q.Validate())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersByStatusQuery_Validate_NotConstructed(t *testing.T) {
	q := queries.GetOrdersByStatusQuery{}
	err := q.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
