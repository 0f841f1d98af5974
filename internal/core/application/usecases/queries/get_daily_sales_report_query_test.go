package queries_test

import (
	"testing"
	"time"

	"resto/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDailySalesReportQuery_ValidInput(t *testing.T) {
	day := time.Date(2025, 3, 14, 19, 30, 0, 0, time.Local)
	q, err := queries.NewGetDailySalesReportQuery(day, 5)
	require.NoError(t, err)
	assert.Equal(t, day, q.Day())
	assert.Equal(t, 5, q.TopLimit())
	require.NoError(t, q.Validate())
}

func TestNewGetDailySalesReportQuery_ZeroDay(t *testing.T) {
	_, err := queries.NewGetDailySalesReportQuery(time.Time{}, 5)
	require.Error(t, err)
}

func TestNewGetDailySalesReportQuery_InvalidTopLimit(t *testing.T) {
	_, err := queries.NewGetDailySalesReportQuery(time.Now(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTopLimitIsInvalid)
}

func TestGetTableBoardQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetTableBoardQuery().Validate())

	q := queries.GetTableBoardQuery{}
	require.Error(t, q.Validate())
}
