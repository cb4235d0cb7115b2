package queries_test

import (
	"testing"

	"printshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderBoardQuery_Valid(t *testing.T) {
	query := queries.NewOrderBoardQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestOrderBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.OrderBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderBoardQueryIsNotConstructed)
}
