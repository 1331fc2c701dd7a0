package queries_test

import (
	"testing"

	"agrikart/internal/core/application/usecases/queries"
	"agrikart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNearbyOrdersQuery_ValidCourierID_Success(t *testing.T) {
	courierID := kernel.NewUUID()

	query, err := queries.NewNearbyOrdersQuery(courierID)

	require.NoError(t, err)
	assert.Equal(t, courierID, query.CourierID())
	assert.NoError(t, query.Validate())
}

func TestNewNearbyOrdersQuery_ZeroCourierID_ReturnsError(t *testing.T) {
	_, err := queries.NewNearbyOrdersQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNearbyOrdersQuery_ZeroValue_FailsValidation(t *testing.T) {
	var query queries.NearbyOrdersQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrNearbyOrdersQueryIsNotConstructed)
}
