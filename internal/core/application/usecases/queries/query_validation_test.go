package queries_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetAssignableTechniciansQuery_Valid(t *testing.T) {
	t.Run("without filters", func(t *testing.T) {
		query := queries.NewGetAssignableTechniciansQuery("", "")
		require.NoError(t, query.Validate())
		assert.Empty(t, query.Cluster())
		assert.Empty(t, query.Territory())
	})

	t.Run("with cluster filter", func(t *testing.T) {
		query := queries.NewGetAssignableTechniciansQuery("BDG-01", "")
		require.NoError(t, query.Validate())
		assert.Equal(t, "BDG-01", query.Cluster())
	})

	t.Run("with territory filter", func(t *testing.T) {
		query := queries.NewGetAssignableTechniciansQuery("", "40135")
		require.NoError(t, query.Validate())
		assert.Equal(t, "40135", query.Territory())
	})
}

func TestGetAssignableTechniciansQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAssignableTechniciansQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAssignableTechniciansQueryIsNotConstructed)
}

func TestNewGetTechnicianAnalyticsQuery(t *testing.T) {
	t.Run("valid technician id", func(t *testing.T) {
		technicianID := kernel.NewUUID()

		query, err := queries.NewGetTechnicianAnalyticsQuery(technicianID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, technicianID.IsEqual(query.TechnicianID()))
	})

	t.Run("zero technician id", func(t *testing.T) {
		_, err := queries.NewGetTechnicianAnalyticsQuery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetTechnicianAnalyticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTechnicianAnalyticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTechnicianAnalyticsQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, orderID.IsEqual(query.OrderID()))
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
