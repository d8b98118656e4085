package commands_test

import (
	"testing"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommand_Validation(t *testing.T) {
	actor := dispatcherActor(t)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "Budi Santoso", "+62-812-0000-1111", "Jl. Merdeka 1",
			"Fiber 100Mbps", "BDG-01", "STO-KOPO", order.PriorityHigh, actor,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.PriorityHigh, cmd.Priority())
	})

	t.Run("missing_fields_are_aggregated", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "", "", "",
			"", "", "", order.PriorityNormal, actor,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrServicePackageIsRequired)
		require.ErrorIs(t, err, commands.ErrClusterIsRequired)
		require.ErrorIs(t, err, commands.ErrSTOIsRequired)
	})

	t.Run("zero_value_fails_guard", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateTechnicianCommand_Validation(t *testing.T) {
	days := []time.Weekday{time.Monday, time.Tuesday}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateTechnicianCommand(
			kernel.NewUUID(), kernel.NewUUID(), "EMP-7", "Teknisi", "BDG-01",
			[]string{"fiber-splicing"}, []string{"40181"},
			"08:00", "17:00", days,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "08:00", cmd.WorkingHours().Start())
	})

	t.Run("bad_working_hours_rejected", func(t *testing.T) {
		_, err := commands.NewCreateTechnicianCommand(
			kernel.NewUUID(), kernel.NewUUID(), "EMP-7", "Teknisi", "BDG-01",
			nil, nil, "8:00", "17:00", days,
		)
		require.Error(t, err)
	})

	t.Run("blank_profile_rejected", func(t *testing.T) {
		_, err := commands.NewCreateTechnicianCommand(
			kernel.NewUUID(), kernel.NewUUID(), " ", " ", " ",
			nil, nil, "08:00", "17:00", days,
		)
		require.ErrorIs(t, err, commands.ErrEmployeeIDIsRequired)
		require.ErrorIs(t, err, commands.ErrTechnicianNameIsRequired)
		require.ErrorIs(t, err, commands.ErrTechnicianClusterIsRequired)
	})
}

func TestReassignTechnicianCommand_Validation(t *testing.T) {
	t.Run("reason_is_mandatory", func(t *testing.T) {
		_, err := commands.NewReassignTechnicianCommand(
			kernel.NewUUID(), kernel.NewUUID(), dispatcherActor(t), "  ",
		)
		require.ErrorIs(t, err, commands.ErrReassignReasonIsRequired)
	})

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewReassignTechnicianCommand(
			kernel.NewUUID(), kernel.NewUUID(), dispatcherActor(t), "no response",
		)
		require.NoError(t, err)
		assert.Equal(t, "no response", cmd.Reason())
	})
}

func TestCancelOrderCommand_Validation(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), dispatcherActor(t), "")
	require.ErrorIs(t, err, commands.ErrCancelReasonIsRequired)

	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), dispatcherActor(t), "duplicate")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestDispatchPendingOrderCommand_Validation(t *testing.T) {
	cmd := commands.NewDispatchPendingOrderCommand()
	require.NoError(t, cmd.Validate())

	var zero commands.DispatchPendingOrderCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrDispatchPendingOrderCommandIsNotConstructed)
}
