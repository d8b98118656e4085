package commands_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/technician"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func dispatcherActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDispatcher)
	require.NoError(t, err)
	return actor
}

func technicianActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleTechnician)
	require.NoError(t, err)
	return actor
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Budi Santoso", "+62-812-0000-1111", "Jl. Merdeka 1, Bandung")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), 1, customer,
		"Fiber 100Mbps", "BDG-01", "STO-KOPO", order.PriorityNormal,
		dispatcherActor(t), fixtureTime,
	)
	require.NoError(t, err)
	return o
}

// alwaysOnTechnician is available around the clock so handler tests that use
// the real wall clock stay deterministic.
func alwaysOnTechnician(t *testing.T) *technician.Technician {
	t.Helper()
	wh, err := technician.NewWorkingHours("00:00", "23:59", []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	})
	require.NoError(t, err)

	tech, err := technician.NewTechnician(
		kernel.NewUUID(), kernel.NewUUID(), "EMP-0042", "Teknisi Satu", "BDG-01",
		nil, nil, wh,
	)
	require.NoError(t, err)
	return tech
}

func orderAssignedTo(t *testing.T, tech *technician.Technician) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.Assign(tech.ID(), tech.Name(), tech.Cluster(), dispatcherActor(t), fixtureTime, ""))
	return o
}

func orderInInstallation(t *testing.T, tech *technician.Technician) *order.Order {
	t.Helper()
	o := orderAssignedTo(t, tech)
	actor := technicianActor(t, tech.ID())
	require.NoError(t, o.Accept(actor, fixtureTime.Add(time.Minute), "", nil))
	require.NoError(t, o.Advance(order.StatusSurvey, actor, fixtureTime.Add(2*time.Minute), nil, nil, "", nil))
	require.NoError(t, o.Advance(order.StatusInstallation, actor, fixtureTime.Add(3*time.Minute), nil, nil, "", nil))
	return o
}
