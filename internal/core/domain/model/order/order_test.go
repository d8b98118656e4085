package order_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Budi Santoso", "+62-812-0000-1111", "Jl. Merdeka 1, Bandung")
	require.NoError(t, err)
	return customer
}

func newTestActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	dispatcher := newTestActor(t, kernel.RoleDispatcher)
	o, err := order.NewOrder(
		kernel.NewUUID(), 1, newTestCustomer(t),
		"Fiber 100Mbps", "BDG-01", "STO-KOPO", order.PriorityNormal,
		dispatcher, testTime,
	)
	require.NoError(t, err)
	return o
}

// assignedOrder creates an order assigned to a fresh technician actor and
// returns both.
func assignedOrder(t *testing.T) (*order.Order, kernel.Actor) {
	t.Helper()
	o := newPendingOrder(t)
	dispatcher := newTestActor(t, kernel.RoleDispatcher)
	tech := newTestActor(t, kernel.RoleTechnician)
	require.NoError(t, o.Assign(tech.ID(), "Teknisi Satu", "BDG-01", dispatcher, testTime.Add(time.Minute), "dispatching"))
	return o, tech
}

// acceptedOrder advances an assigned order through acceptance.
func acceptedOrder(t *testing.T) (*order.Order, kernel.Actor) {
	t.Helper()
	o, tech := assignedOrder(t)
	require.NoError(t, o.Accept(tech, testTime.Add(2*time.Minute), "on my way", nil))
	return o, tech
}

// installationOrder advances an order to the Installation stage.
func installationOrder(t *testing.T) (*order.Order, kernel.Actor) {
	t.Helper()
	o, tech := acceptedOrder(t)
	require.NoError(t, o.Advance(order.StatusSurvey, tech, testTime.Add(3*time.Minute), nil, nil, "", nil))
	require.NoError(t, o.Advance(order.StatusInstallation, tech, testTime.Add(4*time.Minute), nil, nil, "", nil))
	return o, tech
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending_with_initial_history", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Assignment())
		assert.Equal(t, int64(1), o.SequenceNumber())
		assert.Equal(t, order.TechnicianStatusPending, o.TechnicianStatus())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.StatusPending, history[0].Status())
		assert.Equal(t, testTime, history[0].Timestamp())
	})

	t.Run("rejects_invalid_sequence_number", func(t *testing.T) {
		dispatcher := newTestActor(t, kernel.RoleDispatcher)
		_, err := order.NewOrder(
			kernel.NewUUID(), 0, newTestCustomer(t),
			"Fiber 100Mbps", "BDG-01", "STO-KOPO", order.PriorityNormal,
			dispatcher, testTime,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_service_package", func(t *testing.T) {
		dispatcher := newTestActor(t, kernel.RoleDispatcher)
		_, err := order.NewOrder(
			kernel.NewUUID(), 1, newTestCustomer(t),
			"  ", "BDG-01", "STO-KOPO", order.PriorityNormal,
			dispatcher, testTime,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("validate_rejects_zero_value", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("moves_pending_order_to_assigned", func(t *testing.T) {
		o := newPendingOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)
		techID := kernel.NewUUID()

		err := o.Assign(techID, "Teknisi Satu", "BDG-01", dispatcher, testTime.Add(time.Minute), "first visit")

		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.Assignment())
		assert.True(t, o.Assignment().TechnicianID().IsEqual(techID))
		assert.Nil(t, o.Assignment().AcceptedAt())

		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.StatusAssigned, history[1].Status())
		assert.Equal(t, "first visit", history[1].Notes())
	})

	t.Run("technician_role_cannot_assign", func(t *testing.T) {
		o := newPendingOrder(t)
		tech := newTestActor(t, kernel.RoleTechnician)

		err := o.Assign(kernel.NewUUID(), "T", "BDG-01", tech, testTime, "")

		require.ErrorIs(t, err, errs.ErrActorForbidden)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.History(), 1)
	})

	t.Run("assigning_twice_is_invalid_transition", func(t *testing.T) {
		o, _ := assignedOrder(t)
		dispatcher := newTestActor(t, kernel.RoleAdmin)

		err := o.Assign(kernel.NewUUID(), "T2", "BDG-01", dispatcher, testTime, "")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("assigned_technician_accepts", func(t *testing.T) {
		o, tech := assignedOrder(t)
		acceptedAt := testTime.Add(5 * time.Minute)
		geo, err := kernel.NewGeolocation(-6.914744, 107.609810, 8)
		require.NoError(t, err)

		err = o.Accept(tech, acceptedAt, "arriving", &geo)

		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, o.Status())
		require.NotNil(t, o.Assignment().AcceptedAt())
		assert.Equal(t, acceptedAt, *o.Assignment().AcceptedAt())

		history := o.History()
		require.Len(t, history, 3)
		require.NotNil(t, history[2].Geolocation())
		assert.InDelta(t, -6.914744, history[2].Geolocation().Latitude(), 1e-9)
	})

	t.Run("other_technician_is_forbidden", func(t *testing.T) {
		o, _ := assignedOrder(t)
		intruder := newTestActor(t, kernel.RoleTechnician)

		err := o.Accept(intruder, testTime, "", nil)

		require.ErrorIs(t, err, errs.ErrActorForbidden)
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("accept_while_pending_is_invalid_transition", func(t *testing.T) {
		o := newPendingOrder(t)
		tech := newTestActor(t, kernel.RoleTechnician)

		err := o.Accept(tech, testTime, "", nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("accept_after_reassignment_is_forbidden", func(t *testing.T) {
		o, originalTech := assignedOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)
		replacement := kernel.NewUUID()
		require.NoError(t, o.Reassign(replacement, "Teknisi Dua", "BDG-01", dispatcher, testTime, "no response"))

		err := o.Accept(originalTech, testTime, "", nil)

		require.ErrorIs(t, err, errs.ErrActorForbidden)
		assert.True(t, o.Assignment().TechnicianID().IsEqual(replacement))
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("full_chain_merges_field_work", func(t *testing.T) {
		o, tech := acceptedOrder(t)

		surveyDone := true
		surveyAt := testTime.Add(30 * time.Minute)
		err := o.Advance(order.StatusSurvey, tech, testTime.Add(10*time.Minute), &order.FieldWorkPatch{
			SurveyPhotos: []string{"survey-01.jpg"},
		}, nil, "starting survey", nil)
		require.NoError(t, err)

		err = o.Advance(order.StatusInstallation, tech, testTime.Add(31*time.Minute), &order.FieldWorkPatch{
			SurveyCompleted:   &surveyDone,
			SurveyCompletedAt: &surveyAt,
			SurveyPhotos:      []string{"survey-02.jpg"},
		}, nil, "survey done", nil)
		require.NoError(t, err)

		signature := "sig-base64"
		serial := "ZTEG-1234"
		score := 95
		err = o.Advance(order.StatusCompleted, tech, testTime.Add(2*time.Hour), &order.FieldWorkPatch{
			CustomerSignature: &signature,
		}, &order.InstallationDetailsPatch{
			ONTSerialNumber: &serial,
			QualityScore:    &score,
		}, "all tests passing", nil)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCompleted, o.Status())
		fw := o.FieldWork()
		assert.True(t, fw.SurveyCompleted)
		assert.Equal(t, []string{"survey-01.jpg", "survey-02.jpg"}, fw.SurveyPhotos)
		assert.Equal(t, "sig-base64", fw.CustomerSignature)
		assert.Equal(t, "ZTEG-1234", o.InstallationDetails().ONTSerialNumber)
		require.NotNil(t, o.InstallationDetails().QualityScore)
		assert.Equal(t, 95, *o.InstallationDetails().QualityScore)

		history := o.History()
		require.Len(t, history, 6)
		assert.Equal(t, order.StatusCompleted, history[5].Status())
	})

	t.Run("skipping_survey_is_invalid_transition", func(t *testing.T) {
		o, tech := acceptedOrder(t)

		err := o.Advance(order.StatusInstallation, tech, testTime, nil, nil, "", nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusAccepted, o.Status())
	})

	t.Run("dispatcher_cannot_advance", func(t *testing.T) {
		o, _ := acceptedOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)

		err := o.Advance(order.StatusSurvey, dispatcher, testTime, nil, nil, "", nil)

		require.ErrorIs(t, err, errs.ErrActorForbidden)
	})

	t.Run("quality_score_out_of_range_rejected", func(t *testing.T) {
		o, tech := installationOrder(t)
		score := 120

		err := o.Advance(order.StatusCompleted, tech, testTime, nil, &order.InstallationDetailsPatch{
			QualityScore: &score,
		}, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.StatusInstallation, o.Status())
	})

	t.Run("advance_target_outside_chain_rejected", func(t *testing.T) {
		o, tech := acceptedOrder(t)

		err := o.Advance(order.StatusAssigned, tech, testTime, nil, nil, "", nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Reassign(t *testing.T) {
	t.Run("replaces_assignment_and_keeps_audit_trail", func(t *testing.T) {
		o, tech := acceptedOrder(t)
		require.NoError(t, o.Advance(order.StatusSurvey, tech, testTime.Add(time.Hour), &order.FieldWorkPatch{
			SurveyPhotos: []string{"before.jpg"},
		}, nil, "", nil))
		historyBefore := o.History()

		dispatcher := newTestActor(t, kernel.RoleAdmin)
		replacement := kernel.NewUUID()
		err := o.Reassign(replacement, "Teknisi Dua", "BDG-02", dispatcher, testTime.Add(2*time.Hour), "T1 unavailable")

		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, o.Status())
		assert.True(t, o.Assignment().TechnicianID().IsEqual(replacement))
		assert.Nil(t, o.Assignment().AcceptedAt())

		// Prior partial work survives for the replacement technician.
		assert.Equal(t, []string{"before.jpg"}, o.FieldWork().SurveyPhotos)

		history := o.History()
		require.Len(t, history, len(historyBefore)+1)
		for i, entry := range historyBefore {
			assert.Equal(t, entry.Status(), history[i].Status())
			assert.Equal(t, entry.Timestamp(), history[i].Timestamp())
		}
		assert.Equal(t, "T1 unavailable", history[len(history)-1].Notes())
	})

	t.Run("reason_is_mandatory", func(t *testing.T) {
		o, _ := assignedOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)

		err := o.Reassign(kernel.NewUUID(), "T2", "BDG-01", dispatcher, testTime, "  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.History(), 2)
	})

	t.Run("reassign_during_installation_is_invalid", func(t *testing.T) {
		o, _ := installationOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)

		err := o.Reassign(kernel.NewUUID(), "T2", "BDG-01", dispatcher, testTime, "why not")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels_pending_order", func(t *testing.T) {
		o := newPendingOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)

		err := o.Cancel(dispatcher, testTime.Add(time.Minute), "customer withdrew")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		history := o.History()
		assert.Equal(t, "customer withdrew", history[len(history)-1].Notes())
	})

	t.Run("reason_is_mandatory", func(t *testing.T) {
		o := newPendingOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)

		err := o.Cancel(dispatcher, testTime, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("terminal_orders_reject_every_event", func(t *testing.T) {
		o := newPendingOrder(t)
		dispatcher := newTestActor(t, kernel.RoleDispatcher)
		require.NoError(t, o.Cancel(dispatcher, testTime, "duplicate order"))

		err := o.Assign(kernel.NewUUID(), "T", "BDG-01", dispatcher, testTime, "")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		err = o.Cancel(dispatcher, testTime, "again")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestOrder_SetTechnicianStatus(t *testing.T) {
	t.Run("complete_bridges_to_completed", func(t *testing.T) {
		o, tech := installationOrder(t)
		historyLen := len(o.History())

		err := o.SetTechnicianStatus(order.TechnicianStatusComplete, "", tech, testTime.Add(3*time.Hour), nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, order.TechnicianStatusComplete, o.TechnicianStatus())
		assert.Len(t, o.History(), historyLen+1)
	})

	t.Run("complete_from_accepted_rejected_and_order_unchanged", func(t *testing.T) {
		o, tech := acceptedOrder(t)
		historyLen := len(o.History())

		err := o.SetTechnicianStatus(order.TechnicianStatusComplete, "", tech, testTime, nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusAccepted, o.Status())
		assert.Equal(t, order.TechnicianStatusPending, o.TechnicianStatus())
		assert.Len(t, o.History(), historyLen)
	})

	t.Run("failed_bridges_to_failed", func(t *testing.T) {
		o, tech := acceptedOrder(t)

		err := o.SetTechnicianStatus(order.TechnicianStatusFailed, "ODP port full", tech, testTime, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatusFailed, o.Status())
		assert.Equal(t, "ODP port full", o.TechnicianStatusReason())
		history := o.History()
		assert.Equal(t, "ODP port full", history[len(history)-1].Notes())
	})

	t.Run("failed_without_reason_rejected", func(t *testing.T) {
		o, tech := acceptedOrder(t)

		err := o.SetTechnicianStatus(order.TechnicianStatusFailed, " ", tech, testTime, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusAccepted, o.Status())
	})

	t.Run("pending_annotation_leaves_primary_status_alone", func(t *testing.T) {
		o, tech := acceptedOrder(t)
		historyLen := len(o.History())

		err := o.SetTechnicianStatus(order.TechnicianStatusPending, "waiting for materials", tech, testTime, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, o.Status())
		assert.Equal(t, order.TechnicianStatusPending, o.TechnicianStatus())
		assert.Equal(t, "waiting for materials", o.TechnicianStatusReason())
		assert.Len(t, o.History(), historyLen)
	})

	t.Run("unassigned_actor_is_forbidden", func(t *testing.T) {
		o, _ := acceptedOrder(t)
		intruder := newTestActor(t, kernel.RoleTechnician)

		err := o.SetTechnicianStatus(order.TechnicianStatusFailed, "reason", intruder, testTime, nil)

		require.ErrorIs(t, err, errs.ErrActorForbidden)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trips_an_assigned_order", func(t *testing.T) {
		o, _ := assignedOrder(t)

		restored, err := order.RestoreOrder(
			o.ID(), o.SequenceNumber(), o.Customer(),
			o.ServicePackage(), o.Cluster(), o.STO(), o.Priority(),
			o.Status(), o.Assignment(), o.History(),
			o.FieldWork(), o.InstallationDetails(),
			o.TechnicianStatus(), o.TechnicianStatusReason(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, o.Status(), restored.Status())
		assert.Len(t, restored.History(), len(o.History()))
	})

	t.Run("empty_history_rejected", func(t *testing.T) {
		o := newPendingOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.SequenceNumber(), o.Customer(),
			o.ServicePackage(), o.Cluster(), o.STO(), o.Priority(),
			o.Status(), nil, nil,
			order.FieldWork{}, order.InstallationDetails{},
			order.TechnicianStatusPending, "",
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("history_tail_must_match_status", func(t *testing.T) {
		o, _ := assignedOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.SequenceNumber(), o.Customer(),
			o.ServicePackage(), o.Cluster(), o.STO(), o.Priority(),
			order.StatusAccepted, o.Assignment(), o.History(),
			order.FieldWork{}, order.InstallationDetails{},
			order.TechnicianStatusPending, "",
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("assigned_status_requires_assignment", func(t *testing.T) {
		o, _ := assignedOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.SequenceNumber(), o.Customer(),
			o.ServicePackage(), o.Cluster(), o.STO(), o.Priority(),
			o.Status(), nil, o.History(),
			order.FieldWork{}, order.InstallationDetails{},
			order.TechnicianStatusPending, "",
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

// History invariant: after every successful operation the last entry's status
// equals the order's current status.
func TestOrder_HistoryInvariant(t *testing.T) {
	o, tech := acceptedOrder(t)

	steps := []func() error{
		func() error {
			return o.Advance(order.StatusSurvey, tech, testTime.Add(time.Hour), nil, nil, "", nil)
		},
		func() error {
			return o.Advance(order.StatusInstallation, tech, testTime.Add(2*time.Hour), nil, nil, "", nil)
		},
		func() error {
			return o.Advance(order.StatusCompleted, tech, testTime.Add(3*time.Hour), nil, nil, "", nil)
		},
	}

	for _, step := range steps {
		require.NoError(t, step())
		history := o.History()
		require.NotEmpty(t, history)
		assert.Equal(t, o.Status(), history[len(history)-1].Status())
	}
}
