package errs_test

import (
	"errors"
	"testing"

	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("technicianId", "123", cause)

		assert.Equal(t, "technicianId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: technicianId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("priority")

		assert.Equal(t, "priority", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: priority", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("phone", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: phone (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize_collapses_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("reason")

	assert.Equal(t, "reason", err.ParamName)
	assert.Equal(t, "value is required: reason", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	cause := errors.New("missing required field")
	withCause := errs.NewValueIsRequiredErrorWithCause("reason", cause)
	assert.Equal(t, "value is required: reason (cause: missing required field)", withCause.Error())
}

func TestStatusTransitionError(t *testing.T) {
	t.Run("NewStatusTransitionError", func(t *testing.T) {
		err := errs.NewStatusTransitionError("Pending", "Completed")

		assert.Equal(t, "Pending", err.From)
		assert.Equal(t, "Completed", err.To)
		assert.Equal(t, "invalid status transition: Pending -> Completed", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewStatusTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is terminal")
		err := errs.NewStatusTransitionErrorWithCause("Completed", "Assigned", cause)

		assert.Equal(t,
			"invalid status transition: Completed -> Assigned (cause: order is terminal)",
			err.Error())
	})
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("order", "o-1", "Pending", "Assigned")

	assert.Equal(t, "Pending", err.ExpectedStatus)
	assert.Equal(t, "Assigned", err.ActualStatus)
	assert.Equal(t,
		"concurrency conflict: order o-1 expected status Pending, actual status Assigned",
		err.Error())
	assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
}

func TestActorForbiddenError(t *testing.T) {
	err := errs.NewActorForbiddenError("t-9", "order is assigned to another technician")

	assert.Equal(t, "t-9", err.ActorID)
	assert.Equal(t,
		"actor is forbidden: actor t-9: order is assigned to another technician",
		err.Error())
	assert.Equal(t, errs.ErrActorForbidden, err.Unwrap())
}

func TestTechnicianUnavailableError(t *testing.T) {
	err := errs.NewTechnicianUnavailableError("t-3", "outside working hours")

	assert.Equal(t,
		"technician is unavailable: technician t-3: outside working hours",
		err.Error())
	assert.Equal(t, errs.ErrTechnicianUnavailable, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("priority"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lat", 100, -90, 90), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewStatusTransitionError("Pending", "Survey"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewConcurrencyConflictError("order", "1", "Pending", "Assigned"), errs.ErrConcurrencyConflict)
	require.ErrorIs(t, errs.NewActorForbiddenError("a", "no"), errs.ErrActorForbidden)
	require.ErrorIs(t, errs.NewTechnicianUnavailableError("t", "inactive"), errs.ErrTechnicianUnavailable)
}
