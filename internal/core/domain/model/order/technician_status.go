package order

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// TechnicianStatus is the technician's own tri-state annotation on an order,
// independent of the primary Status. It is a secondary signal from the field:
// setting it to "complete" or "failed" bridges into the primary state machine
// (EventComplete / EventFail) through the same transition table as every other
// operation, so the bridge cannot bypass workflow rules.
type TechnicianStatus int

const (
	// TechnicianStatusPending is the default annotation: work not concluded yet.
	TechnicianStatusPending TechnicianStatus = iota

	// TechnicianStatusFailed signals the technician could not complete the work.
	TechnicianStatusFailed

	// TechnicianStatusComplete signals the technician considers the work done.
	TechnicianStatusComplete
)

func getTechnicianStatusStrings() map[TechnicianStatus]string {
	return map[TechnicianStatus]string{
		TechnicianStatusPending:  "pending",
		TechnicianStatusFailed:   "failed",
		TechnicianStatusComplete: "complete",
	}
}

// TechnicianStatusFromString parses an annotation value supplied by the caller.
func TechnicianStatusFromString(s string) (TechnicianStatus, error) {
	for status, name := range getTechnicianStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return TechnicianStatusPending, errs.NewValueIsInvalidErrorWithCause(
		"technicianStatus",
		fmt.Errorf("%q is not a valid technician status", s),
	)
}

// String returns the lowercase annotation name. Implements fmt.Stringer.
func (s TechnicianStatus) String() string {
	if str, ok := getTechnicianStatusStrings()[s]; ok {
		return str
	}
	return "pending"
}

// Validate checks the annotation is one of the three defined values.
func (s TechnicianStatus) Validate() error {
	if _, ok := getTechnicianStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"technicianStatus",
			fmt.Errorf("%d is not a valid technician status", s),
		)
	}
	return nil
}
