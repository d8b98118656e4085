package technician

import (
	"fmt"
	"slices"
	"time"

	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// timeOfDayLayout is the wall-clock format used for working-hours bounds.
const timeOfDayLayout = "15:04"

// WorkingHours is a value object describing the weekly window during which a
// technician may receive new assignments: a start and end time of day in
// "HH:MM" form plus the set of weekdays the technician works.
//
// Both bounds are inclusive: a window of 08:00-17:00 covers exactly 08:00 and
// exactly 17:00, but not 07:59 or 17:01. Because times are zero-padded
// "HH:MM" strings, coverage is a plain lexicographic comparison. The window
// is a same-day window; start must not be later than end.
type WorkingHours struct {
	// start is the inclusive lower bound of the window, "HH:MM".
	start string
	// end is the inclusive upper bound of the window, "HH:MM".
	end string
	// workingDays are the weekdays the technician works, deduplicated and sorted.
	workingDays []time.Weekday
	// guard ensures the value was built through NewWorkingHours
	guard guard.ConstructorGuard
}

// NewWorkingHours creates a validated WorkingHours window.
//
// Both bounds must be zero-padded "HH:MM" wall-clock times with start ≤ end,
// and at least one working day must be given. Duplicate days are collapsed
// and the stored set is sorted, so two windows built from day lists in
// different orders compare and persist identically.
func NewWorkingHours(start, end string, workingDays []time.Weekday) (WorkingHours, error) {
	if err := validateTimeOfDay("start", start); err != nil {
		return WorkingHours{}, err
	}
	if err := validateTimeOfDay("end", end); err != nil {
		return WorkingHours{}, err
	}
	if start > end {
		return WorkingHours{}, errs.NewValueIsInvalidErrorWithCause(
			"workingHours",
			fmt.Errorf("start %s is after end %s", start, end),
		)
	}

	if len(workingDays) == 0 {
		return WorkingHours{}, errs.NewValueIsRequiredError("workingDays")
	}
	days := slices.Clone(workingDays)
	slices.Sort(days)
	days = slices.Compact(days)
	for _, day := range days {
		if day < time.Sunday || day > time.Saturday {
			return WorkingHours{}, errs.NewValueIsOutOfRangeError(
				"workingDays", int(day), int(time.Sunday), int(time.Saturday),
			)
		}
	}

	return WorkingHours{
		start:       start,
		end:         end,
		workingDays: days,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the WorkingHours value was properly constructed.
// The zero value is invalid.
func (w WorkingHours) Validate() error {
	return w.guard.Validate(errs.NewValueIsRequiredError("workingHours"))
}

// Start returns the inclusive "HH:MM" lower bound of the window.
func (w WorkingHours) Start() string {
	return w.start
}

// End returns the inclusive "HH:MM" upper bound of the window.
func (w WorkingHours) End() string {
	return w.end
}

// WorkingDays returns the weekdays the technician works, sorted ascending.
// The returned slice is a copy.
func (w WorkingHours) WorkingDays() []time.Weekday {
	return slices.Clone(w.workingDays)
}

// Covers reports whether the given instant falls inside the window: its
// weekday must be a working day and its wall-clock time must satisfy
// start ≤ time ≤ end, both bounds inclusive.
func (w WorkingHours) Covers(now time.Time) bool {
	if !slices.Contains(w.workingDays, now.Weekday()) {
		return false
	}
	timeOfDay := now.Format(timeOfDayLayout)
	return w.start <= timeOfDay && timeOfDay <= w.end
}

// IsEqual compares two windows by bounds and working-day set.
func (w WorkingHours) IsEqual(other WorkingHours) bool {
	return w.start == other.start &&
		w.end == other.end &&
		slices.Equal(w.workingDays, other.workingDays)
}

// String returns the window as "08:00-17:00 [Mon Tue Wed]".
func (w WorkingHours) String() string {
	days := make([]string, 0, len(w.workingDays))
	for _, day := range w.workingDays {
		days = append(days, day.String()[:3])
	}
	return fmt.Sprintf("%s-%s %v", w.start, w.end, days)
}

// validateTimeOfDay ensures a bound is a zero-padded "HH:MM" wall-clock time.
func validateTimeOfDay(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if _, err := time.Parse(timeOfDayLayout, value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if len(value) != len(timeOfDayLayout) {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s must be zero-padded HH:MM", value),
		)
	}
	return nil
}
