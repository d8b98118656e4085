package order

import (
	"fmt"
	"strings"

	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"Customer must be created via NewCustomer constructor",
)

// Customer holds the subscriber contact details attached to an order.
// It is descriptive data, immutable after creation and irrelevant to the
// state machine.
type Customer struct {
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with all three contact fields required.
func NewCustomer(name, phone, address string) (Customer, error) {
	customer := Customer{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if customer.name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if customer.phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}
	if customer.address == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer address")
	}

	return customer, nil
}

// Validate ensures the customer was created via NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the subscriber's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the subscriber's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the installation address.
func (c Customer) Address() string {
	return c.address
}

// Priority is the dispatch urgency attached to an order. It is descriptive
// only; the state machine does not consult it.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow marks orders that can wait behind routine work.
	PriorityLow

	// PriorityNormal is the default for new orders.
	PriorityNormal

	// PriorityHigh marks orders dispatchers should place first.
	PriorityHigh

	// PriorityUrgent marks outage-level work.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityLow:     "low",
		PriorityNormal:  "normal",
		PriorityHigh:    "high",
		PriorityUrgent:  "urgent",
	}
}

// PriorityFromString parses a priority name. Returns an error for unrecognized names.
func PriorityFromString(s string) (Priority, error) {
	for priority, name := range getPriorityStrings() {
		if priority != PriorityUnknown && name == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// String returns the lowercase priority name. Implements fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the Priority is one of the defined levels.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok || p == PriorityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}
