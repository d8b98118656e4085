package kernel

import (
	"fieldops/internal/pkg/errs"
)

// Role identifies the class of caller acting on the engine.
// Roles are resolved by the external identity collaborator before a request
// reaches the engine; the engine only checks them against operation rules.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDispatcher is an administrative actor who assigns and reassigns technicians.
	RoleDispatcher

	// RoleAdmin has the same assignment powers as a dispatcher plus
	// administrative edits of technician records.
	RoleAdmin

	// RoleTechnician is a field technician acting on their own assignments.
	RoleTechnician

	// RoleSystem is the internal actor used by scheduled jobs
	// (automatic dispatch, performance refresh).
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleDispatcher: "dispatcher",
		RoleAdmin:      "admin",
		RoleTechnician: "technician",
		RoleSystem:     "system",
	}
}

// RoleFromString parses a role name as supplied by the identity collaborator.
// Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// String returns the lowercase role name. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate returns an error for RoleUnknown and any out-of-range value.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// IsDispatcher reports whether the role carries dispatch powers.
func (r Role) IsDispatcher() bool {
	return r == RoleDispatcher || r == RoleAdmin || r == RoleSystem
}

// Actor is the authenticated caller of an engine operation: a verified identity
// plus role. The engine treats authentication as an external concern and trusts
// the identity it is handed; every precondition check in the transition table is
// expressed against this value object.
//
// Example:
//
//	actor, err := kernel.NewActor(userID, kernel.RoleDispatcher)
//	if err != nil {
//	    return err
//	}
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from a verified identity and role.
// Both must be valid; the zero Actor fails validation.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate ensures the actor carries a constructed identity and a known role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
