package technician

import (
	"errors"
	"slices"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// Domain errors for technician operations.
var (
	// ErrNameIsRequired is returned when attempting to create a technician without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmployeeIDIsRequired is returned when attempting to create a technician without an employee id.
	ErrEmployeeIDIsRequired = errs.NewValueIsRequiredError("employeeId")
	// ErrClusterIsRequired is returned when attempting to create a technician without a home cluster.
	ErrClusterIsRequired = errs.NewValueIsRequiredError("cluster")
	// ErrTechnicianIsNotConstructed is returned when using an improperly initialized Technician.
	ErrTechnicianIsNotConstructed = errors.New("Technician must be created via NewTechnician or RestoreTechnician constructor")
)

// Technician represents a field technician in the system.
// It is an aggregate root that manages the technician's profile, availability
// for new assignments, and running performance counters.
//
// Key responsibilities:
//   - Managing technician identity (id, linked account, unique employee id)
//   - Holding the dispatch profile: home cluster, skills, served territory
//   - Evaluating availability against the active flag, the manual toggle and
//     the weekly working-hours window
//   - Carrying the performance snapshot recomputed by the aggregation service
//
// Business rules:
//   - Technician must have a valid id, linked account id, non-empty employee
//     id, name, cluster and a valid working-hours window
//   - A technician may receive a new assignment only while active, available
//     and inside the working-hours window
//   - The availability toggle is self-service: the technician flips it off
//     while occupied, and order completion flips it back on
type Technician struct {
	// id uniquely identifies the technician
	id kernel.UUID
	// accountID links the technician to their login account
	accountID kernel.UUID
	// employeeID is the company-wide unique personnel number
	employeeID string
	// name is the human-readable name of the technician
	name string
	// cluster is the home service cluster used for matching
	cluster string
	// skills are the certifications the technician holds
	skills []string
	// territory are the area codes the technician serves
	territory []string
	// isActive marks whether the technician is employed and dispatchable at all
	isActive bool
	// isAvailable is the technician's manual availability toggle
	isAvailable bool
	// workingHours is the weekly window during which assignments are allowed
	workingHours WorkingHours
	// performance is the derived workload snapshot
	performance Performance
	// currentLocation is the last reported position, nil if never reported
	currentLocation *kernel.Geolocation
	// guard ensures the technician was properly constructed
	guard guard.ConstructorGuard
}

// NewTechnician creates a new Technician with the specified profile.
//
// A fresh technician starts active, available, with an empty performance
// snapshot and no reported location. Skills and territory may be empty; the
// working-hours window must be valid.
func NewTechnician(
	id kernel.UUID,
	accountID kernel.UUID,
	employeeID string,
	name string,
	cluster string,
	skills []string,
	territory []string,
	workingHours WorkingHours,
) (*Technician, error) {
	technician := &Technician{
		isActive:    true,
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		technician.setID(id),
		technician.setAccountID(accountID),
		technician.setEmployeeID(employeeID),
		technician.setName(name),
		technician.setCluster(cluster),
		technician.setSkills(skills),
		technician.setTerritory(territory),
		technician.setWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	return technician, nil
}

// RestoreTechnician reconstructs a Technician aggregate from persistent
// storage, including flags, performance counters and the last reported
// location. The restored technician behaves identically to one that reached
// the same state through normal domain operations.
func RestoreTechnician(
	id kernel.UUID,
	accountID kernel.UUID,
	employeeID string,
	name string,
	cluster string,
	skills []string,
	territory []string,
	isActive bool,
	isAvailable bool,
	workingHours WorkingHours,
	performance Performance,
	currentLocation *kernel.Geolocation,
) (*Technician, error) {
	technician := &Technician{
		isActive:    isActive,
		isAvailable: isAvailable,
		performance: performance,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		technician.setID(id),
		technician.setAccountID(accountID),
		technician.setEmployeeID(employeeID),
		technician.setName(name),
		technician.setCluster(cluster),
		technician.setSkills(skills),
		technician.setTerritory(territory),
		technician.setWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	if currentLocation != nil {
		if err := currentLocation.Validate(); err != nil {
			return nil, err
		}
		location := *currentLocation
		technician.currentLocation = &location
	}

	return technician, nil
}

// IsEqual compares two technicians for equality based on their unique identifiers.
func (t *Technician) IsEqual(other *Technician) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// Validate checks if the Technician was properly constructed through a factory method.
// The zero value of Technician is invalid and will fail this validation.
func (t *Technician) Validate() error {
	if t == nil {
		return ErrTechnicianIsNotConstructed
	}
	return t.guard.Validate(ErrTechnicianIsNotConstructed)
}

// ID returns the unique identifier of the technician.
func (t *Technician) ID() kernel.UUID {
	return t.id
}

// AccountID returns the id of the login account linked to the technician.
func (t *Technician) AccountID() kernel.UUID {
	return t.accountID
}

// EmployeeID returns the company-wide unique personnel number.
func (t *Technician) EmployeeID() string {
	return t.employeeID
}

// Name returns the human-readable name of the technician.
func (t *Technician) Name() string {
	return t.name
}

// Cluster returns the home service cluster used for dispatch matching.
func (t *Technician) Cluster() string {
	return t.cluster
}

// Skills returns the certifications the technician holds.
// The returned slice is a copy.
func (t *Technician) Skills() []string {
	return slices.Clone(t.skills)
}

// Territory returns the area codes the technician serves.
// The returned slice is a copy.
func (t *Technician) Territory() []string {
	return slices.Clone(t.territory)
}

// IsActive reports whether the technician is employed and dispatchable at all.
func (t *Technician) IsActive() bool {
	return t.isActive
}

// IsAvailable reports the state of the manual availability toggle.
func (t *Technician) IsAvailable() bool {
	return t.isAvailable
}

// WorkingHours returns the weekly working-hours window.
func (t *Technician) WorkingHours() WorkingHours {
	return t.workingHours
}

// Performance returns the derived workload snapshot.
func (t *Technician) Performance() Performance {
	return t.performance
}

// CurrentLocation returns a copy of the last reported position, or nil if the
// technician never reported one.
func (t *Technician) CurrentLocation() *kernel.Geolocation {
	if t.currentLocation == nil {
		return nil
	}
	location := *t.currentLocation
	return &location
}

// IsAvailableForAssignment reports whether the technician may receive a new
// assignment at the given instant. The technician must be active, have the
// availability toggle on, and the instant must fall inside the working-hours
// window (weekday and inclusive HH:MM bounds).
func (t *Technician) IsAvailableForAssignment(now time.Time) bool {
	if !t.isActive || !t.isAvailable {
		return false
	}
	return t.workingHours.Covers(now)
}

// HasSkill reports whether the technician holds the given certification.
func (t *Technician) HasSkill(skill string) bool {
	return slices.Contains(t.skills, skill)
}

// ServesTerritory reports whether the technician serves the given area code.
func (t *Technician) ServesTerritory(areaCode string) bool {
	return slices.Contains(t.territory, areaCode)
}

// SetAvailability flips the manual availability toggle. The technician turns
// it off while occupied on a job; order completion turns it back on.
func (t *Technician) SetAvailability(available bool) {
	t.isAvailable = available
}

// Activate marks the technician as employed and dispatchable.
func (t *Technician) Activate() {
	t.isActive = true
}

// Deactivate removes the technician from dispatch entirely. A deactivated
// technician fails every availability check regardless of the toggle.
func (t *Technician) Deactivate() {
	t.isActive = false
}

// SetWorkingHours replaces the weekly working-hours window.
func (t *Technician) SetWorkingHours(workingHours WorkingHours) error {
	return t.setWorkingHours(workingHours)
}

// SetCurrentLocation records the technician's last reported position.
func (t *Technician) SetCurrentLocation(location kernel.Geolocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	t.currentLocation = &location
	return nil
}

// UpdatePerformance replaces the performance snapshot with a freshly
// recomputed one. Only the aggregation service and administrative edits call
// this; the aggregate never derives the counters itself.
func (t *Technician) UpdatePerformance(performance Performance) {
	t.performance = performance
}

// setID sets the technician's unique identifier with validation.
func (t *Technician) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

// setAccountID sets the linked account identifier with validation.
func (t *Technician) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	t.accountID = accountID
	return nil
}

// setEmployeeID sets the personnel number with validation.
func (t *Technician) setEmployeeID(employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return ErrEmployeeIDIsRequired
	}

	t.employeeID = employeeID
	return nil
}

// setName sets the technician's name with validation.
func (t *Technician) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	t.name = name
	return nil
}

// setCluster sets the home cluster with validation.
func (t *Technician) setCluster(cluster string) error {
	if strings.TrimSpace(cluster) == "" {
		return ErrClusterIsRequired
	}

	t.cluster = cluster
	return nil
}

// setSkills stores the skill set, dropping blank entries and duplicates.
func (t *Technician) setSkills(skills []string) error {
	t.skills = normalizeSet(skills)
	return nil
}

// setTerritory stores the served area codes, dropping blank entries and duplicates.
func (t *Technician) setTerritory(territory []string) error {
	t.territory = normalizeSet(territory)
	return nil
}

// setWorkingHours sets the weekly window with validation.
func (t *Technician) setWorkingHours(workingHours WorkingHours) error {
	if err := workingHours.Validate(); err != nil {
		return err
	}

	t.workingHours = workingHours
	return nil
}

// normalizeSet trims, deduplicates and sorts a string set.
func normalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
