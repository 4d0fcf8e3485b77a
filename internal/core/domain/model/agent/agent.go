// Package agent provides the delivery-agent view the orchestrator works with:
// an identity plus an availability status. The orchestrator marks an agent
// busy exactly when it assigns them to an order and available exactly when
// that order is signed; agents manage their own offline/available state
// otherwise. Account lifecycle (creation, deactivation) is owned elsewhere.
package agent

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrAgentIsNotConstructed is returned when an Agent was not created through
// NewAgent or RestoreAgent.
var ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent")

// Availability is a delivery agent's readiness for assignment.
type Availability int

const (
	// UnknownAvailability represents an invalid or undefined availability.
	UnknownAvailability Availability = iota

	// Available means the agent can be claimed for a new order.
	Available

	// Busy means the agent is bound to an active order.
	Busy

	// Offline means the agent is not working and must not be claimed.
	Offline
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

// AvailabilityFromString parses the persisted string form of an availability.
func AvailabilityFromString(s string) (Availability, error) {
	for a, str := range getAvailabilityStrings() {
		if str == s {
			return a, nil
		}
	}
	return UnknownAvailability, errs.NewValueIsInvalidError("availability " + s)
}

// Validate checks the Availability is one of the three valid values.
func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidError("availability")
	}
	return nil
}

// String returns the wire name of the availability.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Agent represents a delivery person capable of carrying exactly one active
// order at a time.
type Agent struct {
	id           kernel.UUID
	name         string
	availability Availability
	active       bool

	isConstructed bool
}

// NewAgent creates an active agent that starts available.
func NewAgent(id kernel.UUID, name string) (*Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("agent name")
	}

	return &Agent{
		id:            id,
		name:          name,
		availability:  Available,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreAgent reconstructs an agent loaded from the directory.
func RestoreAgent(id kernel.UUID, name string, availability Availability, active bool) (*Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("agent name")
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}

	return &Agent{
		id:            id,
		name:          name,
		availability:  availability,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Agent was properly constructed.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// ID returns the agent's identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// Availability returns the agent's current availability.
func (a *Agent) Availability() Availability {
	return a.availability
}

// IsActive reports whether the agent's account is active. Inactive agents are
// never claimed for assignment.
func (a *Agent) IsActive() bool {
	return a.active
}

// MarkBusy binds the agent to an order. Only an available, active agent can
// be marked busy; the directory's claim must have already won the race.
func (a *Agent) MarkBusy() error {
	if !a.active {
		return errs.NewForbiddenError("mark busy", a.id.String())
	}
	if a.availability != Available {
		return errs.NewConflictError("agent", a.id.String())
	}
	a.availability = Busy
	return nil
}

// Release returns a busy agent to available. Called when the agent's order is
// signed.
func (a *Agent) Release() error {
	if a.availability != Busy {
		return errs.NewConflictError("agent", a.id.String())
	}
	a.availability = Available
	return nil
}

// SetAvailability is the agent's self-service status update (going offline or
// coming back). A busy agent cannot change status while bound to an order.
func (a *Agent) SetAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	if a.availability == Busy && availability != Busy {
		return errs.NewConflictError("agent", a.id.String())
	}
	a.availability = availability
	return nil
}
