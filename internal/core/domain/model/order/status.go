package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements the state
// machine governing the fulfillment workflow:
//
//	pending → confirmed → assigned → picked_up → in_transit → delivered → signed
//
// plus two absorbing states: cancelled (reachable from pending and confirmed
// only) and abnormal (reachable from any non-terminal state). Each transition
// method returns the resulting status or an InvalidTransitionError; a rejected
// transition never mutates anything.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is placed and stock is
	// reserved, awaiting merchant confirmation.
	Pending

	// Confirmed indicates the merchant accepted the order. The order stays
	// here when no delivery agent was available at confirmation time.
	Confirmed

	// Assigned indicates a delivery agent has been bound to the order.
	// Reached only as a side effect of a successful confirmation.
	Assigned

	// PickedUp indicates the agent has taken physical custody of the package.
	PickedUp

	// InTransit indicates the agent is moving the package to the receiver.
	InTransit

	// Delivered indicates the package arrived and awaits the customer's
	// signature.
	Delivered

	// Signed indicates the customer signed off. Terminal; the only transition
	// that releases the assigned agent.
	Signed

	// Cancelled indicates the order was withdrawn before agent custody.
	// Terminal.
	Cancelled

	// Abnormal indicates the order left the normal flow for a recorded
	// reason. Terminal.
	Abnormal
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Signed:    "signed",
		Cancelled: "cancelled",
		Abnormal:  "abnormal",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Signed:    "signed",
		Cancelled: "cancelled",
		Abnormal:  "abnormal",
	}
}

// StatusFromString parses the persisted string form of a status. Returns an
// error for unknown values so corrupted rows are caught on load.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks the Status value is one of the nine valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status ("pending", "picked_up", ...).
// Safe to call on any value; invalid values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Signed || s == Cancelled || s == Abnormal
}

// Confirm transitions pending → confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("confirm", s.String())
	}
	return Confirmed, nil
}

// Assign transitions confirmed → assigned. There is no caller-facing assign
// operation; assignment happens only inside a successful confirmation.
func (s Status) Assign() (Status, error) {
	if s != Confirmed {
		return Unknown, errs.NewInvalidTransitionError("assign", s.String())
	}
	return Assigned, nil
}

// PickUp transitions assigned → picked_up.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidTransitionError("pick up", s.String())
	}
	return PickedUp, nil
}

// StartTransit transitions picked_up → in_transit.
func (s Status) StartTransit() (Status, error) {
	if s != PickedUp {
		return Unknown, errs.NewInvalidTransitionError("start transit", s.String())
	}
	return InTransit, nil
}

// Deliver transitions in_transit → delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewInvalidTransitionError("deliver", s.String())
	}
	return Delivered, nil
}

// Sign transitions delivered → signed.
func (s Status) Sign() (Status, error) {
	if s != Delivered {
		return Unknown, errs.NewInvalidTransitionError("sign", s.String())
	}
	return Signed, nil
}

// Cancel transitions pending or confirmed → cancelled. Once an agent has been
// assigned the order can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed {
		return Unknown, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// MarkAbnormal transitions any non-terminal state → abnormal.
func (s Status) MarkAbnormal() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError("mark abnormal", s.String())
	}
	return Abnormal, nil
}

// ValidateCanHaveAgent validates consistency between status and agent
// assignment when restoring an order from persistence.
//
// Rules:
//   - pending, confirmed, cancelled: must not have an agent
//   - assigned through signed: must have an agent
//   - abnormal: either, depending on where the order left the normal flow
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	switch s {
	case Pending, Confirmed, Cancelled:
		if hasAgent {
			return errs.NewValueIsInvalidError("status " + s.String() + " cannot have an agent")
		}
	case Assigned, PickedUp, InTransit, Delivered, Signed:
		if !hasAgent {
			return errs.NewValueIsInvalidError("status " + s.String() + " requires an agent")
		}
	case Abnormal, Unknown:
	}
	return nil
}
