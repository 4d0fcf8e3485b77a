// Package audit provides the append-only audit trail entries recording every
// accepted order state transition. Entries are created once per transition
// (two for a confirmation that also assigns an agent) and never mutated or
// deleted; read in creation order they form a valid walk of the order state
// machine.
package audit

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Action labels carried by audit entries, one per orchestrator operation.
const (
	ActionCreate       = "create"
	ActionConfirm      = "confirm"
	ActionAssign       = "assign"
	ActionPickUp       = "pick up"
	ActionStartTransit = "start transit"
	ActionDeliver      = "deliver"
	ActionSign         = "sign"
	ActionCancel       = "cancel"
	ActionMarkAbnormal = "mark abnormal"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is a single immutable audit record. FromStatus is nil only for the
// very first entry of an order (its creation); the operator is the user who
// caused the transition, which for assignments is the chosen agent.
type Entry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	operatorID kernel.UUID
	action     string
	detail     string
	fromStatus *order.Status
	toStatus   order.Status
	createdAt  time.Time

	isConstructed bool
}

// NewEntry creates an audit entry for one accepted transition.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	operatorID kernel.UUID,
	action string,
	detail string,
	fromStatus *order.Status,
	toStatus order.Status,
	createdAt time.Time,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), operatorID.Validate()); err != nil {
		return nil, err
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		operatorID:    operatorID,
		action:        action,
		detail:        detail,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry loaded from persistence.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	operatorID kernel.UUID,
	action string,
	detail string,
	fromStatus *order.Status,
	toStatus order.Status,
	createdAt time.Time,
) (*Entry, error) {
	return NewEntry(id, orderID, operatorID, action, detail, fromStatus, toStatus, createdAt)
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's surrogate identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the owning order's identifier.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// OperatorID returns the identifier of the user who caused the transition.
func (e *Entry) OperatorID() kernel.UUID {
	return e.operatorID
}

// Action returns the short human-readable action label.
func (e *Entry) Action() string {
	return e.action
}

// Detail returns the free-text description of the transition.
func (e *Entry) Detail() string {
	return e.detail
}

// FromStatus returns the status before the transition, nil for the creation
// entry.
func (e *Entry) FromStatus() *order.Status {
	return e.fromStatus
}

// ToStatus returns the status after the transition.
func (e *Entry) ToStatus() order.Status {
	return e.toStatus
}

// CreatedAt returns the immutable creation time.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
