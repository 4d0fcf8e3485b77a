package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkAbnormalCommandIsNotConstructed = errors.New(
	"MarkAbnormalCommand must be created via NewMarkAbnormalCommand constructor",
)

// MarkAbnormalCommand represents flagging an active order as abnormal with a
// mandatory reason. Permitted for the assigned agent or an administrator.
type MarkAbnormalCommand struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID
	orderID  kernel.UUID
	reason   string
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewMarkAbnormalCommand creates a command to mark an order abnormal.
func NewMarkAbnormalCommand(callerID, orderID kernel.UUID, reason string, isAdmin bool) (MarkAbnormalCommand, error) {
	if err := errors.Join(callerID.Validate(), orderID.Validate()); err != nil {
		return MarkAbnormalCommand{}, err
	}

	if reason == "" {
		return MarkAbnormalCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return MarkAbnormalCommand{
		callerID: callerID,
		orderID:  orderID,
		reason:   reason,
		isAdmin:  isAdmin,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAbnormalCommand) Validate() error {
	return c.guard.Validate(ErrMarkAbnormalCommandIsNotConstructed)
}

// CallerID returns the identifier of the reporting user.
func (c MarkAbnormalCommand) CallerID() kernel.UUID {
	return c.callerID
}

// OrderID returns the identifier of the affected order.
func (c MarkAbnormalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the free-form description of the problem.
func (c MarkAbnormalCommand) Reason() string {
	return c.reason
}

// IsAdmin reports whether the caller acts with administrative rights.
func (c MarkAbnormalCommand) IsAdmin() bool {
	return c.isAdmin
}
