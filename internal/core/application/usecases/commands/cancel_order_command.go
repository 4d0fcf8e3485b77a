package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents withdrawing an order that has not yet entered
// agent custody. Permitted for the order's customer or an administrator.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID
	orderID  kernel.UUID
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(callerID, orderID kernel.UUID, isAdmin bool) (CancelOrderCommand, error) {
	if err := errors.Join(callerID.Validate(), orderID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		callerID: callerID,
		orderID:  orderID,
		isAdmin:  isAdmin,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// CallerID returns the identifier of the cancelling user.
func (c CancelOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IsAdmin reports whether the caller acts with administrative rights.
func (c CancelOrderCommand) IsAdmin() bool {
	return c.isAdmin
}
