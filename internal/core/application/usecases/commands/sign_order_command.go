package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSignOrderCommandIsNotConstructed = errors.New(
	"SignOrderCommand must be created via NewSignOrderCommand constructor",
)

// SignOrderCommand represents the customer signing off a delivered order.
type SignOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewSignOrderCommand creates a command for a customer to sign an order.
func NewSignOrderCommand(customerID, orderID kernel.UUID) (SignOrderCommand, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return SignOrderCommand{}, err
	}

	return SignOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SignOrderCommand) Validate() error {
	return c.guard.Validate(ErrSignOrderCommandIsNotConstructed)
}

// CustomerID returns the signing customer's identifier.
func (c SignOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the identifier of the order to sign.
func (c SignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
