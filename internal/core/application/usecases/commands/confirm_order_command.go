package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a merchant's acceptance of a pending order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command for a merchant to confirm an order.
func NewConfirmOrderCommand(merchantID, orderID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := errors.Join(merchantID.Validate(), orderID.Validate()); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		merchantID: merchantID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// MerchantID returns the confirming merchant's identifier.
func (c ConfirmOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
