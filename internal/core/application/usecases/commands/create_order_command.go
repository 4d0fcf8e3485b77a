package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place an order for a
// product. Shipping details are snapshotted onto the order; the merchant and
// sender address come from the product at handling time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	productID       kernel.UUID
	quantity        int
	shippingAddress string
	receiverName    string
	receiverPhone   string
	remark          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates the
// party and product identifiers, a quantity of at least 1, and the required
// shipping fields.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	shippingAddress string,
	receiverName string,
	receiverPhone string,
	remark string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		remark: remark,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setShippingAddress(shippingAddress),
		cmd.setReceiverName(receiverName),
		cmd.setReceiverPhone(receiverPhone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product to order.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to order.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// ShippingAddress returns the delivery destination.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// ReceiverName returns the receiver's name.
func (c CreateOrderCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the receiver's phone number.
func (c CreateOrderCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// Remark returns the optional free-text remark.
func (c CreateOrderCommand) Remark() string {
	return c.remark
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setReceiverName(receiverName string) error {
	if receiverName == "" {
		return errs.NewValueIsRequiredError("receiver name")
	}
	c.receiverName = receiverName
	return nil
}

func (c *CreateOrderCommand) setReceiverPhone(receiverPhone string) error {
	if receiverPhone == "" {
		return errs.NewValueIsRequiredError("receiver phone")
	}
	c.receiverPhone = receiverPhone
	return nil
}
