package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ShippingInfo groups the logistics fields snapshotted onto an order at
// creation time. Address, receiver name, and receiver phone are required;
// sender address comes from the merchant's profile and remark is optional.
type ShippingInfo struct {
	Address       string
	ReceiverName  string
	ReceiverPhone string
	SenderAddress string
	Remark        string
}

// Validate checks the required shipping fields are present.
func (s ShippingInfo) Validate() error {
	if s.Address == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	if s.ReceiverName == "" {
		return errs.NewValueIsRequiredError("receiver name")
	}
	if s.ReceiverPhone == "" {
		return errs.NewValueIsRequiredError("receiver phone")
	}
	return nil
}

// Order is the aggregate root for a single purchase transaction. It links one
// customer, one merchant, and at most one delivery agent, and moves through
// the fixed lifecycle defined by Status.
//
// Invariants maintained by this type:
//   - quantity is at least 1 and total price is immutable after creation
//   - product name and shipping details are snapshots, never live references
//   - the agent id is set exactly when the status machine requires it
//   - confirmedAt, deliveredAt, and signedAt are set once and never reset
//   - every transition enforces both the state machine and the party check
//     for its caller before mutating anything
type Order struct {
	id         kernel.UUID
	orderNo    string
	customerID kernel.UUID
	merchantID kernel.UUID
	agentID    *kernel.UUID

	productName string
	quantity    int
	totalPrice  int64

	shipping ShippingInfo

	status         Status
	abnormalReason string

	createdAt   time.Time
	updatedAt   time.Time
	confirmedAt *time.Time
	deliveredAt *time.Time
	signedAt    *time.Time

	// version supports the repository's optimistic concurrency check.
	version int

	isConstructed bool
}

// NewOrder creates a pending order with the commercial and logistics details
// snapshotted at placement time. totalPrice must already be the unit price
// multiplied by quantity; later product price changes never affect it.
func NewOrder(
	id kernel.UUID,
	orderNo string,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	productName string,
	quantity int,
	totalPrice int64,
	shipping ShippingInfo,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setProductName(productName),
		o.setQuantity(quantity),
		o.setTotalPrice(totalPrice),
		o.setShipping(shipping),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It re-validates the
// construction invariants, including the status/agent consistency rule.
func RestoreOrder(
	id kernel.UUID,
	orderNo string,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	agentID *kernel.UUID,
	productName string,
	quantity int,
	totalPrice int64,
	shipping ShippingInfo,
	status Status,
	abnormalReason string,
	createdAt time.Time,
	updatedAt time.Time,
	confirmedAt *time.Time,
	deliveredAt *time.Time,
	signedAt *time.Time,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return nil, err
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		status:         status,
		abnormalReason: abnormalReason,
		agentID:        agentID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		confirmedAt:    confirmedAt,
		deliveredAt:    deliveredAt,
		signedAt:       signedAt,
		version:        version,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setProductName(productName),
		o.setQuantity(quantity),
		o.setTotalPrice(totalPrice),
		o.setShipping(shipping),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's surrogate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the human-facing order number.
func (o *Order) OrderNo() string {
	return o.orderNo
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// MerchantID returns the identifier of the merchant owning the product.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// AgentID returns the assigned delivery agent's identifier, or nil while the
// order has no agent.
func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

// ProductName returns the product name snapshotted at creation.
func (o *Order) ProductName() string {
	return o.productName
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalPrice returns the total price in cents, fixed at creation.
func (o *Order) TotalPrice() int64 {
	return o.totalPrice
}

// Shipping returns the snapshotted logistics details.
func (o *Order) Shipping() ShippingInfo {
	return o.shipping
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AbnormalReason returns the recorded reason when the status is abnormal.
func (o *Order) AbnormalReason() string {
	return o.abnormalReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last accepted transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ConfirmedAt returns when the order was confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// SignedAt returns when the customer signed off, or nil.
func (o *Order) SignedAt() *time.Time {
	return o.signedAt
}

// Version returns the optimistic concurrency token persisted with the order.
func (o *Order) Version() int {
	return o.version
}

// Confirm moves the order pending → confirmed. Only the merchant owning the
// order may confirm it. Sets confirmedAt the first time the order enters the
// confirmed state.
func (o *Order) Confirm(merchantID kernel.UUID, now time.Time) error {
	if !o.merchantID.IsEqual(merchantID) {
		return errs.NewForbiddenError("confirm", merchantID.String())
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.confirmedAt == nil {
		stamp := now
		o.confirmedAt = &stamp
	}
	o.updatedAt = now
	return nil
}

// AssignAgent binds a delivery agent and moves the order confirmed →
// assigned. Called only from the confirmation saga; there is no caller-facing
// assign operation.
func (o *Order) AssignAgent(agentID kernel.UUID, now time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	o.updatedAt = now
	return nil
}

// PickUp moves the order assigned → picked_up. Only the assigned agent may
// pick up.
func (o *Order) PickUp(agentID kernel.UUID, now time.Time) error {
	if err := o.requireAssignedAgent("pick up", agentID); err != nil {
		return err
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// StartTransit moves the order picked_up → in_transit. Only the assigned
// agent may start transit.
func (o *Order) StartTransit(agentID kernel.UUID, now time.Time) error {
	if err := o.requireAssignedAgent("start transit", agentID); err != nil {
		return err
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Deliver moves the order in_transit → delivered and sets deliveredAt once.
// Only the assigned agent may deliver.
func (o *Order) Deliver(agentID kernel.UUID, now time.Time) error {
	if err := o.requireAssignedAgent("deliver", agentID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.deliveredAt == nil {
		stamp := now
		o.deliveredAt = &stamp
	}
	o.updatedAt = now
	return nil
}

// Sign moves the order delivered → signed and sets signedAt once. Only the
// order's customer may sign.
func (o *Order) Sign(customerID kernel.UUID, now time.Time) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewForbiddenError("sign", customerID.String())
	}

	newStatus, err := o.status.Sign()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.signedAt == nil {
		stamp := now
		o.signedAt = &stamp
	}
	o.updatedAt = now
	return nil
}

// Cancel moves the order to cancelled while it is still pending or confirmed.
// Permitted for the order's customer or an administrative caller. Stock
// reserved at creation is not restored here; see the inventory store's
// RestoreStock for reconciliation flows.
func (o *Order) Cancel(callerID kernel.UUID, isAdmin bool, now time.Time) error {
	if !isAdmin && !o.customerID.IsEqual(callerID) {
		return errs.NewForbiddenError("cancel", callerID.String())
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// MarkAbnormal moves the order from any non-terminal state to abnormal and
// records the reason. Permitted for the assigned agent or an administrative
// caller. An assigned agent stays bound to the order and is not released.
func (o *Order) MarkAbnormal(callerID kernel.UUID, isAdmin bool, reason string, now time.Time) error {
	if !isAdmin && (o.agentID == nil || !o.agentID.IsEqual(callerID)) {
		return errs.NewForbiddenError("mark abnormal", callerID.String())
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("abnormal reason")
	}

	newStatus, err := o.status.MarkAbnormal()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.abnormalReason = reason
	o.updatedAt = now
	return nil
}

func (o *Order) requireAssignedAgent(operation string, agentID kernel.UUID) error {
	if o.agentID == nil || !o.agentID.IsEqual(agentID) {
		return errs.NewForbiddenError(operation, agentID.String())
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	o.productName = productName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotalPrice(totalPrice int64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price", fmt.Errorf("%d is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setShipping(shipping ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}
