// Package queries contains the orchestrator's read side. Handlers bypass the
// domain model and read the database directly with raw SQL, returning plain
// response structs shaped for the transport layer.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with all its snapshotted detail.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of one order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	OrderNo         string
	CustomerID      kernel.UUID
	MerchantID      kernel.UUID
	AgentID         *kernel.UUID
	ProductName     string
	Quantity        int
	TotalPrice      int64
	ShippingAddress string
	ReceiverName    string
	ReceiverPhone   string
	SenderAddress   string
	Remark          string
	Status          string
	AbnormalReason  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	SignedAt        *time.Time
}
