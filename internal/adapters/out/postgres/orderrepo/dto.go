// Package orderrepo persists the order aggregate. The DTO flattens the
// shipping snapshot into columns and keeps the status as its wire string so
// the read side and ad-hoc SQL stay legible.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Version backs the optimistic concurrency check in Update.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNo         string     `gorm:"size:32;uniqueIndex"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	MerchantID      uuid.UUID  `gorm:"type:uuid;index"`
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	ProductName     string
	Quantity        int
	TotalPrice      int64
	ShippingAddress string
	ReceiverName    string
	ReceiverPhone   string
	SenderAddress   string
	Remark          string
	Status          string `gorm:"size:16;index"`
	AbnormalReason  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	SignedAt        *time.Time
	Version         int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	shipping := aggregate.Shipping()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNo:         aggregate.OrderNo(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		MerchantID:      aggregate.MerchantID().Bytes(),
		AgentID:         agentID,
		ProductName:     aggregate.ProductName(),
		Quantity:        aggregate.Quantity(),
		TotalPrice:      aggregate.TotalPrice(),
		ShippingAddress: shipping.Address,
		ReceiverName:    shipping.ReceiverName,
		ReceiverPhone:   shipping.ReceiverPhone,
		SenderAddress:   shipping.SenderAddress,
		Remark:          shipping.Remark,
		Status:          aggregate.Status().String(),
		AbnormalReason:  aggregate.AbnormalReason(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		ConfirmedAt:     aggregate.ConfirmedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		SignedAt:        aggregate.SignedAt(),
		Version:         aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNo,
		customerID,
		merchantID,
		agentID,
		dto.ProductName,
		dto.Quantity,
		dto.TotalPrice,
		order.ShippingInfo{
			Address:       dto.ShippingAddress,
			ReceiverName:  dto.ReceiverName,
			ReceiverPhone: dto.ReceiverPhone,
			SenderAddress: dto.SenderAddress,
			Remark:        dto.Remark,
		},
		status,
		dto.AbnormalReason,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConfirmedAt,
		dto.DeliveredAt,
		dto.SignedAt,
		dto.Version,
	)
}
