package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	ShippingAddress string `json:"shippingAddress"`
	ReceiverName    string `json:"receiverName"`
	ReceiverPhone   string `json:"receiverPhone"`
	Remark          string `json:"remark"`
}

// MarkAbnormalRequest is the body of POST /api/v1/orders/:id/abnormal.
type MarkAbnormalRequest struct {
	Reason string `json:"reason"`
}

// SetAgentStatusRequest is the body of PUT /api/v1/agents/:id/status.
type SetAgentStatusRequest struct {
	Availability string `json:"availability"`
}

// OrderResponse is the API shape of an order.
type OrderResponse struct {
	ID              string     `json:"id"`
	OrderNo         string     `json:"orderNo"`
	CustomerID      string     `json:"customerId"`
	MerchantID      string     `json:"merchantId"`
	AgentID         *string    `json:"agentId,omitempty"`
	ProductName     string     `json:"productName"`
	Quantity        int        `json:"quantity"`
	TotalPrice      int64      `json:"totalPrice"`
	ShippingAddress string     `json:"shippingAddress"`
	ReceiverName    string     `json:"receiverName"`
	ReceiverPhone   string     `json:"receiverPhone"`
	SenderAddress   string     `json:"senderAddress"`
	Remark          string     `json:"remark,omitempty"`
	Status          string     `json:"status"`
	AbnormalReason  string     `json:"abnormalReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
	SignedAt        *time.Time `json:"signedAt,omitempty"`
}

// HistoryEntryResponse is one audit entry of the order timeline.
type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	OperatorID string    `json:"operatorId"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AgentStatusResponse is the API shape of an agent's availability.
type AgentStatusResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Availability string `json:"availability"`
}

func orderFromDomain(o *order.Order) OrderResponse {
	var agentID *string
	if id := o.AgentID(); id != nil {
		s := id.String()
		agentID = &s
	}

	shipping := o.Shipping()

	return OrderResponse{
		ID:              o.ID().String(),
		OrderNo:         o.OrderNo(),
		CustomerID:      o.CustomerID().String(),
		MerchantID:      o.MerchantID().String(),
		AgentID:         agentID,
		ProductName:     o.ProductName(),
		Quantity:        o.Quantity(),
		TotalPrice:      o.TotalPrice(),
		ShippingAddress: shipping.Address,
		ReceiverName:    shipping.ReceiverName,
		ReceiverPhone:   shipping.ReceiverPhone,
		SenderAddress:   shipping.SenderAddress,
		Remark:          shipping.Remark,
		Status:          o.Status().String(),
		AbnormalReason:  o.AbnormalReason(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		ConfirmedAt:     o.ConfirmedAt(),
		DeliveredAt:     o.DeliveredAt(),
		SignedAt:        o.SignedAt(),
	}
}

func orderFromQuery(q *queries.GetOrderQueryResponse) OrderResponse {
	var agentID *string
	if q.AgentID != nil {
		s := q.AgentID.String()
		agentID = &s
	}

	return OrderResponse{
		ID:              q.ID.String(),
		OrderNo:         q.OrderNo,
		CustomerID:      q.CustomerID.String(),
		MerchantID:      q.MerchantID.String(),
		AgentID:         agentID,
		ProductName:     q.ProductName,
		Quantity:        q.Quantity,
		TotalPrice:      q.TotalPrice,
		ShippingAddress: q.ShippingAddress,
		ReceiverName:    q.ReceiverName,
		ReceiverPhone:   q.ReceiverPhone,
		SenderAddress:   q.SenderAddress,
		Remark:          q.Remark,
		Status:          q.Status,
		AbnormalReason:  q.AbnormalReason,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
		ConfirmedAt:     q.ConfirmedAt,
		DeliveredAt:     q.DeliveredAt,
		SignedAt:        q.SignedAt,
	}
}
